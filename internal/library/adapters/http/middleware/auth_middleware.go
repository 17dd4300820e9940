package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"libris/internal/library/adapters/http/respond"
	"libris/internal/library/domain/entities"
	"libris/internal/library/ports/api"
	"libris/pkg/logger"
)

// Ключи Locals для данных аутентификации.
const (
	LocalsLibrarianKey = "librarian"
	LocalsTokenKey     = "accessToken"

	bearerPrefix = "Bearer "

	errNoAuthHeader       = "no authorization header provided"
	errInvalidTokenFormat = "invalid token format"
)

// NewAuthMiddleware создает промежуточное ПО для проверки токена доступа.
// Сотрудник, найденный по сессии, сохраняется в Locals запроса.
func NewAuthMiddleware(authUseCase api.AuthUseCase) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, errNoAuthHeader)
			return respond.Unauthorized(ctx, errNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, errInvalidTokenFormat)
			return respond.Unauthorized(ctx, errInvalidTokenFormat)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		authResult := authUseCase.Authenticate(requestCtx, token)
		if authResult.IsErr() {
			log.Debug(requestCtx, "authentication rejected")
			return respond.DomainError(ctx, authResult.Error())
		}

		ctx.Locals(LocalsLibrarianKey, authResult.Value())
		ctx.Locals(LocalsTokenKey, token)

		return ctx.Next()
	}
}

// AuthenticatedLibrarian возвращает сотрудника, сохраненного auth middleware.
func AuthenticatedLibrarian(ctx fiber.Ctx) (*entities.Librarian, bool) {
	librarian, ok := ctx.Locals(LocalsLibrarianKey).(*entities.Librarian)
	return librarian, ok
}

// AccessToken возвращает токен запроса, сохраненный auth middleware.
func AccessToken(ctx fiber.Ctx) (string, bool) {
	token, ok := ctx.Locals(LocalsTokenKey).(string)
	return token, ok
}
