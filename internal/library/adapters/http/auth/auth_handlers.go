// Package auth содержит HTTP обработчики аутентификации сотрудников.
package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"libris/internal/library/adapters/http/dto"
	"libris/internal/library/adapters/http/middleware"
	"libris/internal/library/adapters/http/respond"
	"libris/internal/library/ports/api"
	"libris/pkg/logger"
)

const (
	logHandlerLogin  = "auth handler: login"
	logHandlerLogout = "auth handler: logout"
	logHandlerMe     = "auth handler: me"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"
	errNoToken        = "no access token provided"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый обработчик аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Login обрабатывает запрос на вход сотрудника.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	if domainErr := dto.Validate(req); domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	loginResult := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if loginResult.IsErr() {
		return respond.DomainError(ctx, loginResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, loginResult.Value())
}

// Logout обрабатывает запрос на выход сотрудника.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerLogout)

	token, ok := middleware.AccessToken(ctx)
	if !ok {
		return respond.Unauthorized(ctx, errNoToken)
	}

	logoutResult := h.authUseCase.Logout(requestCtx, token)
	if logoutResult.IsErr() {
		return respond.DomainError(ctx, logoutResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, fiber.Map{
		"message": "logged out successfully",
	})
}

// Me возвращает сотрудника текущей сессии.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerMe)

	librarian, ok := middleware.AuthenticatedLibrarian(ctx)
	if !ok {
		return respond.Unauthorized(ctx, errNoToken)
	}

	return respond.JSON(ctx, http.StatusOK, librarian)
}
