package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/internal/library/ports/services"
	"libris/pkg/logger"
	"libris/pkg/result"
)

const sessionKeyPrefix = "session:"

const (
	methodLogin        = "Login"
	methodLogout       = "Logout"
	methodAuthenticate = "Authenticate"

	msgLoggingIn          = "logging in"
	msgLoggedIn           = "logged in successfully"
	msgLoggingOut         = "logging out"
	msgLoggedOut          = "logged out successfully"
	msgAuthenticating     = "authenticating token"
	msgLibrarianNotFound  = "librarian not found"
	msgInvalidPassword    = "invalid password"
	msgInvalidToken       = "invalid token"
	msgSessionNotFound    = "session not found"

	msgErrGeneratingToken = "failed to generate token"
	msgErrStoringSession  = "failed to store session"
	msgErrDeletingSession = "failed to delete session"
	errFieldSession       = "session"
	errMsgGeneratingToken = "failed to generate token"
	errMsgStoringSession  = "failed to store session"
	errMsgDeletingSession = "failed to delete session"
	errMsgBadCredentials  = "invalid email or password"
	errMsgBadToken        = "invalid or expired token"
	errMsgSessionExpired  = "session expired"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase. Активные сессии
// хранятся в кэше с временем жизни токена: выход из системы удаляет
// сессию и делает еще не истекший токен недействительным.
type AuthUseCaseImpl struct {
	librarianRepo repositories.LibrarianRepository
	tokens        services.TokenService
	passwords     services.PasswordService
	sessions      services.Cache
}

// NewAuthUseCase создает новый сценарий аутентификации.
func NewAuthUseCase(
	librarianRepo repositories.LibrarianRepository,
	tokens services.TokenService,
	passwords services.PasswordService,
	sessions services.Cache,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		librarianRepo: librarianRepo,
		tokens:        tokens,
		passwords:     passwords,
		sessions:      sessions,
	}
}

// Login проверяет учетные данные сотрудника и открывает сессию.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (u *AuthUseCaseImpl) Login(ctx context.Context, email, password string) result.Result[*api.Session, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))
	log.Debug(ctx, msgLoggingIn, zap.String("email", email))

	librarian, err := u.librarianRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Debug(ctx, msgLibrarianNotFound, zap.Error(err))
		return result.Err[*api.Session](errs.Unauthorized(errMsgBadCredentials))
	}

	if err := u.passwords.Verify(ctx, librarian.PasswordHash, password); err != nil {
		log.Debug(ctx, msgInvalidPassword)
		return result.Err[*api.Session](errs.Unauthorized(errMsgBadCredentials))
	}

	token, claims, err := u.tokens.Generate(ctx, librarian.ID, librarian.Email)
	if err != nil {
		log.Error(ctx, msgErrGeneratingToken, zap.Error(err))
		return result.Err[*api.Session](errs.Validation(errFieldSession, errMsgGeneratingToken))
	}

	if err := u.sessions.Set(ctx, sessionKeyPrefix+claims.TokenID, librarian.ID,
		time.Until(claims.ExpiresAt)); err != nil {
		log.Error(ctx, msgErrStoringSession, zap.Error(err))
		return result.Err[*api.Session](errs.Validation(errFieldSession, errMsgStoringSession))
	}

	log.Info(ctx, msgLoggedIn, zap.String("librarianID", librarian.ID))
	return result.Ok[*api.Session, *errs.Error](&api.Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
		Librarian: librarian,
	})
}

// Logout закрывает сессию по токену.
func (u *AuthUseCaseImpl) Logout(ctx context.Context, token string) result.Result[struct{}, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgLoggingOut)

	claims, err := u.tokens.Validate(ctx, token)
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return result.Err[struct{}](errs.Unauthorized(errMsgBadToken))
	}

	if err := u.sessions.Delete(ctx, sessionKeyPrefix+claims.TokenID); err != nil {
		log.Error(ctx, msgErrDeletingSession, zap.Error(err))
		return result.Err[struct{}](errs.Validation(errFieldSession, errMsgDeletingSession))
	}

	log.Info(ctx, msgLoggedOut)
	return result.Ok[struct{}, *errs.Error](struct{}{})
}

// Authenticate проверяет токен, наличие сессии и возвращает сотрудника.
func (u *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) result.Result[*entities.Librarian, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))
	log.Debug(ctx, msgAuthenticating)

	claims, err := u.tokens.Validate(ctx, token)
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return result.Err[*entities.Librarian](errs.Unauthorized(errMsgBadToken))
	}

	if _, err := u.sessions.Get(ctx, sessionKeyPrefix+claims.TokenID); err != nil {
		log.Debug(ctx, msgSessionNotFound, zap.Error(err))
		return result.Err[*entities.Librarian](errs.Unauthorized(errMsgSessionExpired))
	}

	librarian, err := u.librarianRepo.FindByID(ctx, claims.LibrarianID)
	if err != nil {
		log.Debug(ctx, msgLibrarianNotFound, zap.Error(err))
		return result.Err[*entities.Librarian](errs.Unauthorized(errMsgBadToken))
	}

	return result.Ok[*entities.Librarian, *errs.Error](librarian)
}
