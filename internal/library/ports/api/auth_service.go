package api

import (
	"context"
	"time"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// Session - результат успешной аутентификации сотрудника.
type Session struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	Librarian *entities.Librarian `json:"librarian"`
}

// AuthUseCase определяет сценарии аутентификации сотрудников.
type AuthUseCase interface {
	Login(ctx context.Context, email, password string) result.Result[*Session, *errs.Error]

	Logout(ctx context.Context, token string) result.Result[struct{}, *errs.Error]

	// Authenticate проверяет токен и возвращает сотрудника.
	Authenticate(ctx context.Context, token string) result.Result[*entities.Librarian, *errs.Error]
}
