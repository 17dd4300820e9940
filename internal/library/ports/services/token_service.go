// Package services определяет интерфейсы вспомогательных сервисов.
package services

import (
	"context"
	"time"
)

// TokenClaims - данные, извлеченные из токена доступа.
type TokenClaims struct {
	TokenID     string
	LibrarianID string
	Email       string
	ExpiresAt   time.Time
}

// TokenService определяет интерфейс выпуска и проверки токенов доступа.
type TokenService interface {
	Generate(ctx context.Context, librarianID, email string) (token string, claims *TokenClaims, err error)

	Validate(ctx context.Context, token string) (*TokenClaims, error)
}
