package services

import "context"

// PasswordService определяет интерфейс хеширования и проверки паролей.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает ошибку, если пароль не соответствует хешу.
	Verify(ctx context.Context, hash, password string) error
}
