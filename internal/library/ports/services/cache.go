package services

import (
	"context"
	"time"
)

// Cache определяет интерфейс кэша типа ключ-значение с временем жизни.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
