// Package cache содержит реализацию хранилища сессий на Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"libris/internal/library/config"
	"libris/internal/library/ports/services"
	"libris/pkg/logger"
)

// Константы для логирования.
const (
	logMethodGet    = "Get"
	logMethodSet    = "Set"
	logMethodDelete = "Delete"

	errFailedToGet    = "failed to get value from redis"
	errFailedToSet    = "failed to set value in redis"
	errFailedToDelete = "failed to delete value from redis"
	errFailedToClose  = "failed to close redis connection"
)

// ErrCacheMiss возвращается методом Get, когда ключ отсутствует.
var ErrCacheMiss = errors.New("cache miss")

// RedisCache реализует интерфейс services.Cache с использованием Redis.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache создает новый экземпляр RedisCache и проверяет соединение.
func NewRedisCache(ctx context.Context, cfg *config.RedisConfig) (services.Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            cfg.GetAddress(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// Get получает значение по ключу. Отсутствующий ключ - ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", logMethodGet), zap.String("key", key))

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		log.Error(ctx, errFailedToGet, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errFailedToGet, err)
	}

	return value, nil
}

// Set устанавливает значение для ключа с временем жизни.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodSet), zap.String("key", key))

	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Error(ctx, errFailedToSet, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToSet, err)
	}

	return nil
}

// Delete удаляет значение по ключу.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	log := logger.Log(ctx).With(zap.String("method", logMethodDelete), zap.String("key", key))

	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Error(ctx, errFailedToDelete, zap.Error(err))
		return fmt.Errorf("%s: %w", errFailedToDelete, err)
	}

	return nil
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", errFailedToClose, err)
	}
	return nil
}
