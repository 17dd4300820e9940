// Package config содержит конфигурацию сервиса библиотеки.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "libris/pkg/config"
	"libris/pkg/logger"
)

const serviceName = "library"

// Config представляет полную конфигурацию приложения.
type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Loan     LoanConfig     `yaml:"loan"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName)
	if err != nil {
		return nil, fmt.Errorf("loading library config: %w", err)
	}

	logger.Log(ctx).Info(ctx, "library configuration loaded",
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.Int("loan_duration_days", cfg.Loan.DurationDays))

	return cfg, nil
}
