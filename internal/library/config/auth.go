package config

import "time"

// AuthConfig содержит настройки токенов доступа и хеширования паролей.
type AuthConfig struct {
	SecretKey  string `yaml:"secret_key" env:"LIBRARY_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	TokenTTL   string `yaml:"token_ttl" env:"LIBRARY_JWT_TOKEN_TTL" env-default:"15m"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"LIBRARY_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена доступа.
func (c *AuthConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return duration
}
