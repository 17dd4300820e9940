package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	svc "libris/internal/library/ports/services"
	"libris/pkg/logger"
)

const (
	methodHash   = "Hash"
	methodVerify = "Verify"

	msgHashingPassword  = "hashing password"
	msgVerifyingPass    = "verifying password"
	msgPasswordMismatch = "password does not match hash"

	errHashingPassword  = "error hashing password"
	errComparingHash    = "error comparing password hash"
	errCtxHashingPass   = "hashing password"
	errCtxVerifyingPass = "verifying password"
)

// ErrPasswordMismatch возвращается, когда пароль не соответствует хешу.
var ErrPasswordMismatch = errors.New("password mismatch")

// ServiceBcrypt реализует интерфейс svc.PasswordService.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает новый сервис паролей с указанной стоимостью хеширования.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хеширует пароль с помощью bcrypt.
func (s *ServiceBcrypt) Hash(ctx context.Context, password string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodHash))
	log.Debug(ctx, msgHashingPassword)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		log.Error(ctx, errHashingPassword, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxHashingPass, err)
	}
	return string(hash), nil
}

// Verify проверяет соответствие пароля сохраненному хешу.
func (s *ServiceBcrypt) Verify(ctx context.Context, hash, password string) error {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingPass)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Debug(ctx, msgPasswordMismatch)
			return fmt.Errorf("%s: %w", errCtxVerifyingPass, ErrPasswordMismatch)
		}
		log.Error(ctx, errComparingHash, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxVerifyingPass, err)
	}
	return nil
}
