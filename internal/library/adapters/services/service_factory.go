package services

import (
	"time"

	svc "libris/internal/library/ports/services"
)

// ServiceFactory создает и хранит вспомогательные сервисы библиотеки.
type ServiceFactory struct {
	passwordService svc.PasswordService
	tokenService    svc.TokenService
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(jwtSecret string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecret, tokenTTL),
	}
}

// PasswordService возвращает сервис паролей.
func (f *ServiceFactory) PasswordService() svc.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис токенов.
func (f *ServiceFactory) TokenService() svc.TokenService {
	return f.tokenService
}
