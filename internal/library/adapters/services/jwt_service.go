// Package services содержит реализации вспомогательных сервисов библиотеки.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	svc "libris/internal/library/ports/services"
	"libris/pkg/logger"
)

const (
	methodGenerate = "Generate"
	methodValidate = "Validate"

	msgGeneratingToken = "generating access token"
	msgValidatingToken = "validating access token"
	msgTokenGenerated  = "token generated successfully"
	msgTokenValidated  = "token validated successfully"
	msgInvalidToken    = "invalid token format"
	msgTokenExpired    = "token has expired"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken       = "error parsing token"
	errCtxGeneratingToken = "generating token"
	errCtxValidatingToken = "validating token"
)

// Ошибки сервиса токенов.
var (
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrEmptySecretKey   = errors.New("empty secret key")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
)

// Claims адаптирует данные сессии сотрудника к формату библиотеки JWT.
// Идентификатор токена хранится в стандартном поле jti.
type Claims struct {
	LibrarianID string `json:"librarian_id"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс svc.TokenService.
type ServiceJWT struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// NewJWT создает новый сервис токенов доступа.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Generate выпускает подписанный токен доступа сотрудника.
func (s *ServiceJWT) Generate(ctx context.Context, librarianID, email string) (string, *svc.TokenClaims, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerate),
		zap.String("librarianID", librarianID),
	)
	log.Debug(ctx, msgGeneratingToken)

	if len(s.secretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, ErrEmptySecretKey)
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	tokenID := uuid.New().String()

	claims := Claims{
		LibrarianID: librarianID,
		Email:       email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   librarianID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expiresAt", expiresAt))
	return tokenString, &svc.TokenClaims{
		TokenID:     tokenID,
		LibrarianID: librarianID,
		Email:       email,
		ExpiresAt:   expiresAt,
	}, nil
}

// Validate проверяет подпись и срок действия токена.
func (s *ServiceJWT) Validate(ctx context.Context, tokenString string) (*svc.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidate))
	log.Debug(ctx, msgValidatingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, ErrExpiredToken)
		}
		log.Error(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, ErrInvalidToken)
	}

	if claims.LibrarianID == "" || claims.ID == "" {
		log.Debug(ctx, "required claims are empty")
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, ErrInvalidToken)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	log.Debug(ctx, msgTokenValidated, zap.String("librarianID", claims.LibrarianID))
	return &svc.TokenClaims{
		TokenID:     claims.ID,
		LibrarianID: claims.LibrarianID,
		Email:       claims.Email,
		ExpiresAt:   expiresAt,
	}, nil
}
