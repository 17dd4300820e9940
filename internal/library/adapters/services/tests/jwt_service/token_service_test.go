package jwt_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libris/internal/library/adapters/services"
	"libris/pkg/logger"
)

//nolint:gosec
const (
	msgErrorCreatingTestLogger = "should create test logger without errors"
	msgNoErrorGeneratingToken  = "should generate token without errors"
	msgTokenNotEmpty           = "token should not be empty"
	msgClaimsNotNil            = "claims should not be nil"
	msgNoErrorValidating       = "should validate token without errors"
	msgInvalidTokenError       = "invalid token should return error"
	msgExpiredTokenError       = "expired token should return error"
	msgLibrarianIDMatches      = "librarian ID should survive the round trip"
	msgTokenIDMatches          = "token ID should survive the round trip"
	msgNoneAlgorithmToken      = "should create token with none algorithm"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err, msgErrorCreatingTestLogger)

	return logger.NewContext(context.Background(), testLogger)
}

func TestGenerateAndValidate(t *testing.T) {
	ctx := testContext(t)

	secretKey := "library-secret-key-12345"
	tokenTTL := 15 * time.Minute
	librarianID := "librarian-id-123"
	email := "librarian@library.io"

	service := services.NewJWT(secretKey, tokenTTL)

	token, claims, err := service.Generate(ctx, librarianID, email)
	require.NoError(t, err, msgNoErrorGeneratingToken)
	assert.NotEmpty(t, token, msgTokenNotEmpty)
	require.NotNil(t, claims, msgClaimsNotNil)
	assert.Equal(t, librarianID, claims.LibrarianID)
	assert.Equal(t, email, claims.Email)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt, 5*time.Second)

	parsed, err := service.Validate(ctx, token)
	require.NoError(t, err, msgNoErrorValidating)
	assert.Equal(t, librarianID, parsed.LibrarianID, msgLibrarianIDMatches)
	assert.Equal(t, claims.TokenID, parsed.TokenID, msgTokenIDMatches)
	assert.Equal(t, email, parsed.Email)
}

func TestValidateErrors(t *testing.T) {
	ctx := testContext(t)

	secretKey := "library-secret-key-12345"

	t.Run("error on expired token", func(t *testing.T) {
		service := services.NewJWT(secretKey, -15*time.Minute)

		token, _, err := service.Generate(ctx, "librarian-id-123", "librarian@library.io")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = service.Validate(ctx, token)
		require.Error(t, err, msgExpiredTokenError)
		assert.ErrorIs(t, err, services.ErrExpiredToken)
	})

	t.Run("error on invalid token format", func(t *testing.T) {
		service := services.NewJWT(secretKey, 15*time.Minute)

		_, err := service.Validate(ctx, "invalid.token.format")
		require.Error(t, err, msgInvalidTokenError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("error on token signed with another key", func(t *testing.T) {
		issuer := services.NewJWT("different-secret-key-67890", 15*time.Minute)
		verifier := services.NewJWT(secretKey, 15*time.Minute)

		token, _, err := issuer.Generate(ctx, "librarian-id-123", "librarian@library.io")
		require.NoError(t, err, msgNoErrorGeneratingToken)

		_, err = verifier.Validate(ctx, token)
		require.Error(t, err, msgInvalidTokenError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("error on token with invalid signing method", func(t *testing.T) {
		claims := &services.Claims{
			LibrarianID: "librarian-id-123",
			Email:       "librarian@library.io",
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "token-id-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err, msgNoneAlgorithmToken)

		service := services.NewJWT(secretKey, 15*time.Minute)
		_, err = service.Validate(ctx, tokenString)
		require.Error(t, err, msgInvalidTokenError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("error on token without librarian claims", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"some_random_field": "not-a-librarian",
			"exp":               time.Now().Add(15 * time.Minute).Unix(),
		})
		tokenString, err := token.SignedString([]byte(secretKey))
		require.NoError(t, err)

		service := services.NewJWT(secretKey, 15*time.Minute)
		_, err = service.Validate(ctx, tokenString)
		require.Error(t, err, msgInvalidTokenError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("error on empty token", func(t *testing.T) {
		service := services.NewJWT(secretKey, 15*time.Minute)

		_, err := service.Validate(ctx, "")
		require.Error(t, err, msgInvalidTokenError)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}

func TestGenerateEmptySecret(t *testing.T) {
	ctx := testContext(t)

	service := services.NewJWT("", 15*time.Minute)

	_, _, err := service.Generate(ctx, "librarian-id-123", "librarian@library.io")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrEmptySecretKey)
}
