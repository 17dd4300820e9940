package authusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"libris/internal/library/domain/entities"
	"libris/internal/library/ports/services"
)

type mockLibrarianRepository struct {
	mock.Mock
}

func (m *mockLibrarianRepository) FindByEmail(ctx context.Context, email string) (*entities.Librarian, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Librarian), args.Error(1)
}

func (m *mockLibrarianRepository) FindByID(ctx context.Context, id string) (*entities.Librarian, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Librarian), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(ctx context.Context, librarianID, email string) (string, *services.TokenClaims, error) {
	args := m.Called(ctx, librarianID, email)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*services.TokenClaims), args.Error(2)
}

func (m *mockTokenService) Validate(ctx context.Context, token string) (*services.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, hash, password string) error {
	return m.Called(ctx, hash, password).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}
