package searchusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"libris/internal/library/domain/entities"
)

type mockSearchRepository struct {
	mock.Mock
}

func (m *mockSearchRepository) Search(ctx context.Context, query entities.SearchQuery) (*entities.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SearchResult), args.Error(1)
}
