package api

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// SearchInput - входные параметры поиска. Необязательные поля - указатели:
// nil означает отсутствие фильтра, и такое поле не попадает в запрос
// репозитория.
type SearchInput struct {
	Keyword             string
	SortBy              *string
	SortOrder           *string
	PublicationYearFrom *int
	PublicationYearTo   *int
	Category            *string
	AvailableOnly       *bool
}

// SearchUseCase определяет сценарий поиска по каталогу.
type SearchUseCase interface {
	Search(ctx context.Context, input SearchInput) result.Result[*entities.SearchResult, *errs.Error]
}
