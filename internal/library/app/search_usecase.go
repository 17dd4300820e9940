package app

import (
	"context"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/domain/validation"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

const (
	methodSearch = "Search"

	msgSearchingBooks     = "searching books"
	msgSearchInvalidInput = "invalid search input"

	msgErrSearchingBooks = "failed to search books"
	fieldSortBy          = "sortBy"
	fieldSortOrder       = "sortOrder"
	errFieldSearch       = "search"
	errMsgSearchingBooks = "failed to search books"
	errMsgBadSortBy      = "sortBy must be one of: title, author, publicationYear"
	errMsgBadSortOrder   = "sortOrder must be one of: asc, desc"
)

// SearchUseCaseImpl реализует интерфейс api.SearchUseCase.
type SearchUseCaseImpl struct {
	searchRepo repositories.SearchRepository
}

// NewSearchUseCase создает новый сценарий поиска по каталогу.
func NewSearchUseCase(searchRepo repositories.SearchRepository) api.SearchUseCase {
	return &SearchUseCaseImpl{searchRepo: searchRepo}
}

// Search выполняет поиск по каталогу. В запрос репозитория попадают
// только заданные поля входа: nil-фильтр не добавляет условия и не
// превращается в нулевое значение.
func (u *SearchUseCaseImpl) Search(ctx context.Context, input api.SearchInput) result.Result[*entities.SearchResult, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodSearch))
	log.Debug(ctx, msgSearchingBooks, zap.String("keyword", input.Keyword))

	if checked := validation.ValidateRequired(input.Keyword, fieldKeyword); checked.IsErr() {
		log.Debug(ctx, msgSearchInvalidInput, zap.Error(checked.Error()))
		return result.Err[*entities.SearchResult](checked.Error())
	}
	if input.SortBy != nil && !validSortBy(*input.SortBy) {
		e := errs.Validation(fieldSortBy, errMsgBadSortBy)
		log.Debug(ctx, msgSearchInvalidInput, zap.Error(e))
		return result.Err[*entities.SearchResult](e)
	}
	if input.SortOrder != nil && !validSortOrder(*input.SortOrder) {
		e := errs.Validation(fieldSortOrder, errMsgBadSortOrder)
		log.Debug(ctx, msgSearchInvalidInput, zap.Error(e))
		return result.Err[*entities.SearchResult](e)
	}

	query := entities.SearchQuery{
		Keyword:             input.Keyword,
		SortBy:              input.SortBy,
		SortOrder:           input.SortOrder,
		Category:            input.Category,
		PublicationYearFrom: input.PublicationYearFrom,
		PublicationYearTo:   input.PublicationYearTo,
		AvailableOnly:       input.AvailableOnly,
	}

	found, err := u.searchRepo.Search(ctx, query)
	if err != nil {
		log.Error(ctx, msgErrSearchingBooks, zap.Error(err))
		return result.Err[*entities.SearchResult](errs.Validation(errFieldSearch, errMsgSearchingBooks))
	}

	log.Debug(ctx, msgSearchingBooks, zap.Int("total", found.Total))
	return result.Ok[*entities.SearchResult, *errs.Error](found)
}

func validSortBy(value string) bool {
	switch value {
	case entities.SearchSortByTitle, entities.SearchSortByAuthor, entities.SearchSortByPublicationYear:
		return true
	}
	return false
}

func validSortOrder(value string) bool {
	return value == entities.SearchSortOrderAsc || value == entities.SearchSortOrderDesc
}
