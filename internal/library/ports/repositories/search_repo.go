package repositories

import (
	"context"

	"libris/internal/library/domain/entities"
)

// SearchRepository определяет интерфейс поиска по каталогу. Репозиторий
// учитывает только заданные (не nil) фильтры запроса.
type SearchRepository interface {
	Search(ctx context.Context, query entities.SearchQuery) (*entities.SearchResult, error)
}
