package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
)

const dialectPostgres = "postgres"

// Столбцы каталога, по которым строится поисковый запрос.
const (
	colBookID          = "b.id"
	colTitle           = "b.title"
	colAuthor          = "b.author"
	colPublisher       = "b.publisher"
	colPublicationYear = "b.publication_year"
	colISBN            = "b.isbn"
	colCategory        = "b.category"
	colCreatedAt       = "b.created_at"
	colUpdatedAt       = "b.updated_at"
)

// sortColumns отображает имена полей сортировки запроса на столбцы.
var sortColumns = map[string]string{
	entities.SearchSortByTitle:           colTitle,
	entities.SearchSortByAuthor:          colAuthor,
	entities.SearchSortByPublicationYear: colPublicationYear,
}

// SearchRepository реализует интерфейс repositories.SearchRepository.
// Запрос собирается динамически: только заданные фильтры добавляют условия.
type SearchRepository struct {
	pool PgxPoolInterface
}

// NewSearchRepository создает новый репозиторий поиска.
func NewSearchRepository(pool PgxPoolInterface) repositories.SearchRepository {
	return &SearchRepository{pool: pool}
}

// Search ищет книги по ключевому слову и необязательным фильтрам.
func (r *SearchRepository) Search(ctx context.Context, query entities.SearchQuery) (*entities.SearchResult, error) {
	log := logger.Log(ctx).With(zap.String("repository", "search"), zap.String("method", "Search"))
	log.Debug(ctx, "searching books", zap.String("keyword", query.Keyword))

	base := goqu.Dialect(dialectPostgres).
		From(goqu.T("books").As("b")).
		Where(buildConditions(query)...)

	countSQL, countArgs, err := base.Select(goqu.COUNT(goqu.I(colBookID))).ToSQL()
	if err != nil {
		log.Error(ctx, "failed to build count query", zap.Error(err))
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Error(ctx, "failed to count search results", zap.Error(err))
		return nil, fmt.Errorf("failed to count search results: %w", err)
	}

	selectStmt := base.Select(
		goqu.I(colBookID), goqu.I(colTitle), goqu.I(colAuthor), goqu.I(colPublisher),
		goqu.I(colPublicationYear), goqu.I(colISBN), goqu.I(colCategory),
		goqu.I(colCreatedAt), goqu.I(colUpdatedAt),
	).Order(buildOrder(query))

	selectSQL, selectArgs, err := selectStmt.ToSQL()
	if err != nil {
		log.Error(ctx, "failed to build search query", zap.Error(err))
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	rows, err := r.pool.Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		log.Error(ctx, "failed to search books", zap.Error(err))
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	books := make([]*entities.Book, 0)
	for rows.Next() {
		var book entities.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Publisher,
			&book.PublicationYear,
			&book.ISBN,
			&book.Category,
			&book.CreatedAt,
			&book.UpdatedAt,
		); err != nil {
			log.Error(ctx, "failed to scan book", zap.Error(err))
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating search results", zap.Error(err))
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	log.Debug(ctx, "search finished", zap.Int("total", total))
	return &entities.SearchResult{Books: books, Total: total}, nil
}

func buildConditions(query entities.SearchQuery) []goqu.Expression {
	pattern := "%" + query.Keyword + "%"
	conditions := []goqu.Expression{
		goqu.Or(
			goqu.I(colTitle).ILike(pattern),
			goqu.I(colAuthor).ILike(pattern),
			goqu.I(colISBN).ILike(pattern),
		),
	}

	if query.Category != nil {
		conditions = append(conditions, goqu.I(colCategory).Eq(*query.Category))
	}
	if query.PublicationYearFrom != nil {
		conditions = append(conditions, goqu.I(colPublicationYear).Gte(*query.PublicationYearFrom))
	}
	if query.PublicationYearTo != nil {
		conditions = append(conditions, goqu.I(colPublicationYear).Lte(*query.PublicationYearTo))
	}
	if query.AvailableOnly != nil && *query.AvailableOnly {
		conditions = append(conditions, goqu.L(
			`EXISTS (SELECT 1 FROM book_copies bc WHERE bc.book_id = b.id AND bc.status = ?)`,
			string(entities.CopyStatusAvailable),
		))
	}

	return conditions
}

func buildOrder(query entities.SearchQuery) exp.OrderedExpression {
	column := colTitle
	if query.SortBy != nil {
		if mapped, ok := sortColumns[*query.SortBy]; ok {
			column = mapped
		}
	}

	if query.SortOrder != nil && *query.SortOrder == entities.SearchSortOrderDesc {
		return goqu.I(column).Desc()
	}
	return goqu.I(column).Asc()
}
