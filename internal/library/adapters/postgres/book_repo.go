package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// BookRepository реализует интерфейс repositories.BookRepository.
type BookRepository struct {
	pool PgxPoolInterface
}

// NewBookRepository создает новый репозиторий каталога.
func NewBookRepository(pool PgxPoolInterface) repositories.BookRepository {
	return &BookRepository{pool: pool}
}

// Create сохраняет новую книгу в каталоге.
func (r *BookRepository) Create(ctx context.Context, book *entities.Book) result.Result[*entities.Book, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "Create"))
	log.Debug(ctx, "creating book", zap.String("isbn", book.ISBN))

	query := `
        INSERT INTO books (title, author, publisher, publication_year, isbn, category)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at
    `

	created := *book
	err := r.pool.QueryRow(ctx, query,
		book.Title, book.Author, book.Publisher, book.PublicationYear, book.ISBN, book.Category,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to create book", zap.Error(err))
		return result.Err[*entities.Book](errs.Validation("book", "failed to create book"))
	}

	log.Debug(ctx, "book created", zap.String("bookID", created.ID))
	return result.Ok[*entities.Book, *errs.Error](&created)
}

// FindByID находит книгу по идентификатору.
func (r *BookRepository) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "FindByID"))

	query := `
        SELECT id, title, author, publisher, publication_year, isbn, category, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	var book entities.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Publisher,
		&book.PublicationYear,
		&book.ISBN,
		&book.Category,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "book not found", zap.String("id", id))
			return nil, entities.ErrBookNotFound
		}
		log.Error(ctx, "failed to find book", zap.Error(err))
		return nil, fmt.Errorf("failed to find book: %w", err)
	}

	return &book, nil
}

// FindCopyByID находит экземпляр по идентификатору.
func (r *BookRepository) FindCopyByID(ctx context.Context, copyID string) (*entities.BookCopy, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "FindCopyByID"))

	query := `
        SELECT id, book_id, location, status, created_at, updated_at
        FROM book_copies
        WHERE id = $1
    `

	var copy entities.BookCopy
	err := r.pool.QueryRow(ctx, query, copyID).Scan(
		&copy.ID,
		&copy.BookID,
		&copy.Location,
		&copy.Status,
		&copy.CreatedAt,
		&copy.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "book copy not found", zap.String("copyID", copyID))
			return nil, entities.ErrCopyNotFound
		}
		log.Error(ctx, "failed to find book copy", zap.Error(err))
		return nil, fmt.Errorf("failed to find book copy: %w", err)
	}

	return &copy, nil
}

// FindCopiesByBookID возвращает все экземпляры книги.
func (r *BookRepository) FindCopiesByBookID(ctx context.Context, bookID string) ([]*entities.BookCopy, error) {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "FindCopiesByBookID"))

	query := `
        SELECT id, book_id, location, status, created_at, updated_at
        FROM book_copies
        WHERE book_id = $1
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		log.Error(ctx, "failed to list book copies", zap.Error(err))
		return nil, fmt.Errorf("failed to list book copies: %w", err)
	}
	defer rows.Close()

	copies := make([]*entities.BookCopy, 0)
	for rows.Next() {
		var copy entities.BookCopy
		if err := rows.Scan(
			&copy.ID,
			&copy.BookID,
			&copy.Location,
			&copy.Status,
			&copy.CreatedAt,
			&copy.UpdatedAt,
		); err != nil {
			log.Error(ctx, "failed to scan book copy", zap.Error(err))
			return nil, fmt.Errorf("failed to scan book copy: %w", err)
		}
		copies = append(copies, &copy)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating book copies", zap.Error(err))
		return nil, fmt.Errorf("error iterating book copies: %w", err)
	}

	return copies, nil
}

// AddCopy сохраняет новый экземпляр книги.
func (r *BookRepository) AddCopy(ctx context.Context, copy *entities.BookCopy) result.Result[*entities.BookCopy, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "AddCopy"))
	log.Debug(ctx, "adding book copy", zap.String("bookID", copy.BookID))

	query := `
        INSERT INTO book_copies (book_id, location, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `

	added := *copy
	err := r.pool.QueryRow(ctx, query, copy.BookID, copy.Location, copy.Status).
		Scan(&added.ID, &added.CreatedAt, &added.UpdatedAt)
	if err != nil {
		log.Error(ctx, "failed to add book copy", zap.Error(err))
		return result.Err[*entities.BookCopy](errs.Validation("bookCopy", "failed to add book copy"))
	}

	log.Debug(ctx, "book copy added", zap.String("copyID", added.ID))
	return result.Ok[*entities.BookCopy, *errs.Error](&added)
}

// UpdateCopyStatus переводит экземпляр из статуса from в to одним условным
// обновлением. Ноль затронутых строк означает, что статус уже изменила
// параллельная операция.
func (r *BookRepository) UpdateCopyStatus(ctx context.Context, copyID string, from, to entities.CopyStatus) error {
	log := logger.Log(ctx).With(zap.String("repository", "book"), zap.String("method", "UpdateCopyStatus"))
	log.Debug(ctx, "updating copy status",
		zap.String("copyID", copyID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	query := `
        UPDATE book_copies
        SET status = $1, updated_at = NOW()
        WHERE id = $2 AND status = $3
    `

	tag, err := r.pool.Exec(ctx, query, to, copyID, from)
	if err != nil {
		log.Error(ctx, "failed to update copy status", zap.Error(err))
		return fmt.Errorf("failed to update copy status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "copy status conflict", zap.String("copyID", copyID))
		return entities.ErrCopyStatusConflict
	}

	return nil
}
