package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
)

// LibrarianRepository реализует интерфейс repositories.LibrarianRepository.
type LibrarianRepository struct {
	pool PgxPoolInterface
}

// NewLibrarianRepository создает новый репозиторий сотрудников.
func NewLibrarianRepository(pool PgxPoolInterface) repositories.LibrarianRepository {
	return &LibrarianRepository{pool: pool}
}

// FindByEmail находит сотрудника по email.
func (r *LibrarianRepository) FindByEmail(ctx context.Context, email string) (*entities.Librarian, error) {
	log := logger.Log(ctx).With(zap.String("repository", "librarian"), zap.String("method", "FindByEmail"))

	query := `
        SELECT id, name, email, password_hash, created_at
        FROM librarians
        WHERE email = $1
    `

	var librarian entities.Librarian
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&librarian.ID,
		&librarian.Name,
		&librarian.Email,
		&librarian.PasswordHash,
		&librarian.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "librarian not found", zap.String("email", email))
			return nil, entities.ErrLibrarianNotFound
		}
		log.Error(ctx, "failed to find librarian by email", zap.Error(err))
		return nil, fmt.Errorf("failed to find librarian by email: %w", err)
	}

	return &librarian, nil
}

// FindByID находит сотрудника по идентификатору.
func (r *LibrarianRepository) FindByID(ctx context.Context, id string) (*entities.Librarian, error) {
	log := logger.Log(ctx).With(zap.String("repository", "librarian"), zap.String("method", "FindByID"))

	query := `
        SELECT id, name, email, password_hash, created_at
        FROM librarians
        WHERE id = $1
    `

	var librarian entities.Librarian
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&librarian.ID,
		&librarian.Name,
		&librarian.Email,
		&librarian.PasswordHash,
		&librarian.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "librarian not found", zap.String("id", id))
			return nil, entities.ErrLibrarianNotFound
		}
		log.Error(ctx, "failed to find librarian", zap.Error(err))
		return nil, fmt.Errorf("failed to find librarian: %w", err)
	}

	return &librarian, nil
}
