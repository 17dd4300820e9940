package repositories

import (
	"context"

	"libris/internal/library/domain/entities"
)

// LibrarianRepository определяет интерфейс для учетных записей сотрудников.
type LibrarianRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.Librarian, error)

	FindByID(ctx context.Context, id string) (*entities.Librarian, error)
}
