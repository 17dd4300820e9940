// Package repositories определяет интерфейсы доступа к данным библиотеки.
// Операции-запросы возвращают значение и error; операции-мутации
// возвращают Result с доменной ошибкой.
package repositories

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// BookRepository определяет интерфейс для работы с каталогом и экземплярами.
type BookRepository interface {
	Create(ctx context.Context, book *entities.Book) result.Result[*entities.Book, *errs.Error]

	FindByID(ctx context.Context, id string) (*entities.Book, error)

	FindCopyByID(ctx context.Context, copyID string) (*entities.BookCopy, error)

	FindCopiesByBookID(ctx context.Context, bookID string) ([]*entities.BookCopy, error)

	AddCopy(ctx context.Context, copy *entities.BookCopy) result.Result[*entities.BookCopy, *errs.Error]

	// UpdateCopyStatus переводит экземпляр из статуса from в to одним
	// условным обновлением. Если текущий статус не равен from,
	// возвращается entities.ErrCopyStatusConflict.
	UpdateCopyStatus(ctx context.Context, copyID string, from, to entities.CopyStatus) error
}
