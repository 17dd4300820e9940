package repositories

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// ReservationRepository определяет интерфейс для работы с резервированиями.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entities.Reservation) result.Result[*entities.Reservation, *errs.Error]

	// HasActive сообщает, есть ли у читателя активное резервирование книги.
	HasActive(ctx context.Context, userID, bookID string) (bool, error)

	// CountActiveByBookID возвращает число активных резервирований книги.
	CountActiveByBookID(ctx context.Context, bookID string) (int, error)

	// Cancel помечает резервирование отмененным. Отсутствующее
	// резервирование возвращает entities.ErrReservationNotFound.
	Cancel(ctx context.Context, id string) error
}
