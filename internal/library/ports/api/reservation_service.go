package api

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// ReservationUseCase определяет сценарии резервирования книг.
type ReservationUseCase interface {
	// CreateReservation ставит читателя в очередь на книгу, все
	// экземпляры которой заняты. Позиция в очереди начинается с 1.
	CreateReservation(ctx context.Context, input entities.CreateReservationInput) result.Result[*entities.Reservation, *errs.Error]

	CancelReservation(ctx context.Context, id string) result.Result[struct{}, *errs.Error]
}
