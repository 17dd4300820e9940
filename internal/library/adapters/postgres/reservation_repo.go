package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// Активными считаются резервирования в статусах PENDING и NOTIFIED.
const activeReservationStatuses = `('PENDING', 'NOTIFIED')`

// ReservationRepository реализует интерфейс repositories.ReservationRepository.
type ReservationRepository struct {
	pool PgxPoolInterface
}

// NewReservationRepository создает новый репозиторий резервирований.
func NewReservationRepository(pool PgxPoolInterface) repositories.ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Create сохраняет новое резервирование.
func (r *ReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) result.Result[*entities.Reservation, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "reservation"), zap.String("method", "Create"))
	log.Debug(ctx, "creating reservation",
		zap.String("userID", reservation.UserID),
		zap.String("bookID", reservation.BookID))

	query := `
        INSERT INTO reservations (user_id, book_id, reserved_at, status, queue_position)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	created := *reservation
	err := r.pool.QueryRow(ctx, query,
		reservation.UserID, reservation.BookID, reservation.ReservedAt,
		reservation.Status, reservation.QueuePosition,
	).Scan(&created.ID)
	if err != nil {
		log.Error(ctx, "failed to create reservation", zap.Error(err))
		return result.Err[*entities.Reservation](errs.Validation("reservation", "failed to create reservation"))
	}

	log.Debug(ctx, "reservation created", zap.String("reservationID", created.ID))
	return result.Ok[*entities.Reservation, *errs.Error](&created)
}

// HasActive сообщает, есть ли у читателя активное резервирование книги.
func (r *ReservationRepository) HasActive(ctx context.Context, userID, bookID string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reservation"), zap.String("method", "HasActive"))

	query := `
        SELECT EXISTS (
            SELECT 1 FROM reservations
            WHERE user_id = $1 AND book_id = $2 AND status IN ` + activeReservationStatuses + `
        )
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, bookID).Scan(&exists); err != nil {
		log.Error(ctx, "failed to check active reservation", zap.Error(err))
		return false, fmt.Errorf("failed to check active reservation: %w", err)
	}

	return exists, nil
}

// CountActiveByBookID возвращает длину очереди резервирований книги.
func (r *ReservationRepository) CountActiveByBookID(ctx context.Context, bookID string) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reservation"), zap.String("method", "CountActiveByBookID"))

	query := `
        SELECT COUNT(*) FROM reservations
        WHERE book_id = $1 AND status IN ` + activeReservationStatuses

	var count int
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&count); err != nil {
		log.Error(ctx, "failed to count active reservations", zap.Error(err))
		return 0, fmt.Errorf("failed to count active reservations: %w", err)
	}

	return count, nil
}

// Cancel помечает резервирование отмененным.
func (r *ReservationRepository) Cancel(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "reservation"), zap.String("method", "Cancel"))
	log.Debug(ctx, "canceling reservation", zap.String("reservationID", id))

	query := `
        UPDATE reservations
        SET status = $1
        WHERE id = $2 AND status IN ` + activeReservationStatuses

	tag, err := r.pool.Exec(ctx, query, entities.ReservationStatusCancelled, id)
	if err != nil {
		log.Error(ctx, "failed to cancel reservation", zap.Error(err))
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "active reservation not found", zap.String("reservationID", id))
		return entities.ErrReservationNotFound
	}

	return nil
}
