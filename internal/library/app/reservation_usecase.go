package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

const (
	methodCreateReservation = "CreateReservation"
	methodCancelReservation = "CancelReservation"

	msgCreatingReservation  = "creating reservation"
	msgReservationCreated   = "reservation created successfully"
	msgCancelingReservation = "canceling reservation"
	msgReservationCanceled  = "reservation canceled successfully"
	msgReservationNotFound  = "reservation not found"
	msgUserNotFoundRes      = "user not found for reservation"
	msgBookNotFoundRes      = "book not found for reservation"
	msgCopyStillAvailable   = "book has an available copy"
	msgAlreadyReserved      = "user already has an active reservation"

	msgErrCheckingCopies   = "failed to check book copies"
	msgErrPersistingRes    = "failed to persist reservation"
	msgErrCheckingActive   = "failed to check active reservation"
	msgErrCountingQueue    = "failed to count reservation queue"
	msgErrCancelingRes     = "failed to cancel reservation"
	errFieldReservation    = "reservation"
	errMsgCheckingCopies   = "failed to check book copies"
	errMsgCheckingActive   = "failed to check active reservation"
	errMsgCountingQueue    = "failed to count reservation queue"
	errMsgCancelingRes     = "failed to cancel reservation"
)

// ReservationUseCaseImpl реализует интерфейс api.ReservationUseCase.
type ReservationUseCaseImpl struct {
	reservationRepo repositories.ReservationRepository
	bookRepo        repositories.BookRepository
	userRepo        repositories.UserRepository
}

// NewReservationUseCase создает новый сценарий резервирования.
func NewReservationUseCase(
	reservationRepo repositories.ReservationRepository,
	bookRepo repositories.BookRepository,
	userRepo repositories.UserRepository,
) api.ReservationUseCase {
	return &ReservationUseCaseImpl{
		reservationRepo: reservationRepo,
		bookRepo:        bookRepo,
		userRepo:        userRepo,
	}
}

// CreateReservation ставит читателя в очередь на книгу. Резервирование
// допустимо только когда ни один экземпляр книги не доступен и у
// читателя нет активного резервирования этой книги. Позиция в очереди -
// число активных резервирований плюс один.
func (u *ReservationUseCaseImpl) CreateReservation(ctx context.Context, input entities.CreateReservationInput) result.Result[*entities.Reservation, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodCreateReservation),
		zap.String("userID", input.UserID),
		zap.String("bookID", input.BookID))
	log.Debug(ctx, msgCreatingReservation)

	if _, err := u.userRepo.FindByID(ctx, input.UserID); err != nil {
		log.Debug(ctx, msgUserNotFoundRes, zap.Error(err))
		return result.Err[*entities.Reservation](errs.UserNotFound(input.UserID))
	}

	if _, err := u.bookRepo.FindByID(ctx, input.BookID); err != nil {
		log.Debug(ctx, msgBookNotFoundRes, zap.Error(err))
		return result.Err[*entities.Reservation](errs.NotFound(input.BookID))
	}

	copies, err := u.bookRepo.FindCopiesByBookID(ctx, input.BookID)
	if err != nil {
		log.Error(ctx, msgErrCheckingCopies, zap.Error(err))
		return result.Err[*entities.Reservation](errs.Validation(errFieldCopies, errMsgCheckingCopies))
	}
	for _, copy := range copies {
		if copy.Status == entities.CopyStatusAvailable {
			log.Debug(ctx, msgCopyStillAvailable, zap.String("copyID", copy.ID))
			return result.Err[*entities.Reservation](errs.BookAvailable(input.BookID))
		}
	}

	hasActive, err := u.reservationRepo.HasActive(ctx, input.UserID, input.BookID)
	if err != nil {
		log.Error(ctx, msgErrCheckingActive, zap.Error(err))
		return result.Err[*entities.Reservation](errs.Validation(errFieldReservation, errMsgCheckingActive))
	}
	if hasActive {
		log.Debug(ctx, msgAlreadyReserved)
		return result.Err[*entities.Reservation](errs.AlreadyReserved(input.UserID, input.BookID))
	}

	queueLength, err := u.reservationRepo.CountActiveByBookID(ctx, input.BookID)
	if err != nil {
		log.Error(ctx, msgErrCountingQueue, zap.Error(err))
		return result.Err[*entities.Reservation](errs.Validation(errFieldReservation, errMsgCountingQueue))
	}

	reservation := &entities.Reservation{
		UserID:        input.UserID,
		BookID:        input.BookID,
		ReservedAt:    time.Now(),
		Status:        entities.ReservationStatusPending,
		QueuePosition: queueLength + 1,
	}

	created := u.reservationRepo.Create(ctx, reservation)
	if created.IsErr() {
		log.Error(ctx, msgErrPersistingRes, zap.Error(created.Error()))
		return created
	}

	log.Info(ctx, msgReservationCreated,
		zap.String("reservationID", created.Value().ID),
		zap.Int("queuePosition", created.Value().QueuePosition))
	return created
}

// CancelReservation отменяет резервирование.
func (u *ReservationUseCaseImpl) CancelReservation(ctx context.Context, id string) result.Result[struct{}, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodCancelReservation),
		zap.String("reservationID", id))
	log.Debug(ctx, msgCancelingReservation)

	if err := u.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, entities.ErrReservationNotFound) {
			log.Debug(ctx, msgReservationNotFound)
			return result.Err[struct{}](errs.NotFound(id))
		}
		log.Error(ctx, msgErrCancelingRes, zap.Error(err))
		return result.Err[struct{}](errs.Validation(errFieldReservation, errMsgCancelingRes))
	}

	log.Info(ctx, msgReservationCanceled)
	return result.Ok[struct{}, *errs.Error](struct{}{})
}
