// Package reservations содержит HTTP обработчики резервирования книг.
package reservations

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"libris/internal/library/adapters/http/dto"
	"libris/internal/library/adapters/http/middleware"
	"libris/internal/library/adapters/http/respond"
	"libris/internal/library/domain/entities"
	"libris/internal/library/ports/api"
	"libris/pkg/logger"
)

const (
	logHandlerCreate = "reservation handler: create"
	logHandlerCancel = "reservation handler: cancel"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"
)

// Handler содержит HTTP обработчики резервирований.
type Handler struct {
	reservationUseCase api.ReservationUseCase
}

// NewHandler создает новый обработчик резервирований.
func NewHandler(reservationUseCase api.ReservationUseCase) *Handler {
	return &Handler{reservationUseCase: reservationUseCase}
}

// Create обрабатывает запрос на резервирование книги.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCreate)

	var req dto.CreateReservationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	if domainErr := dto.Validate(req); domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	createResult := h.reservationUseCase.CreateReservation(requestCtx, entities.CreateReservationInput{
		UserID: req.UserID,
		BookID: req.BookID,
	})
	if createResult.IsErr() {
		return respond.DomainError(ctx, createResult.Error())
	}

	return respond.JSON(ctx, http.StatusCreated, createResult.Value())
}

// Cancel обрабатывает запрос на отмену резервирования.
func (h *Handler) Cancel(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCancel)

	cancelResult := h.reservationUseCase.CancelReservation(requestCtx, ctx.Params("id"))
	if cancelResult.IsErr() {
		return respond.DomainError(ctx, cancelResult.Error())
	}

	return ctx.SendStatus(http.StatusNoContent)
}
