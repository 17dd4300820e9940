// Package loans содержит HTTP обработчики выдачи и возврата книг.
package loans

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
	logHandlerCreate = "loan handler: create"
	logHandlerReturn = "loan handler: return"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"
)

// Handler содержит HTTP обработчики выдач.
type Handler struct {
	loanUseCase api.LoanUseCase
}

// NewHandler создает новый обработчик выдач.
func NewHandler(loanUseCase api.LoanUseCase) *Handler {
	return &Handler{loanUseCase: loanUseCase}
}

// Create обрабатывает запрос на выдачу экземпляра читателю.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCreate)

	var req dto.CreateLoanRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	if domainErr := dto.Validate(req); domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	createResult := h.loanUseCase.CreateLoan(requestCtx, entities.CreateLoanInput{
		UserID:     req.UserID,
		BookCopyID: req.BookCopyID,
	})
	if createResult.IsErr() {
		return respond.DomainError(ctx, createResult.Error())
	}

	return respond.JSON(ctx, http.StatusCreated, createResult.Value())
}

// Return обрабатывает запрос на возврат выдачи.
func (h *Handler) Return(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerReturn)

	returnResult := h.loanUseCase.ReturnLoan(requestCtx, ctx.Params("id"))
	if returnResult.IsErr() {
		return respond.DomainError(ctx, returnResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, returnResult.Value())
}
