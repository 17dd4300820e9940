// Package users содержит HTTP обработчики управления читателями.
package users

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"libris/internal/library/adapters/http/dto"
	"libris/internal/library/adapters/http/middleware"
	"libris/internal/library/adapters/http/respond"
	"libris/internal/library/ports/api"
	"libris/pkg/logger"
)

const (
	logHandlerCreate    = "user handler: create"
	logHandlerGet       = "user handler: get"
	logHandlerUpdate    = "user handler: update"
	logHandlerDelete    = "user handler: delete"
	logHandlerWithLoans = "user handler: get with loans"
	logHandlerSearch    = "user handler: search"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"
)

// Handler содержит HTTP обработчики читателей.
type Handler struct {
	userUseCase api.UserUseCase
}

// NewHandler создает новый обработчик читателей.
func NewHandler(userUseCase api.UserUseCase) *Handler {
	return &Handler{userUseCase: userUseCase}
}

// Create обрабатывает запрос на регистрацию читателя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCreate)

	var req dto.CreateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	createResult := h.userUseCase.CreateUser(requestCtx, api.CreateUserInput{
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if createResult.IsErr() {
		return respond.DomainError(ctx, createResult.Error())
	}

	return respond.JSON(ctx, http.StatusCreated, createResult.Value())
}

// Get обрабатывает запрос на получение читателя по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerGet)

	getResult := h.userUseCase.GetUserByID(requestCtx, ctx.Params("id"))
	if getResult.IsErr() {
		return respond.DomainError(ctx, getResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, getResult.Value())
}

// Update обрабатывает запрос на обновление читателя.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerUpdate)

	var req dto.UpdateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	updateResult := h.userUseCase.UpdateUser(requestCtx, ctx.Params("id"), api.UpdateUserInput{
		Name:      req.Name,
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		LoanLimit: req.LoanLimit,
	})
	if updateResult.IsErr() {
		return respond.DomainError(ctx, updateResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, updateResult.Value())
}

// Delete обрабатывает запрос на удаление читателя.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerDelete)

	deleteResult := h.userUseCase.DeleteUser(requestCtx, ctx.Params("id"))
	if deleteResult.IsErr() {
		return respond.DomainError(ctx, deleteResult.Error())
	}

	return ctx.SendStatus(http.StatusNoContent)
}

// GetWithLoans обрабатывает запрос на читателя вместе с его выдачами.
func (h *Handler) GetWithLoans(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerWithLoans)

	getResult := h.userUseCase.GetUserWithLoans(requestCtx, ctx.Params("id"))
	if getResult.IsErr() {
		return respond.DomainError(ctx, getResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, getResult.Value())
}

// Search обрабатывает запрос на поиск читателей по имени или email.
func (h *Handler) Search(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerSearch)

	searchResult := h.userUseCase.SearchUsers(requestCtx, ctx.Query("keyword"))
	if searchResult.IsErr() {
		return respond.DomainError(ctx, searchResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, fiber.Map{
		"users": searchResult.Value(),
	})
}
