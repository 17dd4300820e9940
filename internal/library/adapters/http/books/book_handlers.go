// Package books содержит HTTP обработчики каталога книг.
package books

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
	logHandlerRegister   = "book handler: register"
	logHandlerGet        = "book handler: get"
	logHandlerAddCopy    = "book handler: add copy"
	logHandlerListCopies = "book handler: list copies"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"
)

// Handler содержит HTTP обработчики каталога.
type Handler struct {
	bookUseCase api.BookUseCase
}

// NewHandler создает новый обработчик каталога.
func NewHandler(bookUseCase api.BookUseCase) *Handler {
	return &Handler{bookUseCase: bookUseCase}
}

// Register обрабатывает запрос на регистрацию книги.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerRegister)

	var req dto.CreateBookRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	if domainErr := dto.Validate(req); domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	registerResult := h.bookUseCase.RegisterBook(requestCtx, api.CreateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		ISBN:            req.ISBN,
		Category:        req.Category,
	})
	if registerResult.IsErr() {
		return respond.DomainError(ctx, registerResult.Error())
	}

	return respond.JSON(ctx, http.StatusCreated, registerResult.Value())
}

// Get обрабатывает запрос на получение книги по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerGet)

	getResult := h.bookUseCase.GetBookByID(requestCtx, ctx.Params("id"))
	if getResult.IsErr() {
		return respond.DomainError(ctx, getResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, getResult.Value())
}

// AddCopy обрабатывает запрос на добавление экземпляра книги.
func (h *Handler) AddCopy(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerAddCopy)

	var req dto.AddCopyRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	if domainErr := dto.Validate(req); domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	addResult := h.bookUseCase.AddCopy(requestCtx, ctx.Params("id"), req.Location)
	if addResult.IsErr() {
		return respond.DomainError(ctx, addResult.Error())
	}

	return respond.JSON(ctx, http.StatusCreated, addResult.Value())
}

// ListCopies обрабатывает запрос на список экземпляров книги.
func (h *Handler) ListCopies(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerListCopies)

	listResult := h.bookUseCase.ListCopies(requestCtx, ctx.Params("id"))
	if listResult.IsErr() {
		return respond.DomainError(ctx, listResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, fiber.Map{
		"copies": listResult.Value(),
	})
}
