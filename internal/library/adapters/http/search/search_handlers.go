// Package search содержит HTTP обработчик поиска по каталогу.
package search

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
	logHandlerSearch = "search handler: search"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"
)

// Handler содержит HTTP обработчик поиска.
type Handler struct {
	searchUseCase api.SearchUseCase
}

// NewHandler создает новый обработчик поиска.
func NewHandler(searchUseCase api.SearchUseCase) *Handler {
	return &Handler{searchUseCase: searchUseCase}
}

// Search обрабатывает запрос на поиск книг по каталогу.
func (h *Handler) Search(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerSearch)

	var req dto.SearchRequest
	if err := ctx.Bind().Query(&req); err != nil {
		log.Error(requestCtx, errInvalidRequest, zap.Error(err))
		return respond.BadRequest(ctx, errFieldRequest, errInvalidRequest)
	}

	searchResult := h.searchUseCase.Search(requestCtx, api.SearchInput{
		Keyword:             req.Keyword,
		SortBy:              req.SortBy,
		SortOrder:           req.SortOrder,
		PublicationYearFrom: req.PublicationYearFrom,
		PublicationYearTo:   req.PublicationYearTo,
		Category:            req.Category,
		AvailableOnly:       req.AvailableOnly,
	})
	if searchResult.IsErr() {
		return respond.DomainError(ctx, searchResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, searchResult.Value())
}
