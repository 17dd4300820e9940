// Package reports содержит HTTP обработчики отчетности библиотеки.
package reports

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"libris/internal/library/adapters/http/dto"
	"libris/internal/library/adapters/http/middleware"
	"libris/internal/library/adapters/http/respond"
	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/api"
	"libris/pkg/logger"
)

const (
	logHandlerSummary       = "report handler: statistics summary"
	logHandlerPopularBooks  = "report handler: popular books"
	logHandlerCategories    = "report handler: category statistics"
	logHandlerOverdue       = "report handler: overdue records"
	logHandlerExport        = "report handler: csv export"

	errInvalidRequest = "invalid request"
	errFieldRequest   = "request"

	dateLayout = "2006-01-02"

	exportTypePopular  = "popular"
	exportTypeCategory = "category"
)

// Handler содержит HTTP обработчики отчетов.
type Handler struct {
	reportUseCase api.ReportUseCase
}

// NewHandler создает новый обработчик отчетов.
func NewHandler(reportUseCase api.ReportUseCase) *Handler {
	return &Handler{reportUseCase: reportUseCase}
}

// parseRange разбирает период отчета из query-параметров. Даты
// принимаются в формате YYYY-MM-DD или RFC 3339.
func parseRange(ctx fiber.Ctx) (entities.DateRange, int, *errs.Error) {
	var req dto.ReportRangeRequest
	if err := ctx.Bind().Query(&req); err != nil {
		return entities.DateRange{}, 0, errs.Validation(errFieldRequest, errInvalidRequest)
	}

	if domainErr := dto.Validate(req); domainErr != nil {
		return entities.DateRange{}, 0, domainErr
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return entities.DateRange{}, 0, errs.Validation("startDate", "startDate must be a valid date")
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return entities.DateRange{}, 0, errs.Validation("endDate", "endDate must be a valid date")
	}

	return entities.DateRange{StartDate: startDate, EndDate: endDate}, req.Limit, nil
}

func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Summary обрабатывает запрос на сводную статистику за период.
func (h *Handler) Summary(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerSummary)

	dateRange, _, domainErr := parseRange(ctx)
	if domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	summaryResult := h.reportUseCase.GetStatisticsSummary(requestCtx, dateRange)
	if summaryResult.IsErr() {
		return respond.DomainError(ctx, summaryResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, summaryResult.Value())
}

// PopularBooks обрабатывает запрос на рейтинг популярных книг.
func (h *Handler) PopularBooks(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerPopularBooks)

	dateRange, limit, domainErr := parseRange(ctx)
	if domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	rankingResult := h.reportUseCase.GetPopularBooksRanking(requestCtx, dateRange, limit)
	if rankingResult.IsErr() {
		return respond.DomainError(ctx, rankingResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, rankingResult.Value())
}

// Categories обрабатывает запрос на статистику выдач по категориям.
func (h *Handler) Categories(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerCategories)

	dateRange, _, domainErr := parseRange(ctx)
	if domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	statsResult := h.reportUseCase.GetCategoryStatistics(requestCtx, dateRange)
	if statsResult.IsErr() {
		return respond.DomainError(ctx, statsResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, statsResult.Value())
}

// Overdue обрабатывает запрос на список просроченных выдач.
func (h *Handler) Overdue(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerOverdue)

	overdueResult := h.reportUseCase.ListOverdueRecords(requestCtx, time.Now())
	if overdueResult.IsErr() {
		return respond.DomainError(ctx, overdueResult.Error())
	}

	return respond.JSON(ctx, http.StatusOK, fiber.Map{
		"records": overdueResult.Value(),
	})
}

// Export отдает отчет в формате CSV. Параметр type выбирает отчет:
// popular или category.
func (h *Handler) Export(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logHandlerExport)

	exportType := ctx.Query("type")

	dateRange, limit, domainErr := parseRange(ctx)
	if domainErr != nil {
		return respond.DomainError(ctx, domainErr)
	}

	var rows [][]string
	switch exportType {
	case exportTypePopular:
		rankingResult := h.reportUseCase.GetPopularBooksRanking(requestCtx, dateRange, limit)
		if rankingResult.IsErr() {
			return respond.DomainError(ctx, rankingResult.Error())
		}
		rows = append(rows, []string{"rank", "title", "author", "loanCount"})
		for _, item := range rankingResult.Value().Items {
			rows = append(rows, []string{
				strconv.Itoa(item.Rank),
				item.Title,
				item.Author,
				strconv.Itoa(item.LoanCount),
			})
		}
	case exportTypeCategory:
		statsResult := h.reportUseCase.GetCategoryStatistics(requestCtx, dateRange)
		if statsResult.IsErr() {
			return respond.DomainError(ctx, statsResult.Error())
		}
		rows = append(rows, []string{"category", "loanCount", "percentage"})
		for _, item := range statsResult.Value().Items {
			rows = append(rows, []string{
				item.Category,
				strconv.Itoa(item.LoanCount),
				strconv.FormatFloat(item.Percentage, 'f', 1, 64),
			})
		}
	default:
		return respond.DomainError(ctx,
			errs.Validation("type", "type must be one of: popular, category"))
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		log.Error(requestCtx, "failed to encode report", zap.Error(err))
		return respond.DomainError(ctx, errs.Validation("export", "failed to encode report"))
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportType+`_report.csv"`)
	return ctx.Status(http.StatusOK).Send(buf.Bytes())
}
