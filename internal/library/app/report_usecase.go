package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// DefaultPopularBooksLimit - размер рейтинга популярных книг по умолчанию.
const DefaultPopularBooksLimit = 10

const (
	methodGetStatisticsSummary   = "GetStatisticsSummary"
	methodGetPopularBooksRanking = "GetPopularBooksRanking"
	methodGetCategoryStatistics  = "GetCategoryStatistics"
	methodListOverdueRecords     = "ListOverdueRecords"

	msgBuildingSummary    = "building statistics summary"
	msgBuildingRanking    = "building popular books ranking"
	msgBuildingCategories = "building category statistics"
	msgListingOverdue     = "listing overdue records"
	msgInvalidDateRange   = "invalid date range"

	msgErrCountingStats      = "failed to count loan statistics"
	msgErrRankingBooks       = "failed to rank popular books"
	msgErrCategoryStats      = "failed to aggregate category statistics"
	msgErrListingOverdue     = "failed to list overdue records"
	errFieldDateRange        = "dateRange"
	errMsgBadDateRange       = "startDate must be on or before endDate"
	errMsgCountingStats      = "failed to count loan statistics"
	errMsgRankingBooks       = "failed to rank popular books"
	errMsgCategoryStats      = "failed to aggregate category statistics"
	errMsgListingOverdue     = "failed to list overdue records"
)

// ReportUseCaseImpl реализует интерфейс api.ReportUseCase.
type ReportUseCaseImpl struct {
	reportRepo  repositories.ReportRepository
	overdueRepo repositories.OverdueRecordRepository
}

// NewReportUseCase создает новый сценарий отчетности.
func NewReportUseCase(
	reportRepo repositories.ReportRepository,
	overdueRepo repositories.OverdueRecordRepository,
) api.ReportUseCase {
	return &ReportUseCaseImpl{
		reportRepo:  reportRepo,
		overdueRepo: overdueRepo,
	}
}

// GetStatisticsSummary собирает сводку по периоду. Три счетчика независимы
// и выполняются параллельно.
func (u *ReportUseCaseImpl) GetStatisticsSummary(ctx context.Context, dateRange entities.DateRange) result.Result[*entities.StatisticsSummary, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodGetStatisticsSummary))
	log.Debug(ctx, msgBuildingSummary,
		zap.Time("startDate", dateRange.StartDate),
		zap.Time("endDate", dateRange.EndDate))

	if !dateRange.IsValid() {
		log.Debug(ctx, msgInvalidDateRange)
		return result.Err[*entities.StatisticsSummary](errs.InvalidDateRange(errMsgBadDateRange))
	}

	var loanCount, returnCount, overdueCount int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		loanCount, err = u.reportRepo.CountLoans(gctx, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		returnCount, err = u.reportRepo.CountReturns(gctx, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		overdueCount, err = u.reportRepo.CountOverdues(gctx, dateRange)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error(ctx, msgErrCountingStats, zap.Error(err))
		return result.Err[*entities.StatisticsSummary](errs.Validation(errFieldDateRange, errMsgCountingStats))
	}

	return result.Ok[*entities.StatisticsSummary, *errs.Error](&entities.StatisticsSummary{
		LoanCount:    loanCount,
		ReturnCount:  returnCount,
		OverdueCount: overdueCount,
		DateRange:    dateRange,
	})
}

// GetPopularBooksRanking строит рейтинг книг по числу выдач за период.
// Нулевой limit заменяется значением по умолчанию.
func (u *ReportUseCaseImpl) GetPopularBooksRanking(ctx context.Context, dateRange entities.DateRange, limit int) result.Result[*entities.PopularBooksRanking, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodGetPopularBooksRanking))
	log.Debug(ctx, msgBuildingRanking, zap.Int("limit", limit))

	if !dateRange.IsValid() {
		log.Debug(ctx, msgInvalidDateRange)
		return result.Err[*entities.PopularBooksRanking](errs.InvalidDateRange(errMsgBadDateRange))
	}
	if limit <= 0 {
		limit = DefaultPopularBooksLimit
	}

	items, err := u.reportRepo.PopularBooks(ctx, dateRange, limit)
	if err != nil {
		log.Error(ctx, msgErrRankingBooks, zap.Error(err))
		return result.Err[*entities.PopularBooksRanking](errs.Validation(errFieldDateRange, errMsgRankingBooks))
	}

	return result.Ok[*entities.PopularBooksRanking, *errs.Error](&entities.PopularBooksRanking{
		Items:     items,
		DateRange: dateRange,
	})
}

// GetCategoryStatistics агрегирует выдачи по категориям. Итоговая сумма
// считается по фактическим элементам, а не берется из хранилища.
func (u *ReportUseCaseImpl) GetCategoryStatistics(ctx context.Context, dateRange entities.DateRange) result.Result[*entities.CategoryStatistics, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodGetCategoryStatistics))
	log.Debug(ctx, msgBuildingCategories)

	if !dateRange.IsValid() {
		log.Debug(ctx, msgInvalidDateRange)
		return result.Err[*entities.CategoryStatistics](errs.InvalidDateRange(errMsgBadDateRange))
	}

	items, err := u.reportRepo.CategoryStatistics(ctx, dateRange)
	if err != nil {
		log.Error(ctx, msgErrCategoryStats, zap.Error(err))
		return result.Err[*entities.CategoryStatistics](errs.Validation(errFieldDateRange, errMsgCategoryStats))
	}

	total := 0
	for _, item := range items {
		total += item.LoanCount
	}
	if total > 0 {
		for i := range items {
			items[i].Percentage = float64(items[i].LoanCount) / float64(total) * 100
		}
	}

	return result.Ok[*entities.CategoryStatistics, *errs.Error](&entities.CategoryStatistics{
		Items:          items,
		TotalLoanCount: total,
		DateRange:      dateRange,
	})
}

// ListOverdueRecords возвращает выдачи, просроченные на момент asOf.
func (u *ReportUseCaseImpl) ListOverdueRecords(ctx context.Context, asOf time.Time) result.Result[[]entities.OverdueRecord, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodListOverdueRecords))
	log.Debug(ctx, msgListingOverdue, zap.Time("asOf", asOf))

	records, err := u.overdueRepo.ListOverdue(ctx, asOf)
	if err != nil {
		log.Error(ctx, msgErrListingOverdue, zap.Error(err))
		return result.Err[[]entities.OverdueRecord](errs.Validation(errFieldLoans, errMsgListingOverdue))
	}

	return result.Ok[[]entities.OverdueRecord, *errs.Error](records)
}
