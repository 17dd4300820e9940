package api

import (
	"context"
	"time"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// ReportUseCase определяет сценарии отчетности. Все операции с периодом
// сначала проверяют его корректность (StartDate <= EndDate).
type ReportUseCase interface {
	GetStatisticsSummary(ctx context.Context, dateRange entities.DateRange) result.Result[*entities.StatisticsSummary, *errs.Error]

	GetPopularBooksRanking(ctx context.Context, dateRange entities.DateRange, limit int) result.Result[*entities.PopularBooksRanking, *errs.Error]

	GetCategoryStatistics(ctx context.Context, dateRange entities.DateRange) result.Result[*entities.CategoryStatistics, *errs.Error]

	ListOverdueRecords(ctx context.Context, asOf time.Time) result.Result[[]entities.OverdueRecord, *errs.Error]
}
