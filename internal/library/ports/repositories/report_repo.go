package repositories

import (
	"context"
	"time"

	"libris/internal/library/domain/entities"
)

// ReportRepository определяет интерфейс для получения отчетных данных.
// Все операции - чтение независимых счетчиков и выборок.
type ReportRepository interface {
	CountLoans(ctx context.Context, dateRange entities.DateRange) (int, error)

	CountReturns(ctx context.Context, dateRange entities.DateRange) (int, error)

	CountOverdues(ctx context.Context, dateRange entities.DateRange) (int, error)

	// PopularBooks возвращает рейтинг книг по числу выдач. Ранжирование
	// и ограничение количества выполняются репозиторием.
	PopularBooks(ctx context.Context, dateRange entities.DateRange, limit int) ([]entities.PopularBookItem, error)

	// CategoryStatistics возвращает счетчики выдач и проценты по категориям.
	CategoryStatistics(ctx context.Context, dateRange entities.DateRange) ([]entities.CategoryStatisticsItem, error)
}

// OverdueRecordRepository определяет интерфейс для записей о просрочках.
type OverdueRecordRepository interface {
	// ListOverdue возвращает активные выдачи, просроченные на момент asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]entities.OverdueRecord, error)
}
