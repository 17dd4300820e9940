package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
)

// ReportRepository реализует интерфейсы repositories.ReportRepository и
// repositories.OverdueRecordRepository.
type ReportRepository struct {
	pool PgxPoolInterface
}

// NewReportRepository создает новый репозиторий отчетов.
func NewReportRepository(pool PgxPoolInterface) *ReportRepository {
	return &ReportRepository{pool: pool}
}

var (
	_ repositories.ReportRepository        = (*ReportRepository)(nil)
	_ repositories.OverdueRecordRepository = (*ReportRepository)(nil)
)

// CountLoans возвращает число выдач за период.
func (r *ReportRepository) CountLoans(ctx context.Context, dateRange entities.DateRange) (int, error) {
	query := `
        SELECT COUNT(*) FROM loans
        WHERE borrowed_at >= $1 AND borrowed_at <= $2
    `
	return r.countByRange(ctx, "CountLoans", query, dateRange)
}

// CountReturns возвращает число возвратов за период.
func (r *ReportRepository) CountReturns(ctx context.Context, dateRange entities.DateRange) (int, error) {
	query := `
        SELECT COUNT(*) FROM loans
        WHERE returned_at >= $1 AND returned_at <= $2
    `
	return r.countByRange(ctx, "CountReturns", query, dateRange)
}

// CountOverdues возвращает число выдач, просроченных в пределах периода:
// срок возврата истек в периоде, а возврат не состоялся вовремя.
func (r *ReportRepository) CountOverdues(ctx context.Context, dateRange entities.DateRange) (int, error) {
	query := `
        SELECT COUNT(*) FROM loans
        WHERE due_date >= $1 AND due_date <= $2
          AND (returned_at IS NULL OR returned_at > due_date)
    `
	return r.countByRange(ctx, "CountOverdues", query, dateRange)
}

func (r *ReportRepository) countByRange(ctx context.Context, method, query string, dateRange entities.DateRange) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "report"), zap.String("method", method))

	var count int
	if err := r.pool.QueryRow(ctx, query, dateRange.StartDate, dateRange.EndDate).Scan(&count); err != nil {
		log.Error(ctx, "failed to count loans for report", zap.Error(err))
		return 0, fmt.Errorf("failed to count loans for report: %w", err)
	}

	return count, nil
}

// PopularBooks возвращает книги, упорядоченные по числу выдач за период.
func (r *ReportRepository) PopularBooks(ctx context.Context, dateRange entities.DateRange, limit int) ([]entities.PopularBookItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "report"), zap.String("method", "PopularBooks"))

	query := `
        SELECT b.id, b.title, b.author, COUNT(l.id) AS loan_count,
               ROW_NUMBER() OVER (ORDER BY COUNT(l.id) DESC, b.title) AS rank
        FROM loans l
        JOIN book_copies bc ON bc.id = l.book_copy_id
        JOIN books b ON b.id = bc.book_id
        WHERE l.borrowed_at >= $1 AND l.borrowed_at <= $2
        GROUP BY b.id, b.title, b.author
        ORDER BY loan_count DESC, b.title
        LIMIT $3
    `

	rows, err := r.pool.Query(ctx, query, dateRange.StartDate, dateRange.EndDate, limit)
	if err != nil {
		log.Error(ctx, "failed to rank popular books", zap.Error(err))
		return nil, fmt.Errorf("failed to rank popular books: %w", err)
	}
	defer rows.Close()

	items := make([]entities.PopularBookItem, 0, limit)
	for rows.Next() {
		var item entities.PopularBookItem
		if err := rows.Scan(&item.BookID, &item.Title, &item.Author, &item.LoanCount, &item.Rank); err != nil {
			log.Error(ctx, "failed to scan popular book", zap.Error(err))
			return nil, fmt.Errorf("failed to scan popular book: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating popular books", zap.Error(err))
		return nil, fmt.Errorf("error iterating popular books: %w", err)
	}

	return items, nil
}

// CategoryStatistics возвращает счетчики выдач по категориям. Книги без
// категории попадают в группу uncategorized.
func (r *ReportRepository) CategoryStatistics(ctx context.Context, dateRange entities.DateRange) ([]entities.CategoryStatisticsItem, error) {
	log := logger.Log(ctx).With(zap.String("repository", "report"), zap.String("method", "CategoryStatistics"))

	query := `
        SELECT COALESCE(b.category, 'uncategorized') AS category, COUNT(l.id) AS loan_count
        FROM loans l
        JOIN book_copies bc ON bc.id = l.book_copy_id
        JOIN books b ON b.id = bc.book_id
        WHERE l.borrowed_at >= $1 AND l.borrowed_at <= $2
        GROUP BY COALESCE(b.category, 'uncategorized')
        ORDER BY loan_count DESC, category
    `

	rows, err := r.pool.Query(ctx, query, dateRange.StartDate, dateRange.EndDate)
	if err != nil {
		log.Error(ctx, "failed to aggregate category statistics", zap.Error(err))
		return nil, fmt.Errorf("failed to aggregate category statistics: %w", err)
	}
	defer rows.Close()

	items := make([]entities.CategoryStatisticsItem, 0)
	for rows.Next() {
		var item entities.CategoryStatisticsItem
		if err := rows.Scan(&item.Category, &item.LoanCount); err != nil {
			log.Error(ctx, "failed to scan category statistics", zap.Error(err))
			return nil, fmt.Errorf("failed to scan category statistics: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating category statistics", zap.Error(err))
		return nil, fmt.Errorf("error iterating category statistics: %w", err)
	}

	return items, nil
}

// ListOverdue возвращает незакрытые выдачи, просроченные на момент asOf.
func (r *ReportRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]entities.OverdueRecord, error) {
	log := logger.Log(ctx).With(zap.String("repository", "report"), zap.String("method", "ListOverdue"))

	query := `
        SELECT l.id, u.id, u.name, b.title, l.due_date,
               GREATEST(0, EXTRACT(DAY FROM $1::timestamptz - l.due_date)::int) AS overdue_days
        FROM loans l
        JOIN users u ON u.id = l.user_id
        JOIN book_copies bc ON bc.id = l.book_copy_id
        JOIN books b ON b.id = bc.book_id
        WHERE l.returned_at IS NULL AND l.due_date < $1
        ORDER BY l.due_date
    `

	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		log.Error(ctx, "failed to list overdue records", zap.Error(err))
		return nil, fmt.Errorf("failed to list overdue records: %w", err)
	}
	defer rows.Close()

	records := make([]entities.OverdueRecord, 0)
	for rows.Next() {
		var record entities.OverdueRecord
		if err := rows.Scan(
			&record.LoanID,
			&record.UserID,
			&record.UserName,
			&record.BookTitle,
			&record.DueDate,
			&record.OverdueDays,
		); err != nil {
			log.Error(ctx, "failed to scan overdue record", zap.Error(err))
			return nil, fmt.Errorf("failed to scan overdue record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating overdue records", zap.Error(err))
		return nil, fmt.Errorf("error iterating overdue records: %w", err)
	}

	return records, nil
}
