package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// LoanRepository реализует интерфейс repositories.LoanRepository.
type LoanRepository struct {
	pool PgxPoolInterface
}

// NewLoanRepository создает новый репозиторий выдач.
func NewLoanRepository(pool PgxPoolInterface) repositories.LoanRepository {
	return &LoanRepository{pool: pool}
}

// Create сохраняет новую выдачу.
func (r *LoanRepository) Create(ctx context.Context, input entities.CreateLoanInput, borrowedAt, dueDate time.Time) result.Result[*entities.Loan, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "loan"), zap.String("method", "Create"))
	log.Debug(ctx, "creating loan",
		zap.String("userID", input.UserID),
		zap.String("bookCopyID", input.BookCopyID))

	query := `
        INSERT INTO loans (user_id, book_copy_id, borrowed_at, due_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	loan := entities.Loan{
		UserID:     input.UserID,
		BookCopyID: input.BookCopyID,
		BorrowedAt: borrowedAt,
		DueDate:    dueDate,
	}
	err := r.pool.QueryRow(ctx, query,
		input.UserID, input.BookCopyID, borrowedAt, dueDate,
	).Scan(&loan.ID)
	if err != nil {
		log.Error(ctx, "failed to create loan", zap.Error(err))
		return result.Err[*entities.Loan](errs.Validation("loan", "failed to create loan"))
	}

	log.Debug(ctx, "loan created", zap.String("loanID", loan.ID))
	return result.Ok[*entities.Loan, *errs.Error](&loan)
}

// FindByID находит выдачу по идентификатору.
func (r *LoanRepository) FindByID(ctx context.Context, id string) (*entities.Loan, error) {
	log := logger.Log(ctx).With(zap.String("repository", "loan"), zap.String("method", "FindByID"))

	query := `
        SELECT id, user_id, book_copy_id, borrowed_at, due_date, returned_at
        FROM loans
        WHERE id = $1
    `

	var loan entities.Loan
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&loan.ID,
		&loan.UserID,
		&loan.BookCopyID,
		&loan.BorrowedAt,
		&loan.DueDate,
		&loan.ReturnedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "loan not found", zap.String("id", id))
			return nil, entities.ErrLoanNotFound
		}
		log.Error(ctx, "failed to find loan", zap.Error(err))
		return nil, fmt.Errorf("failed to find loan: %w", err)
	}

	return &loan, nil
}

// CountActive возвращает число незакрытых выдач читателя.
func (r *LoanRepository) CountActive(ctx context.Context, userID string) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "loan"), zap.String("method", "CountActive"))

	query := `
        SELECT COUNT(*)
        FROM loans
        WHERE user_id = $1 AND returned_at IS NULL
    `

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		log.Error(ctx, "failed to count active loans", zap.Error(err))
		return 0, fmt.Errorf("failed to count active loans: %w", err)
	}

	return count, nil
}

// MarkReturned закрывает выдачу и возвращает ее обновленное состояние.
func (r *LoanRepository) MarkReturned(ctx context.Context, loanID string, returnedAt time.Time) result.Result[*entities.Loan, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("repository", "loan"), zap.String("method", "MarkReturned"))
	log.Debug(ctx, "marking loan returned", zap.String("loanID", loanID))

	query := `
        UPDATE loans
        SET returned_at = $1
        WHERE id = $2 AND returned_at IS NULL
        RETURNING id, user_id, book_copy_id, borrowed_at, due_date, returned_at
    `

	var loan entities.Loan
	err := r.pool.QueryRow(ctx, query, returnedAt, loanID).Scan(
		&loan.ID,
		&loan.UserID,
		&loan.BookCopyID,
		&loan.BorrowedAt,
		&loan.DueDate,
		&loan.ReturnedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "active loan not found", zap.String("loanID", loanID))
			return result.Err[*entities.Loan](errs.NotFound(loanID))
		}
		log.Error(ctx, "failed to mark loan returned", zap.Error(err))
		return result.Err[*entities.Loan](errs.Validation("loan", "failed to mark loan returned"))
	}

	return result.Ok[*entities.Loan, *errs.Error](&loan)
}

// ListSummariesByUserID возвращает выдачи читателя для его карточки.
// Просроченной считается незакрытая выдача с due_date раньше asOf.
func (r *LoanRepository) ListSummariesByUserID(ctx context.Context, userID string, asOf time.Time) ([]entities.LoanSummary, error) {
	log := logger.Log(ctx).With(zap.String("repository", "loan"), zap.String("method", "ListSummariesByUserID"))

	query := `
        SELECT l.id, l.book_copy_id, b.title, l.borrowed_at, l.due_date, l.returned_at,
               (l.returned_at IS NULL AND l.due_date < $2) AS is_overdue
        FROM loans l
        JOIN book_copies bc ON bc.id = l.book_copy_id
        JOIN books b ON b.id = bc.book_id
        WHERE l.user_id = $1
        ORDER BY l.borrowed_at DESC
    `

	rows, err := r.pool.Query(ctx, query, userID, asOf)
	if err != nil {
		log.Error(ctx, "failed to list loan summaries", zap.Error(err))
		return nil, fmt.Errorf("failed to list loan summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]entities.LoanSummary, 0)
	for rows.Next() {
		var summary entities.LoanSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.BookCopyID,
			&summary.BookTitle,
			&summary.BorrowedAt,
			&summary.DueDate,
			&summary.ReturnedAt,
			&summary.IsOverdue,
		); err != nil {
			log.Error(ctx, "failed to scan loan summary", zap.Error(err))
			return nil, fmt.Errorf("failed to scan loan summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating loan summaries", zap.Error(err))
		return nil, fmt.Errorf("error iterating loan summaries: %w", err)
	}

	return summaries, nil
}
