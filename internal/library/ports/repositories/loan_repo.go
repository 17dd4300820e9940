package repositories

import (
	"context"
	"time"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// LoanRepository определяет интерфейс для работы с выдачами.
type LoanRepository interface {
	Create(ctx context.Context, input entities.CreateLoanInput, borrowedAt, dueDate time.Time) result.Result[*entities.Loan, *errs.Error]

	FindByID(ctx context.Context, id string) (*entities.Loan, error)

	// CountActive возвращает число активных выдач читателя
	// (returned_at IS NULL).
	CountActive(ctx context.Context, userID string) (int, error)

	MarkReturned(ctx context.Context, loanID string, returnedAt time.Time) result.Result[*entities.Loan, *errs.Error]

	// ListSummariesByUserID возвращает выдачи читателя для его карточки,
	// включая признак просрочки на момент asOf.
	ListSummariesByUserID(ctx context.Context, userID string, asOf time.Time) ([]entities.LoanSummary, error)
}
