package loanusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"

	"libris/internal/library/app"
	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
)

func TestReturnLoan(t *testing.T) {
	now := time.Date(2025, 3, 24, 9, 30, 0, 0, time.UTC)
	patch, err := mpatch.PatchMethod(time.Now, func() time.Time { return now })
	require.NoError(t, err)
	defer safeUnpatch(t, patch)

	loanID := "loan-1"
	copyID := "copy-456"
	borrowedAt := now.Add(-7 * 24 * time.Hour)
	dueDate := borrowedAt.Add(14 * 24 * time.Hour)

	activeLoan := &entities.Loan{
		ID:         loanID,
		UserID:     "user-123",
		BookCopyID: copyID,
		BorrowedAt: borrowedAt,
		DueDate:    dueDate,
	}

	closedLoan := &entities.Loan{
		ID:         loanID,
		UserID:     "user-123",
		BookCopyID: copyID,
		BorrowedAt: borrowedAt,
		DueDate:    dueDate,
		ReturnedAt: &now,
	}

	tests := []struct {
		name         string
		setupMocks   func(loanRepo *mockLoanRepository, bookRepo *mockBookRepository)
		expectedType errs.Type
	}{
		{
			name: "success - loan closed and copy released",
			setupMocks: func(loanRepo *mockLoanRepository, bookRepo *mockBookRepository) {
				loanRepo.On("FindByID", mock.Anything, loanID).Return(activeLoan, nil).Once()
				loanRepo.On("MarkReturned", mock.Anything, loanID, now).Return(closedLoan, nil).Once()
				bookRepo.On("UpdateCopyStatus", mock.Anything, copyID,
					entities.CopyStatusBorrowed, entities.CopyStatusAvailable).Return(nil).Once()
			},
		},
		{
			name: "error - loan not found",
			setupMocks: func(loanRepo *mockLoanRepository, _ *mockBookRepository) {
				loanRepo.On("FindByID", mock.Anything, loanID).
					Return(nil, entities.ErrLoanNotFound).Once()
			},
			expectedType: errs.TypeNotFound,
		},
		{
			name: "error - loan already returned",
			setupMocks: func(loanRepo *mockLoanRepository, _ *mockBookRepository) {
				loanRepo.On("FindByID", mock.Anything, loanID).Return(closedLoan, nil).Once()
			},
			expectedType: errs.TypeValidationError,
		},
		{
			name: "error - copy release conflict",
			setupMocks: func(loanRepo *mockLoanRepository, bookRepo *mockBookRepository) {
				loanRepo.On("FindByID", mock.Anything, loanID).Return(activeLoan, nil).Once()
				loanRepo.On("MarkReturned", mock.Anything, loanID, now).Return(closedLoan, nil).Once()
				bookRepo.On("UpdateCopyStatus", mock.Anything, copyID,
					entities.CopyStatusBorrowed, entities.CopyStatusAvailable).
					Return(entities.ErrCopyStatusConflict).Once()
			},
			expectedType: errs.TypeValidationError,
		},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			loanRepo := new(mockLoanRepository)
			bookRepo := new(mockBookRepository)
			userRepo := new(mockUserRepository)

			ttt.setupMocks(loanRepo, bookRepo)

			useCase := app.NewLoanUseCase(loanRepo, bookRepo, userRepo, 14)
			res := useCase.ReturnLoan(context.Background(), loanID)

			if ttt.expectedType != "" {
				require.True(t, res.IsErr())
				assert.Equal(t, ttt.expectedType, res.Error().Type)
			} else {
				require.True(t, res.IsOk())
				require.NotNil(t, res.Value().ReturnedAt)
				assert.Equal(t, now, *res.Value().ReturnedAt)
			}

			loanRepo.AssertExpectations(t)
			bookRepo.AssertExpectations(t)
		})
	}
}
