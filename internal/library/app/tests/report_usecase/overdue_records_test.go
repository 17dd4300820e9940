package reportusecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libris/internal/library/app"
	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
)

func TestListOverdueRecords(t *testing.T) {
	asOf := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	records := []entities.OverdueRecord{
		{
			LoanID:      "loan-1",
			UserID:      "user-123",
			UserName:    "Test Reader",
			BookTitle:   "Overdue Book",
			DueDate:     asOf.Add(-3 * 24 * time.Hour),
			OverdueDays: 3,
		},
	}

	t.Run("success - records forwarded", func(t *testing.T) {
		reportRepo := new(mockReportRepository)
		overdueRepo := new(mockOverdueRecordRepository)

		overdueRepo.On("ListOverdue", mock.Anything, asOf).Return(records, nil).Once()

		useCase := app.NewReportUseCase(reportRepo, overdueRepo)
		res := useCase.ListOverdueRecords(context.Background(), asOf)

		require.True(t, res.IsOk())
		assert.Equal(t, records, res.Value())
		overdueRepo.AssertExpectations(t)
	})

	t.Run("error - repository failure surfaces as validation error", func(t *testing.T) {
		reportRepo := new(mockReportRepository)
		overdueRepo := new(mockOverdueRecordRepository)

		overdueRepo.On("ListOverdue", mock.Anything, asOf).
			Return(nil, ErrDatabaseConnection).Once()

		useCase := app.NewReportUseCase(reportRepo, overdueRepo)
		res := useCase.ListOverdueRecords(context.Background(), asOf)

		require.True(t, res.IsErr())
		assert.Equal(t, errs.TypeValidationError, res.Error().Type)
	})
}
