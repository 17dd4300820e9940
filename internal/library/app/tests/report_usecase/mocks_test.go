package reportusecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"libris/internal/library/domain/entities"
)

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) CountLoans(ctx context.Context, dateRange entities.DateRange) (int, error) {
	args := m.Called(ctx, dateRange)
	return args.Int(0), args.Error(1)
}

func (m *mockReportRepository) CountReturns(ctx context.Context, dateRange entities.DateRange) (int, error) {
	args := m.Called(ctx, dateRange)
	return args.Int(0), args.Error(1)
}

func (m *mockReportRepository) CountOverdues(ctx context.Context, dateRange entities.DateRange) (int, error) {
	args := m.Called(ctx, dateRange)
	return args.Int(0), args.Error(1)
}

func (m *mockReportRepository) PopularBooks(ctx context.Context, dateRange entities.DateRange, limit int) ([]entities.PopularBookItem, error) {
	args := m.Called(ctx, dateRange, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.PopularBookItem), args.Error(1)
}

func (m *mockReportRepository) CategoryStatistics(ctx context.Context, dateRange entities.DateRange) ([]entities.CategoryStatisticsItem, error) {
	args := m.Called(ctx, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.CategoryStatisticsItem), args.Error(1)
}

type mockOverdueRecordRepository struct {
	mock.Mock
}

func (m *mockOverdueRecordRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]entities.OverdueRecord, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.OverdueRecord), args.Error(1)
}
