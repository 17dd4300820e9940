package reservationusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) Create(ctx context.Context, reservation *entities.Reservation) result.Result[*entities.Reservation, *errs.Error] {
	args := m.Called(ctx, reservation)
	if e, ok := args.Get(1).(*errs.Error); ok && e != nil {
		return result.Err[*entities.Reservation](e)
	}
	return result.Ok[*entities.Reservation, *errs.Error](args.Get(0).(*entities.Reservation))
}

func (m *mockReservationRepository) HasActive(ctx context.Context, userID, bookID string) (bool, error) {
	args := m.Called(ctx, userID, bookID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReservationRepository) CountActiveByBookID(ctx context.Context, bookID string) (int, error) {
	args := m.Called(ctx, bookID)
	return args.Int(0), args.Error(1)
}

func (m *mockReservationRepository) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookRepository struct {
	mock.Mock
}

func (m *mockBookRepository) Create(ctx context.Context, book *entities.Book) result.Result[*entities.Book, *errs.Error] {
	args := m.Called(ctx, book)
	if e, ok := args.Get(1).(*errs.Error); ok && e != nil {
		return result.Err[*entities.Book](e)
	}
	return result.Ok[*entities.Book, *errs.Error](args.Get(0).(*entities.Book))
}

func (m *mockBookRepository) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Book), args.Error(1)
}

func (m *mockBookRepository) FindCopyByID(ctx context.Context, copyID string) (*entities.BookCopy, error) {
	args := m.Called(ctx, copyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BookCopy), args.Error(1)
}

func (m *mockBookRepository) FindCopiesByBookID(ctx context.Context, bookID string) ([]*entities.BookCopy, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BookCopy), args.Error(1)
}

func (m *mockBookRepository) AddCopy(ctx context.Context, copy *entities.BookCopy) result.Result[*entities.BookCopy, *errs.Error] {
	args := m.Called(ctx, copy)
	if e, ok := args.Get(1).(*errs.Error); ok && e != nil {
		return result.Err[*entities.BookCopy](e)
	}
	return result.Ok[*entities.BookCopy, *errs.Error](args.Get(0).(*entities.BookCopy))
}

func (m *mockBookRepository) UpdateCopyStatus(ctx context.Context, copyID string, from, to entities.CopyStatus) error {
	return m.Called(ctx, copyID, from, to).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) result.Result[*entities.User, *errs.Error] {
	args := m.Called(ctx, user)
	if e, ok := args.Get(1).(*errs.Error); ok && e != nil {
		return result.Err[*entities.User](e)
	}
	return result.Ok[*entities.User, *errs.Error](args.Get(0).(*entities.User))
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) result.Result[*entities.User, *errs.Error] {
	args := m.Called(ctx, user)
	if e, ok := args.Get(1).(*errs.Error); ok && e != nil {
		return result.Err[*entities.User](e)
	}
	return result.Ok[*entities.User, *errs.Error](args.Get(0).(*entities.User))
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) Search(ctx context.Context, keyword string) ([]*entities.User, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}
