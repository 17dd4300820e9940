package reservationusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libris/internal/library/app"
	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
)

func TestCreateReservation(t *testing.T) {
	userID := "user-123"
	bookID := "book-789"
	input := entities.CreateReservationInput{UserID: userID, BookID: bookID}

	testUser := &entities.User{ID: userID, Name: "Test Reader"}
	testBook := &entities.Book{ID: bookID, Title: "Wanted Book"}

	allBorrowed := []*entities.BookCopy{
		{ID: "copy-1", BookID: bookID, Status: entities.CopyStatusBorrowed},
		{ID: "copy-2", BookID: bookID, Status: entities.CopyStatusReserved},
	}

	oneAvailable := []*entities.BookCopy{
		{ID: "copy-1", BookID: bookID, Status: entities.CopyStatusBorrowed},
		{ID: "copy-2", BookID: bookID, Status: entities.CopyStatusAvailable},
	}

	created := &entities.Reservation{
		ID:            "reservation-1",
		UserID:        userID,
		BookID:        bookID,
		Status:        entities.ReservationStatusPending,
		QueuePosition: 3,
	}

	tests := []struct {
		name         string
		setupMocks   func(resRepo *mockReservationRepository, bookRepo *mockBookRepository, userRepo *mockUserRepository)
		expectedType errs.Type
		checkErr     func(t *testing.T, e *errs.Error)
	}{
		{
			name: "success - queued behind existing reservations",
			setupMocks: func(resRepo *mockReservationRepository, bookRepo *mockBookRepository, userRepo *mockUserRepository) {
				userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
				bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()
				bookRepo.On("FindCopiesByBookID", mock.Anything, bookID).Return(allBorrowed, nil).Once()
				resRepo.On("HasActive", mock.Anything, userID, bookID).Return(false, nil).Once()
				resRepo.On("CountActiveByBookID", mock.Anything, bookID).Return(2, nil).Once()
				resRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Reservation) bool {
					return r.UserID == userID &&
						r.BookID == bookID &&
						r.Status == entities.ReservationStatusPending &&
						r.QueuePosition == 3
				})).Return(created, nil).Once()
			},
		},
		{
			name: "error - user not found",
			setupMocks: func(_ *mockReservationRepository, _ *mockBookRepository, userRepo *mockUserRepository) {
				userRepo.On("FindByID", mock.Anything, userID).
					Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedType: errs.TypeUserNotFound,
		},
		{
			name: "error - book not found",
			setupMocks: func(_ *mockReservationRepository, bookRepo *mockBookRepository, userRepo *mockUserRepository) {
				userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
				bookRepo.On("FindByID", mock.Anything, bookID).
					Return(nil, entities.ErrBookNotFound).Once()
			},
			expectedType: errs.TypeNotFound,
		},
		{
			name: "error - a copy is still available",
			setupMocks: func(resRepo *mockReservationRepository, bookRepo *mockBookRepository, userRepo *mockUserRepository) {
				userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
				bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()
				bookRepo.On("FindCopiesByBookID", mock.Anything, bookID).Return(oneAvailable, nil).Once()
			},
			expectedType: errs.TypeBookAvailable,
			checkErr: func(t *testing.T, e *errs.Error) {
				assert.Equal(t, bookID, e.BookID)
			},
		},
		{
			name: "error - user already has an active reservation",
			setupMocks: func(resRepo *mockReservationRepository, bookRepo *mockBookRepository, userRepo *mockUserRepository) {
				userRepo.On("FindByID", mock.Anything, userID).Return(testUser, nil).Once()
				bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()
				bookRepo.On("FindCopiesByBookID", mock.Anything, bookID).Return(allBorrowed, nil).Once()
				resRepo.On("HasActive", mock.Anything, userID, bookID).Return(true, nil).Once()
			},
			expectedType: errs.TypeAlreadyReserved,
			checkErr: func(t *testing.T, e *errs.Error) {
				assert.Equal(t, userID, e.UserID)
				assert.Equal(t, bookID, e.BookID)
			},
		},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			resRepo := new(mockReservationRepository)
			bookRepo := new(mockBookRepository)
			userRepo := new(mockUserRepository)

			ttt.setupMocks(resRepo, bookRepo, userRepo)

			useCase := app.NewReservationUseCase(resRepo, bookRepo, userRepo)
			res := useCase.CreateReservation(context.Background(), input)

			if ttt.expectedType != "" {
				require.True(t, res.IsErr())
				assert.Equal(t, ttt.expectedType, res.Error().Type)
				if ttt.checkErr != nil {
					ttt.checkErr(t, res.Error())
				}
				resRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.True(t, res.IsOk())
				assert.Equal(t, created, res.Value())
			}

			resRepo.AssertExpectations(t)
			bookRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestCreateReservationFirstInQueue(t *testing.T) {
	userID := "user-123"
	bookID := "book-789"
	input := entities.CreateReservationInput{UserID: userID, BookID: bookID}

	resRepo := new(mockReservationRepository)
	bookRepo := new(mockBookRepository)
	userRepo := new(mockUserRepository)

	userRepo.On("FindByID", mock.Anything, userID).
		Return(&entities.User{ID: userID}, nil).Once()
	bookRepo.On("FindByID", mock.Anything, bookID).
		Return(&entities.Book{ID: bookID}, nil).Once()
	bookRepo.On("FindCopiesByBookID", mock.Anything, bookID).
		Return([]*entities.BookCopy{{ID: "copy-1", Status: entities.CopyStatusBorrowed}}, nil).Once()
	resRepo.On("HasActive", mock.Anything, userID, bookID).Return(false, nil).Once()
	resRepo.On("CountActiveByBookID", mock.Anything, bookID).Return(0, nil).Once()
	resRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entities.Reservation) bool {
		return r.QueuePosition == 1
	})).Return(&entities.Reservation{ID: "reservation-1", QueuePosition: 1}, nil).Once()

	useCase := app.NewReservationUseCase(resRepo, bookRepo, userRepo)
	res := useCase.CreateReservation(context.Background(), input)

	require.True(t, res.IsOk())
	assert.Equal(t, 1, res.Value().QueuePosition)
	resRepo.AssertExpectations(t)
}

func TestCancelReservation(t *testing.T) {
	reservationID := "reservation-1"

	t.Run("success", func(t *testing.T) {
		resRepo := new(mockReservationRepository)
		bookRepo := new(mockBookRepository)
		userRepo := new(mockUserRepository)

		resRepo.On("Cancel", mock.Anything, reservationID).Return(nil).Once()

		useCase := app.NewReservationUseCase(resRepo, bookRepo, userRepo)
		res := useCase.CancelReservation(context.Background(), reservationID)

		require.True(t, res.IsOk())
		resRepo.AssertExpectations(t)
	})

	t.Run("error - not found", func(t *testing.T) {
		resRepo := new(mockReservationRepository)
		bookRepo := new(mockBookRepository)
		userRepo := new(mockUserRepository)

		resRepo.On("Cancel", mock.Anything, reservationID).
			Return(entities.ErrReservationNotFound).Once()

		useCase := app.NewReservationUseCase(resRepo, bookRepo, userRepo)
		res := useCase.CancelReservation(context.Background(), reservationID)

		require.True(t, res.IsErr())
		assert.Equal(t, errs.TypeNotFound, res.Error().Type)
	})
}
