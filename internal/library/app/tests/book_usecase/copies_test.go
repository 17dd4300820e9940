package bookusecase_test

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

func TestAddCopy(t *testing.T) {
	bookID := "book-1"
	testBook := &entities.Book{ID: bookID, Title: "Catalogued Book"}

	t.Run("success - new copy starts available", func(t *testing.T) {
		bookRepo := new(mockBookRepository)

		addedCopy := &entities.BookCopy{
			ID:       "copy-1",
			BookID:   bookID,
			Location: "shelf A-3",
			Status:   entities.CopyStatusAvailable,
		}

		bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()
		bookRepo.On("AddCopy", mock.Anything, mock.MatchedBy(func(c *entities.BookCopy) bool {
			return c.BookID == bookID &&
				c.Location == "shelf A-3" &&
				c.Status == entities.CopyStatusAvailable
		})).Return(addedCopy, nil).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.AddCopy(context.Background(), bookID, "shelf A-3")

		require.True(t, res.IsOk())
		assert.Equal(t, addedCopy, res.Value())
		bookRepo.AssertExpectations(t)
	})

	t.Run("error - book not found", func(t *testing.T) {
		bookRepo := new(mockBookRepository)

		bookRepo.On("FindByID", mock.Anything, bookID).
			Return(nil, entities.ErrBookNotFound).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.AddCopy(context.Background(), bookID, "shelf A-3")

		require.True(t, res.IsErr())
		assert.Equal(t, errs.TypeNotFound, res.Error().Type)
		bookRepo.AssertNotCalled(t, "AddCopy", mock.Anything, mock.Anything)
	})

	t.Run("error - blank location", func(t *testing.T) {
		bookRepo := new(mockBookRepository)

		bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.AddCopy(context.Background(), bookID, "  ")

		require.True(t, res.IsErr())
		assert.Equal(t, errs.TypeRequiredFieldMissing, res.Error().Type)
	})
}

func TestListCopies(t *testing.T) {
	bookID := "book-1"
	testBook := &entities.Book{ID: bookID}

	copies := []*entities.BookCopy{
		{ID: "copy-1", BookID: bookID, Status: entities.CopyStatusAvailable},
		{ID: "copy-2", BookID: bookID, Status: entities.CopyStatusBorrowed},
	}

	t.Run("success", func(t *testing.T) {
		bookRepo := new(mockBookRepository)

		bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()
		bookRepo.On("FindCopiesByBookID", mock.Anything, bookID).Return(copies, nil).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.ListCopies(context.Background(), bookID)

		require.True(t, res.IsOk())
		assert.Equal(t, copies, res.Value())
	})

	t.Run("error - book not found", func(t *testing.T) {
		bookRepo := new(mockBookRepository)

		bookRepo.On("FindByID", mock.Anything, bookID).
			Return(nil, entities.ErrBookNotFound).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.ListCopies(context.Background(), bookID)

		require.True(t, res.IsErr())
		assert.Equal(t, errs.TypeNotFound, res.Error().Type)
	})
}

func TestGetBookByID(t *testing.T) {
	bookID := "book-1"
	testBook := &entities.Book{ID: bookID, Title: "Catalogued Book"}

	t.Run("success", func(t *testing.T) {
		bookRepo := new(mockBookRepository)
		bookRepo.On("FindByID", mock.Anything, bookID).Return(testBook, nil).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.GetBookByID(context.Background(), bookID)

		require.True(t, res.IsOk())
		assert.Equal(t, testBook, res.Value())
	})

	t.Run("error - not found", func(t *testing.T) {
		bookRepo := new(mockBookRepository)
		bookRepo.On("FindByID", mock.Anything, bookID).
			Return(nil, entities.ErrBookNotFound).Once()

		useCase := app.NewBookUseCase(bookRepo)
		res := useCase.GetBookByID(context.Background(), bookID)

		require.True(t, res.IsErr())
		assert.Equal(t, errs.TypeNotFound, res.Error().Type)
		assert.Equal(t, bookID, res.Error().ID)
	})
}
