package app

import (
	"context"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/domain/validation"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

const (
	methodRegisterBook = "RegisterBook"
	methodGetBookByID  = "GetBookByID"
	methodAddCopy      = "AddCopy"
	methodListCopies   = "ListCopies"

	msgRegisteringBook  = "registering book"
	msgBookRegistered   = "book registered successfully"
	msgGettingBook      = "getting book"
	msgAddingCopy       = "adding book copy"
	msgCopyAdded        = "book copy added successfully"
	msgListingCopies    = "listing book copies"
	msgBookNotFound     = "book not found"
	msgBookInvalidInput = "invalid book input"

	msgErrListingCopies = "failed to list book copies"
	fieldTitle          = "title"
	fieldAuthor         = "author"
	fieldLocation       = "location"
	errFieldCopies      = "copies"
	errMsgListingCopies = "failed to list book copies"
)

// BookUseCaseImpl реализует интерфейс api.BookUseCase.
type BookUseCaseImpl struct {
	bookRepo repositories.BookRepository
}

// NewBookUseCase создает новый сценарий управления каталогом.
func NewBookUseCase(bookRepo repositories.BookRepository) api.BookUseCase {
	return &BookUseCaseImpl{bookRepo: bookRepo}
}

// RegisterBook добавляет книгу в каталог. Название и автор обязательны,
// ISBN проверяется контрольной суммой и сохраняется как введен.
func (u *BookUseCaseImpl) RegisterBook(ctx context.Context, input api.CreateBookInput) result.Result[*entities.Book, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodRegisterBook))
	log.Debug(ctx, msgRegisteringBook, zap.String("isbn", input.ISBN))

	if checked := validation.ValidateRequired(input.Title, fieldTitle); checked.IsErr() {
		log.Debug(ctx, msgBookInvalidInput, zap.Error(checked.Error()))
		return result.Err[*entities.Book](checked.Error())
	}
	if checked := validation.ValidateRequired(input.Author, fieldAuthor); checked.IsErr() {
		log.Debug(ctx, msgBookInvalidInput, zap.Error(checked.Error()))
		return result.Err[*entities.Book](checked.Error())
	}
	if checked := validation.ValidateISBN(input.ISBN); checked.IsErr() {
		log.Debug(ctx, msgBookInvalidInput, zap.Error(checked.Error()))
		return result.Err[*entities.Book](checked.Error())
	}

	book := &entities.Book{
		Title:           input.Title,
		Author:          input.Author,
		Publisher:       input.Publisher,
		PublicationYear: input.PublicationYear,
		ISBN:            input.ISBN,
		Category:        input.Category,
	}

	created := u.bookRepo.Create(ctx, book)
	if created.IsErr() {
		log.Debug(ctx, msgBookInvalidInput, zap.Error(created.Error()))
		return created
	}

	log.Info(ctx, msgBookRegistered, zap.String("bookID", created.Value().ID))
	return created
}

// GetBookByID возвращает книгу по идентификатору.
func (u *BookUseCaseImpl) GetBookByID(ctx context.Context, id string) result.Result[*entities.Book, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetBookByID),
		zap.String("bookID", id))
	log.Debug(ctx, msgGettingBook)

	book, err := u.bookRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgBookNotFound, zap.Error(err))
		return result.Err[*entities.Book](errs.NotFound(id))
	}

	return result.Ok[*entities.Book, *errs.Error](book)
}

// AddCopy добавляет экземпляр существующей книги. Новый экземпляр
// сразу доступен к выдаче.
func (u *BookUseCaseImpl) AddCopy(ctx context.Context, bookID, location string) result.Result[*entities.BookCopy, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodAddCopy),
		zap.String("bookID", bookID))
	log.Debug(ctx, msgAddingCopy)

	if _, err := u.bookRepo.FindByID(ctx, bookID); err != nil {
		log.Debug(ctx, msgBookNotFound, zap.Error(err))
		return result.Err[*entities.BookCopy](errs.NotFound(bookID))
	}
	if checked := validation.ValidateRequired(location, fieldLocation); checked.IsErr() {
		log.Debug(ctx, msgBookInvalidInput, zap.Error(checked.Error()))
		return result.Err[*entities.BookCopy](checked.Error())
	}

	copy := &entities.BookCopy{
		BookID:   bookID,
		Location: location,
		Status:   entities.CopyStatusAvailable,
	}

	added := u.bookRepo.AddCopy(ctx, copy)
	if added.IsErr() {
		log.Debug(ctx, msgBookInvalidInput, zap.Error(added.Error()))
		return added
	}

	log.Info(ctx, msgCopyAdded, zap.String("copyID", added.Value().ID))
	return added
}

// ListCopies возвращает все экземпляры книги.
func (u *BookUseCaseImpl) ListCopies(ctx context.Context, bookID string) result.Result[[]*entities.BookCopy, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodListCopies),
		zap.String("bookID", bookID))
	log.Debug(ctx, msgListingCopies)

	if _, err := u.bookRepo.FindByID(ctx, bookID); err != nil {
		log.Debug(ctx, msgBookNotFound, zap.Error(err))
		return result.Err[[]*entities.BookCopy](errs.NotFound(bookID))
	}

	copies, err := u.bookRepo.FindCopiesByBookID(ctx, bookID)
	if err != nil {
		log.Error(ctx, msgErrListingCopies, zap.Error(err))
		return result.Err[[]*entities.BookCopy](errs.Validation(errFieldCopies, errMsgListingCopies))
	}

	return result.Ok[[]*entities.BookCopy, *errs.Error](copies)
}
