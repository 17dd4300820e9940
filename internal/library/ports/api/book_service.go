package api

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// CreateBookInput - входные данные регистрации книги в каталоге.
type CreateBookInput struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Publisher       *string `json:"publisher"`
	PublicationYear *int    `json:"publicationYear"`
	ISBN            string  `json:"isbn"`
	Category        *string `json:"category"`
}

// BookUseCase определяет сценарии управления каталогом.
type BookUseCase interface {
	RegisterBook(ctx context.Context, input CreateBookInput) result.Result[*entities.Book, *errs.Error]

	GetBookByID(ctx context.Context, id string) result.Result[*entities.Book, *errs.Error]

	AddCopy(ctx context.Context, bookID, location string) result.Result[*entities.BookCopy, *errs.Error]

	ListCopies(ctx context.Context, bookID string) result.Result[[]*entities.BookCopy, *errs.Error]
}
