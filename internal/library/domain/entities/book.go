// Package entities определяет сущности домена библиотеки.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена каталога.
var (
	ErrBookNotFound       = errors.New("book not found")
	ErrCopyNotFound       = errors.New("book copy not found")
	ErrCopyStatusConflict = errors.New("book copy status changed concurrently")
)

// CopyStatus - статус экземпляра книги.
type CopyStatus string

// Возможные статусы экземпляра.
const (
	CopyStatusAvailable CopyStatus = "AVAILABLE"
	CopyStatusBorrowed  CopyStatus = "BORROWED"
	CopyStatusReserved  CopyStatus = "RESERVED"
	CopyStatusLost      CopyStatus = "LOST"
)

// Book представляет библиографическую запись каталога.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Publisher       *string   `json:"publisher"`
	PublicationYear *int      `json:"publicationYear"`
	ISBN            string    `json:"isbn"`
	Category        *string   `json:"category"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookCopy представляет физический экземпляр книги. Статус - единственное
// изменяемое поле, определяющее возможность выдачи.
type BookCopy struct {
	ID        string     `json:"id"`
	BookID    string     `json:"bookId"`
	Location  string     `json:"location"`
	Status    CopyStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
