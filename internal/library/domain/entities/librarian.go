package entities

import (
	"errors"
	"time"
)

// Ошибки домена сотрудников.
var (
	ErrLibrarianNotFound = errors.New("librarian not found")
)

// Librarian представляет учетную запись сотрудника библиотеки.
type Librarian struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
