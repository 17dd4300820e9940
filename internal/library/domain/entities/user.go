package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователей.
var (
	ErrUserNotFound = errors.New("user not found")
)

// User представляет читателя библиотеки.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registeredAt"`
	LoanLimit    int       `json:"loanLimit"`
}

// LoanSummary - краткая запись выдачи для карточки читателя.
type LoanSummary struct {
	ID         string     `json:"id"`
	BookCopyID string     `json:"bookCopyId"`
	BookTitle  string     `json:"bookTitle"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnedAt *time.Time `json:"returnedAt"`
	IsOverdue  bool       `json:"isOverdue"`
}

// UserWithLoans - читатель вместе с его выдачами.
type UserWithLoans struct {
	User
	Loans []LoanSummary `json:"loans"`
}
