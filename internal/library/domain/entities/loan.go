package entities

import (
	"errors"
	"time"
)

// Ошибки домена выдач.
var (
	ErrLoanNotFound = errors.New("loan not found")
)

// Loan представляет выдачу экземпляра книги читателю.
// ReturnedAt == nil означает активную выдачу.
type Loan struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	BookCopyID string     `json:"bookCopyId"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnedAt *time.Time `json:"returnedAt"`
}

// IsActive сообщает, не возвращена ли выдача.
func (l *Loan) IsActive() bool {
	return l.ReturnedAt == nil
}

// CreateLoanInput - входные данные для создания выдачи.
type CreateLoanInput struct {
	UserID     string `json:"userId"`
	BookCopyID string `json:"bookCopyId"`
}
