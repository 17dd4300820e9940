// Package errs определяет таксономию доменных ошибок библиотеки.
// Ошибки являются значениями с тегом типа, а не исключениями: каждый
// ожидаемый сбой бизнес-правила возвращается как Err-вариант Result.
package errs

import "fmt"

// Type - тег варианта доменной ошибки.
type Type string

// Известные теги доменных ошибок.
const (
	TypeUserNotFound         Type = "USER_NOT_FOUND"
	TypeLoanLimitExceeded    Type = "LOAN_LIMIT_EXCEEDED"
	TypeCopyNotFound         Type = "COPY_NOT_FOUND"
	TypeBookNotAvailable     Type = "BOOK_NOT_AVAILABLE"
	TypeValidationError      Type = "VALIDATION_ERROR"
	TypeInvalidDateRange     Type = "INVALID_DATE_RANGE"
	TypeInvalidISBN          Type = "INVALID_ISBN"
	TypeRequiredFieldMissing Type = "REQUIRED_FIELD_MISSING"
	TypeInvalidEmail         Type = "INVALID_EMAIL"
	TypeNotFound             Type = "NOT_FOUND"
	TypeDuplicateEmail       Type = "DUPLICATE_EMAIL"
	TypeAlreadyReserved      Type = "ALREADY_RESERVED"
	TypeBookAvailable        Type = "BOOK_AVAILABLE"
	TypeUnauthorized         Type = "UNAUTHORIZED"
)

// Error - доменная ошибка с тегом и полями, зависящими от тега.
// Сериализуется в JSON как {"type": ..., дополнительные поля}.
type Error struct {
	Type         Type   `json:"type"`
	Message      string `json:"message,omitempty"`
	Field        string `json:"field,omitempty"`
	UserID       string `json:"userId,omitempty"`
	CopyID       string `json:"copyId,omitempty"`
	BookID       string `json:"bookId,omitempty"`
	Email        string `json:"email,omitempty"`
	ID           string `json:"id,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	CurrentCount int    `json:"currentCount,omitempty"`
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return string(e.Type)
}

// Is позволяет сравнивать доменные ошибки по тегу через errors.Is.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == other.Type
}

// UserNotFound создает ошибку отсутствия пользователя.
func UserNotFound(userID string) *Error {
	return &Error{Type: TypeUserNotFound, UserID: userID}
}

// LoanLimitExceeded создает ошибку превышения лимита выдач.
func LoanLimitExceeded(userID string, limit, currentCount int) *Error {
	return &Error{
		Type:         TypeLoanLimitExceeded,
		UserID:       userID,
		Limit:        limit,
		CurrentCount: currentCount,
	}
}

// CopyNotFound создает ошибку отсутствия экземпляра книги.
func CopyNotFound(copyID string) *Error {
	return &Error{Type: TypeCopyNotFound, CopyID: copyID}
}

// BookNotAvailable создает ошибку недоступности экземпляра для выдачи.
func BookNotAvailable(copyID string) *Error {
	return &Error{Type: TypeBookNotAvailable, CopyID: copyID}
}

// Validation создает ошибку валидации для конкретного поля.
func Validation(field, message string) *Error {
	return &Error{Type: TypeValidationError, Field: field, Message: message}
}

// InvalidDateRange создает ошибку недопустимого диапазона дат.
func InvalidDateRange(message string) *Error {
	return &Error{Type: TypeInvalidDateRange, Message: message}
}

// InvalidISBN создает ошибку недопустимого ISBN.
func InvalidISBN(message string) *Error {
	return &Error{Type: TypeInvalidISBN, Message: message}
}

// RequiredFieldMissing создает ошибку пропущенного обязательного поля.
func RequiredFieldMissing(field string) *Error {
	return &Error{
		Type:    TypeRequiredFieldMissing,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// InvalidEmail создает ошибку недопустимого формата email.
func InvalidEmail() *Error {
	return &Error{Type: TypeInvalidEmail, Message: "Invalid email format"}
}

// NotFound создает ошибку отсутствия сущности по идентификатору.
func NotFound(id string) *Error {
	return &Error{Type: TypeNotFound, ID: id}
}

// DuplicateEmail создает ошибку повторной регистрации email.
func DuplicateEmail(email string) *Error {
	return &Error{Type: TypeDuplicateEmail, Email: email}
}

// AlreadyReserved создает ошибку повторного резервирования книги.
func AlreadyReserved(userID, bookID string) *Error {
	return &Error{Type: TypeAlreadyReserved, UserID: userID, BookID: bookID}
}

// BookAvailable создает ошибку резервирования доступной книги.
func BookAvailable(bookID string) *Error {
	return &Error{Type: TypeBookAvailable, BookID: bookID}
}

// Unauthorized создает ошибку аутентификации.
func Unauthorized(message string) *Error {
	return &Error{Type: TypeUnauthorized, Message: message}
}
