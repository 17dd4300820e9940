package dto

// CreateLoanRequest содержит данные для выдачи экземпляра читателю.
type CreateLoanRequest struct {
	UserID     string `json:"userId" validate:"required"`
	BookCopyID string `json:"bookCopyId" validate:"required"`
}

// CreateReservationRequest содержит данные для резервирования книги.
type CreateReservationRequest struct {
	UserID string `json:"userId" validate:"required"`
	BookID string `json:"bookId" validate:"required"`
}
