package dto

// CreateUserRequest содержит данные для регистрации читателя.
type CreateUserRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
}

// UpdateUserRequest содержит данные для обновления читателя.
// Nil-поля не изменяются.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	LoanLimit *int    `json:"loanLimit"`
}
