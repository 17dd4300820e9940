package dto

// LoginRequest содержит данные для входа сотрудника.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
