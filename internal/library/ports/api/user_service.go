package api

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// CreateUserInput - входные данные регистрации читателя.
type CreateUserInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// UpdateUserInput - входные данные обновления читателя. Nil-поля не
// изменяются.
type UpdateUserInput struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	LoanLimit *int    `json:"loanLimit"`
}

// UserUseCase определяет сценарии управления читателями.
type UserUseCase interface {
	CreateUser(ctx context.Context, input CreateUserInput) result.Result[*entities.User, *errs.Error]

	GetUserByID(ctx context.Context, id string) result.Result[*entities.User, *errs.Error]

	UpdateUser(ctx context.Context, id string, input UpdateUserInput) result.Result[*entities.User, *errs.Error]

	DeleteUser(ctx context.Context, id string) result.Result[struct{}, *errs.Error]

	GetUserWithLoans(ctx context.Context, id string) result.Result[*entities.UserWithLoans, *errs.Error]

	SearchUsers(ctx context.Context, keyword string) result.Result[[]*entities.User, *errs.Error]
}
