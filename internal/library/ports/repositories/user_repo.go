package repositories

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// UserRepository определяет интерфейс для работы с читателями.
type UserRepository interface {
	// Create сохраняет нового читателя. Повторная регистрация email
	// возвращает ошибку DUPLICATE_EMAIL.
	Create(ctx context.Context, user *entities.User) result.Result[*entities.User, *errs.Error]

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	Update(ctx context.Context, user *entities.User) result.Result[*entities.User, *errs.Error]

	Delete(ctx context.Context, id string) error

	// Search ищет читателей по частичному совпадению имени или email.
	Search(ctx context.Context, keyword string) ([]*entities.User, error)
}
