package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/domain/validation"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// DefaultLoanLimit - лимит одновременных выдач нового читателя.
const DefaultLoanLimit = 5

const (
	methodCreateUser       = "CreateUser"
	methodGetUserByID      = "GetUserByID"
	methodUpdateUser       = "UpdateUser"
	methodDeleteUser       = "DeleteUser"
	methodGetUserWithLoans = "GetUserWithLoans"
	methodSearchUsers      = "SearchUsers"

	msgCreatingUser      = "creating user"
	msgUserCreated       = "user created successfully"
	msgGettingUser       = "getting user"
	msgUpdatingUser      = "updating user"
	msgUserUpdated       = "user updated successfully"
	msgDeletingUser      = "deleting user"
	msgUserDeleted       = "user deleted successfully"
	msgGettingUserLoans  = "getting user with loans"
	msgSearchingUsers    = "searching users"
	msgUserNotFound      = "user not found"
	msgUserInvalidInput  = "invalid user input"

	msgErrDeletingUser  = "failed to delete user"
	msgErrListingLoans  = "failed to list user loans"
	msgErrSearchUsers   = "failed to search users"
	fieldName           = "name"
	fieldEmail          = "email"
	fieldKeyword        = "keyword"
	errFieldUser        = "user"
	errMsgDeletingUser  = "failed to delete user"
	errMsgListingLoans  = "failed to list user loans"
	errMsgSearchUsers   = "failed to search users"
)

// UserUseCaseImpl реализует интерфейс api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
	loanRepo repositories.LoanRepository
}

// NewUserUseCase создает новый сценарий управления читателями.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	loanRepo repositories.LoanRepository,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
		loanRepo: loanRepo,
	}
}

// CreateUser регистрирует читателя. Имя и email обязательны, email
// проверяется на формат. Дубликат email отклоняет репозиторий.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, input api.CreateUserInput) result.Result[*entities.User, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser))
	log.Debug(ctx, msgCreatingUser, zap.String("email", input.Email))

	name := validation.ValidateRequired(input.Name, fieldName)
	if name.IsErr() {
		log.Debug(ctx, msgUserInvalidInput, zap.Error(name.Error()))
		return result.Err[*entities.User](name.Error())
	}
	email := validation.ValidateRequired(input.Email, fieldEmail)
	if email.IsErr() {
		log.Debug(ctx, msgUserInvalidInput, zap.Error(email.Error()))
		return result.Err[*entities.User](email.Error())
	}
	if checked := validation.ValidateEmail(input.Email); checked.IsErr() {
		log.Debug(ctx, msgUserInvalidInput, zap.Error(checked.Error()))
		return result.Err[*entities.User](checked.Error())
	}

	user := &entities.User{
		Name:         input.Name,
		Address:      input.Address,
		Email:        input.Email,
		Phone:        input.Phone,
		RegisteredAt: time.Now(),
		LoanLimit:    DefaultLoanLimit,
	}

	created := u.userRepo.Create(ctx, user)
	if created.IsErr() {
		log.Debug(ctx, msgUserInvalidInput, zap.Error(created.Error()))
		return created
	}

	log.Info(ctx, msgUserCreated, zap.String("userID", created.Value().ID))
	return created
}

// GetUserByID возвращает читателя по идентификатору.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, id string) result.Result[*entities.User, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetUserByID),
		zap.String("userID", id))
	log.Debug(ctx, msgGettingUser)

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgUserNotFound, zap.Error(err))
		return result.Err[*entities.User](errs.UserNotFound(id))
	}

	return result.Ok[*entities.User, *errs.Error](user)
}

// UpdateUser изменяет заданные поля читателя. Nil-поля сохраняют
// прежние значения. Новый email проверяется на формат.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, id string, input api.UpdateUserInput) result.Result[*entities.User, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodUpdateUser),
		zap.String("userID", id))
	log.Debug(ctx, msgUpdatingUser)

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgUserNotFound, zap.Error(err))
		return result.Err[*entities.User](errs.UserNotFound(id))
	}

	if input.Name != nil {
		checked := validation.ValidateRequired(*input.Name, fieldName)
		if checked.IsErr() {
			log.Debug(ctx, msgUserInvalidInput, zap.Error(checked.Error()))
			return result.Err[*entities.User](checked.Error())
		}
		user.Name = *input.Name
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Email != nil {
		checked := validation.ValidateEmail(*input.Email)
		if checked.IsErr() {
			log.Debug(ctx, msgUserInvalidInput, zap.Error(checked.Error()))
			return result.Err[*entities.User](checked.Error())
		}
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.LoanLimit != nil {
		if *input.LoanLimit < 0 {
			e := errs.Validation("loanLimit", "loan limit must not be negative")
			log.Debug(ctx, msgUserInvalidInput, zap.Error(e))
			return result.Err[*entities.User](e)
		}
		user.LoanLimit = *input.LoanLimit
	}

	updated := u.userRepo.Update(ctx, user)
	if updated.IsErr() {
		log.Debug(ctx, msgUserInvalidInput, zap.Error(updated.Error()))
		return updated
	}

	log.Info(ctx, msgUserUpdated)
	return updated
}

// DeleteUser удаляет читателя.
func (u *UserUseCaseImpl) DeleteUser(ctx context.Context, id string) result.Result[struct{}, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteUser),
		zap.String("userID", id))
	log.Debug(ctx, msgDeletingUser)

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserNotFound)
			return result.Err[struct{}](errs.UserNotFound(id))
		}
		log.Error(ctx, msgErrDeletingUser, zap.Error(err))
		return result.Err[struct{}](errs.Validation(errFieldUser, errMsgDeletingUser))
	}

	log.Info(ctx, msgUserDeleted)
	return result.Ok[struct{}, *errs.Error](struct{}{})
}

// GetUserWithLoans возвращает карточку читателя с его выдачами.
// Признак просрочки вычисляется на текущий момент.
func (u *UserUseCaseImpl) GetUserWithLoans(ctx context.Context, id string) result.Result[*entities.UserWithLoans, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetUserWithLoans),
		zap.String("userID", id))
	log.Debug(ctx, msgGettingUserLoans)

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgUserNotFound, zap.Error(err))
		return result.Err[*entities.UserWithLoans](errs.UserNotFound(id))
	}

	loans, err := u.loanRepo.ListSummariesByUserID(ctx, id, time.Now())
	if err != nil {
		log.Error(ctx, msgErrListingLoans, zap.Error(err))
		return result.Err[*entities.UserWithLoans](errs.Validation(errFieldLoans, errMsgListingLoans))
	}

	return result.Ok[*entities.UserWithLoans, *errs.Error](&entities.UserWithLoans{
		User:  *user,
		Loans: loans,
	})
}

// SearchUsers ищет читателей по частичному совпадению имени или email.
func (u *UserUseCaseImpl) SearchUsers(ctx context.Context, keyword string) result.Result[[]*entities.User, *errs.Error] {
	log := logger.Log(ctx).With(zap.String("method", methodSearchUsers))
	log.Debug(ctx, msgSearchingUsers, zap.String("keyword", keyword))

	checked := validation.ValidateRequired(keyword, fieldKeyword)
	if checked.IsErr() {
		log.Debug(ctx, msgUserInvalidInput, zap.Error(checked.Error()))
		return result.Err[[]*entities.User](checked.Error())
	}

	users, err := u.userRepo.Search(ctx, keyword)
	if err != nil {
		log.Error(ctx, msgErrSearchUsers, zap.Error(err))
		return result.Err[[]*entities.User](errs.Validation(errFieldUser, errMsgSearchUsers))
	}

	return result.Ok[[]*entities.User, *errs.Error](users)
}
