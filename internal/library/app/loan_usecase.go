// Package app реализует сценарии использования библиотеки поверх
// интерфейсов репозиториев.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/internal/library/ports/api"
	"libris/internal/library/ports/repositories"
	"libris/pkg/logger"
	"libris/pkg/result"
)

// DefaultLoanDurationDays - срок выдачи по умолчанию в днях.
const DefaultLoanDurationDays = 14

const (
	methodCreateLoan = "CreateLoan"
	methodReturnLoan = "ReturnLoan"

	msgCreatingLoan      = "creating loan"
	msgLoanCreated       = "loan created successfully"
	msgUserNotFoundLoan  = "user not found for loan"
	msgLoanLimitReached  = "user reached loan limit"
	msgCopyNotFoundLoan  = "book copy not found for loan"
	msgCopyNotAvailable  = "book copy is not available"
	msgReturningLoan     = "returning loan"
	msgLoanReturned      = "loan returned successfully"
	msgLoanNotFound      = "loan not found"
	msgLoanAlreadyClosed = "loan already returned"

	msgErrCountingLoans    = "failed to count active loans"
	msgErrPersistingLoan   = "failed to persist loan"
	msgErrUpdatingCopy     = "failed to update book copy status"
	msgErrMarkingReturned  = "failed to mark loan as returned"
	msgErrReleasingCopy    = "failed to release book copy"
	errFieldLoans          = "loans"
	errFieldBookCopy       = "bookCopy"
	errFieldLoan           = "loan"
	errMsgCountingLoans    = "failed to count active loans"
	errMsgUpdatingCopy     = "failed to update book copy status"
	errMsgAlreadyReturned  = "loan has already been returned"
	errMsgReleasingCopy    = "failed to release book copy"
)

// LoanUseCaseImpl реализует интерфейс api.LoanUseCase.
type LoanUseCaseImpl struct {
	loanRepo     repositories.LoanRepository
	bookRepo     repositories.BookRepository
	userRepo     repositories.UserRepository
	loanDuration time.Duration
}

// NewLoanUseCase создает новый сценарий выдачи книг. Нулевой
// durationDays заменяется значением по умолчанию.
func NewLoanUseCase(
	loanRepo repositories.LoanRepository,
	bookRepo repositories.BookRepository,
	userRepo repositories.UserRepository,
	durationDays int,
) api.LoanUseCase {
	if durationDays <= 0 {
		durationDays = DefaultLoanDurationDays
	}
	return &LoanUseCaseImpl{
		loanRepo:     loanRepo,
		bookRepo:     bookRepo,
		userRepo:     userRepo,
		loanDuration: time.Duration(durationDays) * 24 * time.Hour,
	}
}

// CreateLoan создает выдачу после цепочки проверок. Проверки выполняются
// строго по порядку и обрываются на первой неудаче: каждая следующая
// проверка предполагает успех предыдущих.
func (u *LoanUseCaseImpl) CreateLoan(ctx context.Context, input entities.CreateLoanInput) result.Result[*entities.Loan, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodCreateLoan),
		zap.String("userID", input.UserID),
		zap.String("bookCopyID", input.BookCopyID))
	log.Debug(ctx, msgCreatingLoan)

	// 1. Читатель должен существовать.
	user, err := u.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		log.Debug(ctx, msgUserNotFoundLoan, zap.Error(err))
		return result.Err[*entities.Loan](errs.UserNotFound(input.UserID))
	}

	// 2. Лимит одновременных выдач не должен быть исчерпан.
	activeCount, err := u.loanRepo.CountActive(ctx, input.UserID)
	if err != nil {
		log.Error(ctx, msgErrCountingLoans, zap.Error(err))
		return result.Err[*entities.Loan](errs.Validation(errFieldLoans, errMsgCountingLoans))
	}
	if activeCount >= user.LoanLimit {
		log.Debug(ctx, msgLoanLimitReached,
			zap.Int("limit", user.LoanLimit),
			zap.Int("currentCount", activeCount))
		return result.Err[*entities.Loan](errs.LoanLimitExceeded(input.UserID, user.LoanLimit, activeCount))
	}

	// 3. Экземпляр должен существовать.
	copy, err := u.bookRepo.FindCopyByID(ctx, input.BookCopyID)
	if err != nil {
		log.Debug(ctx, msgCopyNotFoundLoan, zap.Error(err))
		return result.Err[*entities.Loan](errs.CopyNotFound(input.BookCopyID))
	}

	// 4. Выдается только экземпляр в статусе AVAILABLE.
	if copy.Status != entities.CopyStatusAvailable {
		log.Debug(ctx, msgCopyNotAvailable, zap.String("status", string(copy.Status)))
		return result.Err[*entities.Loan](errs.BookNotAvailable(input.BookCopyID))
	}

	// 5. Срок возврата отсчитывается от момента выдачи.
	borrowedAt := time.Now()
	dueDate := borrowedAt.Add(u.loanDuration)

	// 6. Запись выдачи; ошибка репозитория передается без изменений.
	created := u.loanRepo.Create(ctx, input, borrowedAt, dueDate)
	if created.IsErr() {
		log.Error(ctx, msgErrPersistingLoan, zap.Error(created.Error()))
		return created
	}

	// 7. Условное обновление статуса: AVAILABLE -> BORROWED. Конфликт
	// статуса означает, что экземпляр перехватила параллельная выдача.
	if err := u.bookRepo.UpdateCopyStatus(ctx, input.BookCopyID,
		entities.CopyStatusAvailable, entities.CopyStatusBorrowed); err != nil {
		log.Error(ctx, msgErrUpdatingCopy, zap.Error(err))
		return result.Err[*entities.Loan](errs.Validation(errFieldBookCopy, errMsgUpdatingCopy))
	}

	log.Info(ctx, msgLoanCreated, zap.String("loanID", created.Value().ID))
	return created
}

// ReturnLoan завершает активную выдачу и возвращает экземпляр в фонд.
func (u *LoanUseCaseImpl) ReturnLoan(ctx context.Context, loanID string) result.Result[*entities.Loan, *errs.Error] {
	log := logger.Log(ctx).With(
		zap.String("method", methodReturnLoan),
		zap.String("loanID", loanID))
	log.Debug(ctx, msgReturningLoan)

	loan, err := u.loanRepo.FindByID(ctx, loanID)
	if err != nil {
		log.Debug(ctx, msgLoanNotFound, zap.Error(err))
		return result.Err[*entities.Loan](errs.NotFound(loanID))
	}

	if !loan.IsActive() {
		log.Debug(ctx, msgLoanAlreadyClosed)
		return result.Err[*entities.Loan](errs.Validation(errFieldLoan, errMsgAlreadyReturned))
	}

	returned := u.loanRepo.MarkReturned(ctx, loanID, time.Now())
	if returned.IsErr() {
		log.Error(ctx, msgErrMarkingReturned, zap.Error(returned.Error()))
		return returned
	}

	if err := u.bookRepo.UpdateCopyStatus(ctx, loan.BookCopyID,
		entities.CopyStatusBorrowed, entities.CopyStatusAvailable); err != nil {
		log.Error(ctx, msgErrReleasingCopy, zap.Error(err))
		return result.Err[*entities.Loan](errs.Validation(errFieldBookCopy, errMsgReleasingCopy))
	}

	log.Info(ctx, msgLoanReturned)
	return returned
}
