// Package api определяет интерфейсы сценариев использования библиотеки.
// Каждая операция возвращает Result: ожидаемые сбои бизнес-правил -
// значения с тегом, а не ошибки Go.
package api

import (
	"context"

	"libris/internal/library/domain/entities"
	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

// LoanUseCase определяет сценарии выдачи и возврата книг.
type LoanUseCase interface {
	// CreateLoan выполняет упорядоченную цепочку проверок и создает
	// выдачу. Порядок проверок фиксирован: читатель, лимит выдач,
	// экземпляр, доступность.
	CreateLoan(ctx context.Context, input entities.CreateLoanInput) result.Result[*entities.Loan, *errs.Error]

	// ReturnLoan завершает активную выдачу и освобождает экземпляр.
	ReturnLoan(ctx context.Context, loanID string) result.Result[*entities.Loan, *errs.Error]
}
