// Package respond переводит результаты сценариев в HTTP ответы.
package respond

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"libris/internal/library/domain/errs"
)

// ErrorResponse - тело ответа с доменной ошибкой.
type ErrorResponse struct {
	Error *errs.Error `json:"error"`
}

// StatusFor возвращает HTTP статус для тега доменной ошибки.
func StatusFor(errType errs.Type) int {
	switch errType {
	case errs.TypeNotFound, errs.TypeUserNotFound, errs.TypeCopyNotFound:
		return http.StatusNotFound
	case errs.TypeDuplicateEmail, errs.TypeAlreadyReserved, errs.TypeBookAvailable,
		errs.TypeLoanLimitExceeded, errs.TypeBookNotAvailable:
		return http.StatusConflict
	case errs.TypeUnauthorized:
		return http.StatusUnauthorized
	case errs.TypeValidationError, errs.TypeInvalidDateRange, errs.TypeInvalidISBN,
		errs.TypeRequiredFieldMissing, errs.TypeInvalidEmail:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// JSON отправляет успешный ответ с указанным статусом.
func JSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DomainError отправляет доменную ошибку со статусом по ее тегу.
func DomainError(ctx fiber.Ctx, domainErr *errs.Error) error {
	if err := ctx.Status(StatusFor(domainErr.Type)).JSON(ErrorResponse{Error: domainErr}); err != nil {
		return fmt.Errorf("sending error response: %w", err)
	}
	return nil
}

// BadRequest отправляет ошибку валидации запроса.
func BadRequest(ctx fiber.Ctx, field, message string) error {
	return DomainError(ctx, errs.Validation(field, message))
}

// Unauthorized отправляет ошибку аутентификации.
func Unauthorized(ctx fiber.Ctx, message string) error {
	return DomainError(ctx, errs.Unauthorized(message))
}
