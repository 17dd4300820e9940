// Package dto содержит объекты передачи данных HTTP API библиотеки.
package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"libris/internal/library/domain/errs"
)

var validate = validator.New()

// Validate проверяет DTO по validate-тегам и переводит первую найденную
// ошибку в доменную ошибку валидации.
func Validate(request any) *errs.Error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return errs.Validation("request", err.Error())
	}

	first := validationErrors[0]
	field := fieldName(first)

	switch first.Tag() {
	case "required":
		return errs.RequiredFieldMissing(field)
	case "email":
		return errs.InvalidEmail()
	default:
		return errs.Validation(field, "failed validation rule "+first.Tag())
	}
}

func fieldName(fieldErr validator.FieldError) string {
	name := fieldErr.Field()
	if name == "" {
		return "request"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
