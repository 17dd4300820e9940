// Package validation содержит чистые валидаторы домена: контрольные
// суммы ISBN-10/ISBN-13, обязательные поля и формат email. Валидаторы
// детерминированы и не выполняют ввод-вывод.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"libris/internal/library/domain/errs"
	"libris/pkg/result"
)

var (
	isbnSeparators = strings.NewReplacer("-", "", " ", "")
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateISBN проверяет контрольную сумму ISBN-10 или ISBN-13.
// Дефисы и пробелы игнорируются. Успех возвращает исходную строку.
func ValidateISBN(isbn string) result.Result[string, *errs.Error] {
	if strings.TrimSpace(isbn) == "" {
		return result.Err[string](errs.InvalidISBN("ISBN is required"))
	}

	digits := isbnSeparators.Replace(isbn)

	switch len(digits) {
	case 10:
		if validISBN10Checksum(digits) {
			return result.Ok[string, *errs.Error](isbn)
		}
		return result.Err[string](errs.InvalidISBN("Invalid ISBN-10 checksum"))
	case 13:
		if validISBN13Checksum(digits) {
			return result.Ok[string, *errs.Error](isbn)
		}
		return result.Err[string](errs.InvalidISBN("Invalid ISBN-13 checksum"))
	default:
		return result.Err[string](errs.InvalidISBN(
			fmt.Sprintf("Invalid ISBN format: expected 10 or 13 digits, got %d", len(digits))))
	}
}

// validISBN10Checksum проверяет взвешенную сумму ISBN-10: цифры 1..9 с
// весами 10..2 плюс контрольный символ (цифра или 'X'=10), сумма должна
// делиться на 11.
func validISBN10Checksum(digits string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		sum += d * (10 - i)
	}

	last := digits[9]
	switch {
	case last == 'X' || last == 'x':
		sum += 10
	case last >= '0' && last <= '9':
		sum += int(last - '0')
	default:
		return false
	}

	return sum%11 == 0
}

// validISBN13Checksum проверяет ISBN-13: цифры 1..12 с чередующимися
// весами 1 и 3; контрольная цифра равна (10 - sum mod 10) mod 10.
func validISBN13Checksum(digits string) bool {
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}

	check := digits[12]
	if check < '0' || check > '9' {
		return false
	}

	expected := (10 - sum%10) % 10
	return int(check-'0') == expected
}

// ValidateRequired проверяет непустоту обязательного поля. Успех
// возвращает исходное значение без обрезки пробелов.
func ValidateRequired(value, fieldName string) result.Result[string, *errs.Error] {
	if strings.TrimSpace(value) == "" {
		return result.Err[string](errs.RequiredFieldMissing(fieldName))
	}
	return result.Ok[string, *errs.Error](value)
}

// ValidateEmail проверяет формат адреса электронной почты.
func ValidateEmail(email string) result.Result[string, *errs.Error] {
	if !emailPattern.MatchString(email) {
		return result.Err[string](errs.InvalidEmail())
	}
	return result.Ok[string, *errs.Error](email)
}
