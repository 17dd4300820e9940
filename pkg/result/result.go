// Package result реализует тип Result[T, E] - явное представление
// успеха или ошибки в виде значения вместо паники или исключения.
package result

// Result хранит либо значение успеха, либо ошибку. Ровно один из
// вариантов активен; доступ к значению другого варианта недопустим.
// Значение неизменяемо после создания.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok создает успешный результат со значением value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: true, value: value}
}

// Err создает результат с ошибкой err.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{ok: false, err: err}
}

// IsOk сообщает, является ли результат успешным.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr сообщает, содержит ли результат ошибку.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value возвращает значение успеха. Для ошибочного результата
// возвращается нулевое значение типа T.
func (r Result[T, E]) Value() T {
	return r.value
}

// Error возвращает ошибку. Для успешного результата возвращается
// нулевое значение типа E.
func (r Result[T, E]) Error() E {
	return r.err
}

// Unwrap возвращает значение успеха. Вызов на ошибочном результате -
// нарушение контракта вызывающего кода, поэтому паника.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("result: Unwrap called on an error result")
	}
	return r.value
}

// UnwrapOr возвращает значение успеха или defaultValue при ошибке.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// Map применяет fn к значению успеха. Ошибка проходит без изменений,
// fn при этом не вызывается.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr применяет fn к ошибке. Значение успеха проходит без изменений,
// fn при этом не вызывается.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// FlatMap связывает r с функцией fn, возвращающей Result. Цепочка
// обрывается на первой ошибке: дальнейшие fn не вызываются, а самая
// ранняя ошибка распространяется без слияния с последующими.
func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U, E](r.err)
}
