package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных (HTTP 400).
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется для синтаксически корректного, но семантически
	// невалидного ввода, например ссылки на несуществующую категорию (HTTP 422).
	ErrUnprocessable = errors.New("unprocessable content")
)
