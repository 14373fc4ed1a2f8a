package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound — одиночная выборка не нашла строку. Репозитории нормализуют
// pgx.ErrNoRows в эту ошибку, чтобы хендлеры не зависели от драйвера.
var ErrNotFound = errors.New("не найдено")

// ValidationError — ошибка проверки полей до обращения к БД.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
