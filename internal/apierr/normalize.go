package apierr

import (
	"errors"
)

// Normalize проецирует ошибку в Error.
//
//   - nil → nil
//   - *Error → без изменений
//   - *BackendError → сообщение по таблице семейства
//   - прочие ошибки (сеть, отмена контекста, таймаут) → "Unexpected request failure"
//
// Вид ошибки вне закрытого набора семейства даёт "Unexpected status: {code}",
// так что проекция тотальна.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}

	var unified *Error
	if errors.As(err, &unified) {
		return unified
	}

	var be *BackendError
	if errors.As(err, &be) {
		return &Error{Message: Message(be)}
	}

	return &Error{Message: commonMessage(&BackendError{Kind: KindRequestFailure, Err: err})}
}

// Message возвращает текст ошибки backend по правилам её семейства.
func Message(e *BackendError) string {
	if !e.Family.Allows(e.Kind) {
		return unexpectedStatus(e)
	}
	return families[e.Family].message(e)
}

// IsNotFound сообщает, является ли ошибка ответом 404.
func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Kind == KindNotFound
}
