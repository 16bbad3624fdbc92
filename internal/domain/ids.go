package domain

import (
	"github.com/google/uuid"
)

// AccountID — идентификатор аккаунта.
//
// Значение приходит снаружи (флаг, токен) и не валидируется.
// TODO: проверять формат, когда сервер опубликует его.
type AccountID string

// String возвращает строковое представление AccountID.
func (id AccountID) String() string {
	return string(id)
}

// ProjectID — UUID проекта.
type ProjectID struct {
	uuid.UUID
}

// ComponentID — UUID компонента.
type ComponentID struct {
	uuid.UUID
}

// TokenID — UUID токена.
type TokenID struct {
	uuid.UUID
}

// ProjectPolicyID — UUID политики проекта.
type ProjectPolicyID struct {
	uuid.UUID
}

// ComponentName — имя компонента внутри проекта.
type ComponentName string

// String возвращает строковое представление ComponentName.
func (n ComponentName) String() string {
	return string(n)
}
