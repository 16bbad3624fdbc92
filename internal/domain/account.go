package domain

import (
	"time"
)

// Account — аккаунт платформы.
type Account struct {
	ID    AccountID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AccountData — изменяемые поля аккаунта (тело POST/PUT).
type AccountData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Token — метаданные токена доступа (без секрета).
type Token struct {
	ID        TokenID   `json:"id"`
	AccountID AccountID `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenSecret — секрет токена, передаётся как bearer.
type TokenSecret struct {
	Value string `json:"value"`
}

// UnsafeToken — токен вместе с секретом.
//
// Сервер возвращает его только один раз, при создании токена.
type UnsafeToken struct {
	Data   Token       `json:"data"`
	Secret TokenSecret `json:"secret"`
}

// CreateTokenRequest — тело запроса на создание токена.
type CreateTokenRequest struct {
	ExpiresAt time.Time `json:"expires_at"`
}
