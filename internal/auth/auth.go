// Package auth хранит учётные данные одного запуска CLI.
//
// Context создаётся один раз из уже полученного токена и после этого
// не меняется. Пакет ничего не сохраняет на диск.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shaiso/cloudctl/internal/domain"
)

// ErrEmptySecret — у токена нет секрета.
var ErrEmptySecret = errors.New("token secret is empty")

// TokenHeader возвращает значение заголовка Authorization для секрета.
func TokenHeader(secret domain.TokenSecret) string {
	return "bearer " + secret.Value
}

// Context — аутентификационный контекст запуска.
type Context struct {
	token domain.UnsafeToken
}

// New создаёт Context из токена с секретом.
func New(token domain.UnsafeToken) (*Context, error) {
	if token.Secret.Value == "" {
		return nil, ErrEmptySecret
	}
	return &Context{token: token}, nil
}

// Header возвращает "bearer {secret}" для заголовка Authorization.
func (c *Context) Header() string {
	return TokenHeader(c.token.Secret)
}

// AccountID возвращает аккаунт, которому принадлежит токен.
func (c *Context) AccountID() domain.AccountID {
	return c.token.Data.AccountID
}

// Token возвращает метаданные токена без секрета.
func (c *Context) Token() domain.Token {
	return c.token.Data
}

// ReadTokenFile читает UnsafeToken из JSON-файла.
//
// Файл создаётся внешним инструментом (например, после входа в браузере);
// CLI его только читает.
func ReadTokenFile(path string) (domain.UnsafeToken, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.UnsafeToken{}, fmt.Errorf("read token file: %w", err)
	}

	var token domain.UnsafeToken
	if err := json.Unmarshal(data, &token); err != nil {
		return domain.UnsafeToken{}, fmt.Errorf("parse token file %s: %w", path, err)
	}
	return token, nil
}
