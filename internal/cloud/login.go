package cloud

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/auth"
	"github.com/shaiso/cloudctl/internal/domain"
)

// Login — HTTP-реализация LoginClient.
//
// Секрет передаётся в каждый вызов, поэтому транспорт создаётся на вызов.
type Login struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLogin создаёт клиент входа.
func NewLogin(baseURL string, httpClient *http.Client, logger *slog.Logger) *Login {
	return &Login{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// CurrentToken возвращает метаданные токена, которому принадлежит секрет.
func (c *Login) CurrentToken(ctx context.Context, secret domain.TokenSecret) (*domain.Token, error) {
	t := NewTransport(TransportConfig{
		BaseURL:       c.baseURL,
		HTTPClient:    c.httpClient,
		Authorization: auth.TokenHeader(secret),
		Logger:        c.logger,
	})

	var token domain.Token
	if err := t.get(ctx, apierr.FamilyLogin, "/v2/login/token", nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
