package cloud

import (
	"context"
	"time"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/domain"
)

// --- Accounts ---

// Accounts — HTTP-реализация AccountClient.
type Accounts struct {
	t *Transport
}

// NewAccounts создаёт клиент аккаунтов.
func NewAccounts(t *Transport) *Accounts {
	return &Accounts{t: t}
}

// Get возвращает аккаунт.
func (c *Accounts) Get(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var account domain.Account
	if err := c.t.get(ctx, apierr.FamilyAccount, "/v2/accounts/"+segment(id.String()), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Update заменяет данные аккаунта.
func (c *Accounts) Update(ctx context.Context, id domain.AccountID, data domain.AccountData) (*domain.Account, error) {
	var account domain.Account
	if err := c.t.put(ctx, apierr.FamilyAccount, "/v2/accounts/"+segment(id.String()), data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Add создаёт аккаунт.
func (c *Accounts) Add(ctx context.Context, data domain.AccountData) (*domain.Account, error) {
	var account domain.Account
	if err := c.t.post(ctx, apierr.FamilyAccount, "/v2/accounts", data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Delete удаляет аккаунт.
func (c *Accounts) Delete(ctx context.Context, id domain.AccountID) error {
	return c.t.delete(ctx, apierr.FamilyAccount, "/v2/accounts/"+segment(id.String()), nil, nil)
}

// --- Tokens ---

// Tokens — HTTP-реализация TokenClient.
type Tokens struct {
	t *Transport
}

// NewTokens создаёт клиент токенов.
func NewTokens(t *Transport) *Tokens {
	return &Tokens{t: t}
}

func tokensPath(account domain.AccountID) string {
	return "/v2/accounts/" + segment(account.String()) + "/tokens"
}

// List возвращает токены аккаунта.
func (c *Tokens) List(ctx context.Context, account domain.AccountID) ([]domain.Token, error) {
	var tokens []domain.Token
	err := c.t.get(ctx, apierr.FamilyToken, tokensPath(account), nil, &tokens)
	return tokens, err
}

// Get возвращает токен.
func (c *Tokens) Get(ctx context.Context, account domain.AccountID, id domain.TokenID) (*domain.Token, error) {
	var token domain.Token
	if err := c.t.get(ctx, apierr.FamilyToken, tokensPath(account)+"/"+id.String(), nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Add создаёт токен; секрет возвращается только здесь.
func (c *Tokens) Add(ctx context.Context, account domain.AccountID, expiresAt time.Time) (*domain.UnsafeToken, error) {
	var token domain.UnsafeToken
	body := domain.CreateTokenRequest{ExpiresAt: expiresAt}
	if err := c.t.post(ctx, apierr.FamilyToken, tokensPath(account), body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Delete удаляет токен.
func (c *Tokens) Delete(ctx context.Context, account domain.AccountID, id domain.TokenID) error {
	return c.t.delete(ctx, apierr.FamilyToken, tokensPath(account)+"/"+id.String(), nil, nil)
}

// --- Grants ---

// Grants — HTTP-реализация GrantClient.
type Grants struct {
	t *Transport
}

// NewGrants создаёт клиент ролей.
func NewGrants(t *Transport) *Grants {
	return &Grants{t: t}
}

func grantsPath(account domain.AccountID) string {
	return "/v2/accounts/" + segment(account.String()) + "/grants"
}

// List возвращает роли аккаунта.
func (c *Grants) List(ctx context.Context, account domain.AccountID) ([]domain.Role, error) {
	var roles []domain.Role
	err := c.t.get(ctx, apierr.FamilyGrant, grantsPath(account), nil, &roles)
	return roles, err
}

// Get проверяет наличие роли у аккаунта.
func (c *Grants) Get(ctx context.Context, account domain.AccountID, role domain.Role) (domain.Role, error) {
	var got domain.Role
	err := c.t.get(ctx, apierr.FamilyGrant, grantsPath(account)+"/"+role.String(), nil, &got)
	return got, err
}

// Add выдаёт роль.
func (c *Grants) Add(ctx context.Context, account domain.AccountID, role domain.Role) (domain.Role, error) {
	var got domain.Role
	err := c.t.put(ctx, apierr.FamilyGrant, grantsPath(account)+"/"+role.String(), nil, &got)
	return got, err
}

// Delete отзывает роль.
func (c *Grants) Delete(ctx context.Context, account domain.AccountID, role domain.Role) error {
	return c.t.delete(ctx, apierr.FamilyGrant, grantsPath(account)+"/"+role.String(), nil, nil)
}
