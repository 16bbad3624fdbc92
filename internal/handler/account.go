package handler

import (
	"context"
	"time"

	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/domain"
)

// AccountCommand — команда группы account.
type AccountCommand interface {
	accountCommand()
}

// AccountGet — данные аккаунта. Пустой AccountID — текущий аккаунт.
type AccountGet struct {
	AccountID domain.AccountID
}

// AccountAdd — регистрация аккаунта.
type AccountAdd struct {
	Name  string
	Email string
}

// AccountUpdate — изменение аккаунта. nil-поля сохраняют текущее значение.
type AccountUpdate struct {
	AccountID domain.AccountID
	Name      *string
	Email     *string
}

// AccountDelete — удаление аккаунта.
type AccountDelete struct {
	AccountID domain.AccountID
}

func (AccountGet) accountCommand()    {}
func (AccountAdd) accountCommand()    {}
func (AccountUpdate) accountCommand() {}
func (AccountDelete) accountCommand() {}

// Accounts — обработчик группы account.
type Accounts struct {
	client  cloud.AccountClient
	current domain.AccountID
}

// NewAccounts создаёт обработчик аккаунтов. current — аккаунт токена.
func NewAccounts(client cloud.AccountClient, current domain.AccountID) *Accounts {
	return &Accounts{client: client, current: current}
}

// Handle выполняет команду.
func (h *Accounts) Handle(ctx context.Context, cmd AccountCommand) (Result, error) {
	switch c := cmd.(type) {
	case AccountGet:
		res, err := h.client.Get(ctx, orCurrent(c.AccountID, h.current))
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case AccountAdd:
		res, err := h.client.Add(ctx, domain.AccountData{Name: c.Name, Email: c.Email})
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case AccountUpdate:
		id := orCurrent(c.AccountID, h.current)
		existing, err := h.client.Get(ctx, id)
		if err != nil {
			return Result{}, fail(err)
		}
		data := domain.AccountData{Name: existing.Name, Email: existing.Email}
		if c.Name != nil {
			data.Name = *c.Name
		}
		if c.Email != nil {
			data.Email = *c.Email
		}
		res, err := h.client.Update(ctx, id, data)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case AccountDelete:
		if err := h.client.Delete(ctx, orCurrent(c.AccountID, h.current)); err != nil {
			return Result{}, fail(err)
		}
		return Str("Deleted"), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}

func orCurrent(id, current domain.AccountID) domain.AccountID {
	if id == "" {
		return current
	}
	return id
}

// DefaultTokenExpiry — срок действия токена, если он не задан.
var DefaultTokenExpiry = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)

// TokenCommand — команда группы token.
type TokenCommand interface {
	tokenCommand()
}

// TokenList — токены текущего аккаунта.
type TokenList struct{}

// TokenAdd — выпуск токена. Нулевой ExpiresAt — DefaultTokenExpiry.
type TokenAdd struct {
	ExpiresAt time.Time
}

// TokenDelete — отзыв токена.
type TokenDelete struct {
	TokenID domain.TokenID
}

func (TokenList) tokenCommand()   {}
func (TokenAdd) tokenCommand()    {}
func (TokenDelete) tokenCommand() {}

// Tokens — обработчик группы token.
type Tokens struct {
	client  cloud.TokenClient
	account domain.AccountID
}

// NewTokens создаёт обработчик токенов аккаунта.
func NewTokens(client cloud.TokenClient, account domain.AccountID) *Tokens {
	return &Tokens{client: client, account: account}
}

// Handle выполняет команду.
func (h *Tokens) Handle(ctx context.Context, cmd TokenCommand) (Result, error) {
	switch c := cmd.(type) {
	case TokenList:
		res, err := h.client.List(ctx, h.account)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case TokenAdd:
		expiresAt := c.ExpiresAt
		if expiresAt.IsZero() {
			expiresAt = DefaultTokenExpiry
		}
		res, err := h.client.Add(ctx, h.account, expiresAt)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case TokenDelete:
		if err := h.client.Delete(ctx, h.account, c.TokenID); err != nil {
			return Result{}, fail(err)
		}
		return Str("Deleted"), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}

// GrantCommand — команда группы grant.
type GrantCommand interface {
	grantCommand()
}

// GrantGet — роли аккаунта.
type GrantGet struct {
	AccountID domain.AccountID
}

// GrantAdd — выдача роли.
type GrantAdd struct {
	AccountID domain.AccountID
	Role      domain.Role
}

// GrantDelete — отзыв роли.
type GrantDelete struct {
	AccountID domain.AccountID
	Role      domain.Role
}

func (GrantGet) grantCommand()    {}
func (GrantAdd) grantCommand()    {}
func (GrantDelete) grantCommand() {}

// Grants — обработчик группы grant.
type Grants struct {
	client  cloud.GrantClient
	current domain.AccountID
}

// NewGrants создаёт обработчик ролей.
func NewGrants(client cloud.GrantClient, current domain.AccountID) *Grants {
	return &Grants{client: client, current: current}
}

// Handle выполняет команду.
func (h *Grants) Handle(ctx context.Context, cmd GrantCommand) (Result, error) {
	switch c := cmd.(type) {
	case GrantGet:
		res, err := h.client.List(ctx, orCurrent(c.AccountID, h.current))
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case GrantAdd:
		if _, err := h.client.Add(ctx, orCurrent(c.AccountID, h.current), c.Role); err != nil {
			return Result{}, fail(err)
		}
		return Str("Role granted"), nil

	case GrantDelete:
		if err := h.client.Delete(ctx, orCurrent(c.AccountID, h.current), c.Role); err != nil {
			return Result{}, fail(err)
		}
		return Str("Role removed"), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}
