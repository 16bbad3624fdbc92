package handler

import (
	"context"
	"testing"
	"time"

	"github.com/shaiso/cloudctl/internal/cloud/fake"
	"github.com/shaiso/cloudctl/internal/domain"
)

func TestAccounts_UpdateKeepsOmittedFields(t *testing.T) {
	accounts := &fake.Accounts{Items: map[domain.AccountID]domain.Account{
		"acc-1": {ID: "acc-1", Name: "Ann", Email: "ann@example.com"},
	}}
	h := NewAccounts(accounts, "acc-1")

	name := "Anna"
	res, err := h.Handle(context.Background(), AccountUpdate{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := res.Value().(*domain.Account)
	if got.Name != "Anna" || got.Email != "ann@example.com" {
		t.Errorf("unexpected account %+v", got)
	}
	if accounts.GetCalls != 1 || accounts.UpdateCalls != 1 {
		t.Errorf("expected one get and one update, got %d/%d", accounts.GetCalls, accounts.UpdateCalls)
	}
}

func TestAccounts_GetOtherAndDelete(t *testing.T) {
	accounts := &fake.Accounts{Items: map[domain.AccountID]domain.Account{
		"acc-1": {ID: "acc-1"},
		"acc-2": {ID: "acc-2", Name: "Bob"},
	}}
	h := NewAccounts(accounts, "acc-1")
	ctx := context.Background()

	res, err := h.Handle(ctx, AccountGet{AccountID: "acc-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value().(*domain.Account).Name != "Bob" {
		t.Errorf("unexpected account %+v", res.Value())
	}

	res, err = h.Handle(ctx, AccountDelete{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, ok := res.Text(); !ok || text != "Deleted" {
		t.Errorf("expected literal Deleted, got %q", text)
	}
	if _, exists := accounts.Items["acc-1"]; exists {
		t.Error("current account should be deleted")
	}

	_, err = h.Handle(ctx, AccountGet{})
	if err == nil || err.Error() != "Not found: acc-1" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestTokens_AddDefaultExpiry(t *testing.T) {
	tokens := &fake.Tokens{}
	h := NewTokens(tokens, "acc-1")

	res, err := h.Handle(context.Background(), TokenAdd{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token := res.Value().(*domain.UnsafeToken)
	if !token.Data.ExpiresAt.Equal(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected expiry %s", token.Data.ExpiresAt)
	}
	if token.Data.AccountID != "acc-1" {
		t.Errorf("unexpected account %q", token.Data.AccountID)
	}

	res, err = h.Handle(context.Background(), TokenDelete{TokenID: token.Data.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, _ := res.Text(); text != "Deleted" {
		t.Errorf("unexpected result %q", text)
	}
}

func TestGrants(t *testing.T) {
	grants := &fake.Grants{}
	h := NewGrants(grants, "acc-1")
	ctx := context.Background()

	if _, err := h.Handle(ctx, GrantAdd{Role: domain.RoleViewProject}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := h.Handle(ctx, GrantGet{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	roles := res.Value().([]domain.Role)
	if len(roles) != 1 || roles[0] != domain.RoleViewProject {
		t.Errorf("unexpected roles %v", roles)
	}

	_, err = h.Handle(ctx, GrantDelete{Role: domain.RoleAdmin})
	if err == nil || err.Error() != "Not found: Admin" {
		t.Errorf("unexpected error %v", err)
	}
}
