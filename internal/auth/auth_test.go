package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shaiso/cloudctl/internal/domain"
)

func TestContext_HeaderAndAccount(t *testing.T) {
	ctx, err := New(domain.UnsafeToken{
		Data:   domain.Token{AccountID: "acc-42"},
		Secret: domain.TokenSecret{Value: "s3cr3t"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ctx.Header(); got != "bearer s3cr3t" {
		t.Errorf("expected bearer header, got %q", got)
	}
	if got := ctx.AccountID(); got != "acc-42" {
		t.Errorf("expected acc-42, got %q", got)
	}
	if got := ctx.Token().AccountID; got != "acc-42" {
		t.Errorf("expected token data to carry account, got %q", got)
	}
}

func TestNew_EmptySecret(t *testing.T) {
	_, err := New(domain.UnsafeToken{Data: domain.Token{AccountID: "acc"}})
	if !errors.Is(err, ErrEmptySecret) {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
}

func TestReadTokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	content := `{
  "data": {
    "id": "7f1d4bd2-8f0b-4a52-9d8e-5f5b6a1c2e3d",
    "account_id": "acc-1",
    "created_at": "2024-01-01T00:00:00Z",
    "expires_at": "2100-01-01T00:00:00Z"
  },
  "secret": {"value": "9a7c"}
}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	token, err := ReadTokenFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Data.AccountID != "acc-1" {
		t.Errorf("expected acc-1, got %q", token.Data.AccountID)
	}
	if token.Secret.Value != "9a7c" {
		t.Errorf("expected secret 9a7c, got %q", token.Secret.Value)
	}
	if token.Data.ID.String() != "7f1d4bd2-8f0b-4a52-9d8e-5f5b6a1c2e3d" {
		t.Errorf("unexpected token id %s", token.Data.ID)
	}
}

func TestReadTokenFile_Errors(t *testing.T) {
	if _, err := ReadTokenFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadTokenFile(path); err == nil {
		t.Error("expected error for malformed file")
	}
}
