package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/domain"
)

func newTestTransport(t *testing.T, handler http.HandlerFunc) *Transport {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewTransport(TransportConfig{
		BaseURL:       server.URL + "/",
		Authorization: "bearer secret-1",
	})
}

func TestTransport_AuthorizationAndDecode(t *testing.T) {
	projectID := uuid.New()

	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "bearer secret-1" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/v2/projects" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("project-name"); got != "shop" {
			t.Errorf("expected project-name=shop, got %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"project_id":   projectID.String(),
				"project_data": map[string]any{"name": "shop", "owner_account_id": "acc", "description": ""},
			},
		})
	})

	name := "shop"
	projects, err := NewProjects(tr).List(context.Background(), &name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].ProjectID.UUID != projectID {
		t.Errorf("expected %s, got %s", projectID, projects[0].ProjectID)
	}
	if projects[0].ProjectData.Name != "shop" {
		t.Errorf("expected name shop, got %q", projects[0].ProjectData.Name)
	}
}

func TestTransport_ErrorStatusUsesFamily(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"errors": []string{"site.host invalid"}})
	})

	_, err := NewDeployments(tr).Update(context.Background(), domain.ApiDeployment{})
	var be *apierr.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %T: %v", err, err)
	}
	if be.Family != apierr.FamilyDeployment {
		t.Errorf("expected deployment family, got %s", be.Family)
	}
	if got := apierr.Normalize(err).Message; got != "Invalid API call: site.host invalid" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestTransport_UnexpectedStatus(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := NewAccounts(tr).Get(context.Background(), "acc")
	if got := apierr.Normalize(err).Message; got != "Unexpected status: 418" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestTransport_InvalidHeader(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	tr := NewTransport(TransportConfig{
		BaseURL:       server.URL,
		Authorization: "bearer bad\nvalue",
	})

	_, err := NewTokens(tr).List(context.Background(), "acc")
	var be *apierr.BackendError
	if !errors.As(err, &be) || be.Kind != apierr.KindInvalidHeader {
		t.Fatalf("expected invalid header error, got %v", err)
	}
	if !errors.Is(err, apierr.ErrInvalidHeaderValue) {
		t.Error("expected ErrInvalidHeaderValue in chain")
	}
	if called {
		t.Error("request must not be sent with an invalid header")
	}
}

func TestTransport_RequestFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	tr := NewTransport(TransportConfig{BaseURL: url})
	_, err := NewProjects(tr).GetDefault(context.Background())

	var be *apierr.BackendError
	if !errors.As(err, &be) || be.Kind != apierr.KindRequestFailure {
		t.Fatalf("expected request failure, got %v", err)
	}
	if !strings.HasPrefix(apierr.Normalize(err).Message, "Unexpected request failure: ") {
		t.Errorf("unexpected message %q", apierr.Normalize(err).Message)
	}
}

func TestTransport_Timeout(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	tr.httpClient = &http.Client{Timeout: 20 * time.Millisecond}

	_, err := NewProjects(tr).GetDefault(context.Background())
	var be *apierr.BackendError
	if !errors.As(err, &be) || be.Kind != apierr.KindRequestFailure {
		t.Fatalf("expected timeout to be a request failure, got %v", err)
	}
}

func TestTransport_MalformedSuccessBody(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := NewAccounts(tr).Get(context.Background(), "acc")
	var be *apierr.BackendError
	if !errors.As(err, &be) || be.Kind != apierr.KindRequestFailure {
		t.Fatalf("expected request failure, got %v", err)
	}
}

func TestComponents_AddUploadsBinary(t *testing.T) {
	projectID := domain.ProjectID{UUID: uuid.New()}
	componentID := uuid.New()

	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/octet-stream" {
			t.Errorf("expected octet-stream, got %q", ct)
		}
		if r.URL.Query().Get("project-id") != projectID.String() {
			t.Errorf("unexpected project-id %q", r.URL.Query().Get("project-id"))
		}
		if r.URL.Query().Get("component-name") != "cart" {
			t.Errorf("unexpected component-name %q", r.URL.Query().Get("component-name"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "\x00asm" {
			t.Errorf("unexpected body %q", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"versioned_component_id": map[string]any{"component_id": componentID.String(), "version": 0},
			"component_name":         "cart",
			"component_size":         4,
			"project_id":             projectID.String(),
		})
	})

	c, err := NewComponents(tr).Add(context.Background(), projectID, "cart", strings.NewReader("\x00asm"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.VersionedComponentID.ComponentID.UUID != componentID {
		t.Errorf("unexpected component id %s", c.VersionedComponentID.ComponentID)
	}
	if c.ComponentSize != 4 {
		t.Errorf("expected size 4, got %d", c.ComponentSize)
	}
}

func TestComponents_ConflictAndTimeout(t *testing.T) {
	status := http.StatusConflict
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if status == http.StatusConflict {
			json.NewEncoder(w).Encode(map[string]any{"component_id": "cart-id"})
		}
	})
	client := NewComponents(tr)

	_, err := client.Add(context.Background(), domain.ProjectID{UUID: uuid.New()}, "cart", strings.NewReader(""))
	if got := apierr.Normalize(err).Message; got != "cart-id already exists" {
		t.Errorf("unexpected message %q", got)
	}

	status = http.StatusGatewayTimeout
	_, err = client.GetLatest(context.Background(), domain.ComponentID{UUID: uuid.New()})
	if got := apierr.Normalize(err).Message; got != "Gateway Timeout" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestDeployments_Delete(t *testing.T) {
	projectID := domain.ProjectID{UUID: uuid.New()}

	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		q := r.URL.Query()
		if q.Get("project-id") != projectID.String() || q.Get("api-definition-id") != "def-1" || q.Get("site") != "tenant1.api.example.com" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode("API deployment deleted")
	})

	res, err := NewDeployments(tr).Delete(context.Background(), projectID, "def-1", "tenant1.api.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != "API deployment deleted" {
		t.Errorf("unexpected response %q", res)
	}
}

func TestWorkers_DeleteNoContent(t *testing.T) {
	tr := newTestTransport(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.EscapedPath(), "/workers/w%201") {
			t.Errorf("worker name should be escaped, got %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := NewWorkers(tr).Delete(context.Background(), domain.ComponentID{UUID: uuid.New()}, "w 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogin_CurrentToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "bearer good":
			json.NewEncoder(w).Encode(map[string]any{
				"id":         uuid.New().String(),
				"account_id": "acc-7",
				"created_at": "2024-01-01T00:00:00Z",
				"expires_at": "2100-01-01T00:00:00Z",
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"error": "github rejected the token"})
		}
	}))
	defer server.Close()

	login := NewLogin(server.URL, nil, nil)

	token, err := login.CurrentToken(context.Background(), domain.TokenSecret{Value: "good"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccountID != "acc-7" {
		t.Errorf("expected acc-7, got %q", token.AccountID)
	}

	_, err = login.CurrentToken(context.Background(), domain.TokenSecret{Value: "bad"})
	if got := apierr.Normalize(err).Message; got != "External service call error on Login: github rejected the token" {
		t.Errorf("unexpected message %q", got)
	}
}
