package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/auth"
	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/cloud/fake"
	"github.com/shaiso/cloudctl/internal/config"
	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/resolve"
)

type testEnv struct {
	projects    *fake.Projects
	deployments *fake.Deployments
	components  *fake.Components
	grants      *fake.ProjectGrants
	sessions    int
}

func newTestEnv() *testEnv {
	return &testEnv{
		projects:    &fake.Projects{},
		deployments: &fake.Deployments{},
		components:  &fake.Components{},
		grants:      &fake.ProjectGrants{},
	}
}

func (e *testEnv) session(ctx context.Context) (*Session, error) {
	e.sessions++
	authCtx, err := auth.New(domain.UnsafeToken{
		Data:   domain.Token{AccountID: "acc-1"},
		Secret: domain.TokenSecret{Value: "secret"},
	})
	if err != nil {
		return nil, err
	}
	clients := cloud.Clients{
		Projects:      e.projects,
		Deployments:   e.deployments,
		Components:    e.components,
		ProjectGrants: e.grants,
		Policies:      &fake.Policies{},
	}
	return &Session{
		Auth:     authCtx,
		Clients:  clients,
		Resolver: resolve.New(e.projects, e.components, nil),
	}, nil
}

func (e *testEnv) run(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	root := NewRootCmd(Options{
		Config:  config.Config{CloudURL: config.DefaultCloudURL, LogLevel: "ERROR"},
		Stdout:  &stdout,
		Stderr:  &stderr,
		Session: e.session,
	})
	root.SetArgs(args)
	root.SetOut(&stderr)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDeploymentAdd_JSON(t *testing.T) {
	env := newTestEnv()
	p := env.projects.AddProject("main")
	env.projects.DefaultID = &p

	out, err := env.run("api-deployment", "add", "-d", "def-1", "-H", "api.example.com", "-s", "tenant1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got domain.ApiDeployment
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, out)
	}
	if got.ProjectID != p || got.Site.Subdomain != "tenant1" {
		t.Errorf("unexpected deployment %+v", got)
	}
	if !strings.Contains(out, "\n  \"api_definition_id\": \"def-1\"") {
		t.Errorf("expected two-space indented json, got:\n%s", out)
	}
}

func TestDeploymentGet_YAML(t *testing.T) {
	env := newTestEnv()
	p := env.projects.AddProject("shop")
	env.deployments.Items = []domain.ApiDeployment{{
		ProjectID:       p,
		ApiDefinitionID: "def-1",
		Site:            domain.ApiSite{Host: "api.example.com", Subdomain: "tenant1"},
	}}

	out, err := env.run("api-deployment", "get", "--format", "yaml", "-p", "shop", "-d", "def-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"api_definition_id: def-1", "host: api.example.com", "project_id: " + p.String()} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in yaml output:\n%s", want, out)
		}
	}
}

func TestDeploymentDelete_UnknownProject(t *testing.T) {
	env := newTestEnv()

	_, err := env.run("api-deployment", "delete", "-p", "shop", "-d", "def-1", "-s", "tenant1.api.example.com")
	if err == nil || err.Error() != "Not found: Can't find project with name shop" {
		t.Fatalf("unexpected error %v", err)
	}
	if env.deployments.DeleteCalls != 0 {
		t.Error("delete must not be called")
	}
}

func TestParseErrorsBeforeSession(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "format",
			args: []string{"project", "list", "--format", "xml"},
			want: `Unknown format: xml. Expected one of "json", "yaml"`,
		},
		{
			name: "project id and name",
			args: []string{"api-deployment", "get", "-d", "def-1", "-p", "shop", "-P", uuid.NewString()},
			want: "none of the others can be",
		},
		{
			name: "component id and project",
			args: []string{"component", "get", "-C", uuid.NewString(), "-p", "shop"},
			want: "none of the others can be",
		},
		{
			name: "missing component",
			args: []string{"component", "get"},
			want: "at least one of the flags in the group",
		},
		{
			name: "role",
			args: []string{"grant", "add", "--role", "Root"},
			want: "Unknown role: Root",
		},
		{
			name: "action",
			args: []string{"project-policy", "add", "--project-policy-name", "p", "--project-actions", "ViewComponent,Fly"},
			want: "Unknown action: Fly",
		},
		{
			name: "unknown flag",
			args: []string{"project", "default", "-P", "nope"},
			want: "unknown shorthand flag",
		},
		{
			name: "component uuid",
			args: []string{"component", "get", "-C", "nope"},
			want: "invalid argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			_, err := env.run(tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
			if env.sessions != 0 {
				t.Error("session must not be opened on a parse error")
			}
		})
	}
}

func TestShare(t *testing.T) {
	env := newTestEnv()
	p := env.projects.AddProject("shop")

	out, err := env.run("share", "-p", "shop", "--recipient-account-id", "acc-2", "--project-actions", "ViewComponent", "--project-actions", "ViewWorker")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.grants.LastProject != p {
		t.Errorf("expected project %s, got %s", p, env.grants.LastProject)
	}
	want := []domain.ProjectAction{domain.ActionViewComponent, domain.ActionViewWorker}
	got := env.grants.LastRequest.ProjectActions
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected actions %v, got %v", want, got)
	}
	if !strings.Contains(out, `"grantee_account_id": "acc-2"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestComponentAdd_File(t *testing.T) {
	env := newTestEnv()
	p := env.projects.AddProject("shop")
	env.projects.DefaultID = &p

	path := t.TempDir() + "/cart.wasm"
	if err := writeFile(path, "\x00asm"); err != nil {
		t.Fatal(err)
	}

	_, err := env.run("component", "add", "-c", "cart", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.components.Items) != 1 || env.components.Items[0].ComponentSize != 4 {
		t.Errorf("unexpected components %+v", env.components.Items)
	}

	_, err = env.run("component", "add", "-c", "cart", path+".missing")
	if err == nil || !strings.Contains(err.Error(), "open component file") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestBackendErrorMessage(t *testing.T) {
	env := newTestEnv()
	env.projects.Err = &apierr.BackendError{Family: apierr.FamilyProject, Kind: apierr.KindForbidden, Status: 403, Detail: "project limit"}

	_, err := env.run("project", "list")
	if err == nil || err.Error() != "Limit Exceeded: project limit" {
		t.Errorf("unexpected error %v", err)
	}
}
