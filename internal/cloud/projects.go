package cloud

import (
	"context"
	"net/url"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/domain"
)

// --- Projects ---

// Projects — HTTP-реализация ProjectClient.
type Projects struct {
	t *Transport
}

// NewProjects создаёт клиент проектов.
func NewProjects(t *Transport) *Projects {
	return &Projects{t: t}
}

// List возвращает проекты, видимые текущему аккаунту.
func (c *Projects) List(ctx context.Context, name *string) ([]domain.Project, error) {
	params := url.Values{}
	if name != nil {
		params.Set("project-name", *name)
	}

	var projects []domain.Project
	err := c.t.get(ctx, apierr.FamilyProject, "/v2/projects", params, &projects)
	return projects, err
}

// GetDefault возвращает проект по умолчанию.
func (c *Projects) GetDefault(ctx context.Context) (*domain.Project, error) {
	var project domain.Project
	if err := c.t.get(ctx, apierr.FamilyProject, "/v2/projects/default", nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Add создаёт проект.
func (c *Projects) Add(ctx context.Context, data domain.ProjectDataRequest) (*domain.Project, error) {
	var project domain.Project
	if err := c.t.post(ctx, apierr.FamilyProject, "/v2/projects", data, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete удаляет проект.
func (c *Projects) Delete(ctx context.Context, id domain.ProjectID) error {
	return c.t.delete(ctx, apierr.FamilyProject, "/v2/projects/"+id.String(), nil, nil)
}

// --- Policies ---

// Policies — HTTP-реализация PolicyClient.
type Policies struct {
	t *Transport
}

// NewPolicies создаёт клиент политик.
func NewPolicies(t *Transport) *Policies {
	return &Policies{t: t}
}

// Add создаёт политику из набора действий.
func (c *Policies) Add(ctx context.Context, name string, actions []domain.ProjectAction) (*domain.ProjectPolicy, error) {
	body := domain.ProjectPolicyData{
		Name:           name,
		ProjectActions: domain.ProjectActions{Actions: actions},
	}

	var policy domain.ProjectPolicy
	if err := c.t.post(ctx, apierr.FamilyPolicy, "/v2/project-policies", body, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// Get возвращает политику.
func (c *Policies) Get(ctx context.Context, id domain.ProjectPolicyID) (*domain.ProjectPolicy, error) {
	var policy domain.ProjectPolicy
	if err := c.t.get(ctx, apierr.FamilyPolicy, "/v2/project-policies/"+id.String(), nil, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// --- Project grants ---

// ProjectGrants — HTTP-реализация ProjectGrantClient.
type ProjectGrants struct {
	t *Transport
}

// NewProjectGrants создаёт клиент выдачи доступа.
func NewProjectGrants(t *Transport) *ProjectGrants {
	return &ProjectGrants{t: t}
}

// Add выдаёт доступ к проекту.
func (c *ProjectGrants) Add(ctx context.Context, project domain.ProjectID, data domain.ProjectGrantDataRequest) (*domain.ProjectGrant, error) {
	var grant domain.ProjectGrant
	if err := c.t.post(ctx, apierr.FamilyProjectGrant, "/v2/projects/"+project.String()+"/grants", data, &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}
