package cloud

import (
	"context"
	"net/url"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/domain"
)

// Deployments — HTTP-реализация DeploymentClient (сервис gateway).
type Deployments struct {
	t *Transport
}

// NewDeployments создаёт клиент публикаций.
func NewDeployments(t *Transport) *Deployments {
	return &Deployments{t: t}
}

// Get возвращает публикации определения API в проекте.
func (c *Deployments) Get(ctx context.Context, project domain.ProjectID, definitionID string) ([]domain.ApiDeployment, error) {
	params := url.Values{}
	params.Set("project-id", project.String())
	params.Set("api-definition-id", definitionID)

	var deployments []domain.ApiDeployment
	err := c.t.get(ctx, apierr.FamilyDeployment, "/v1/api/deployments", params, &deployments)
	return deployments, err
}

// Update создаёт или заменяет публикацию.
func (c *Deployments) Update(ctx context.Context, deployment domain.ApiDeployment) (*domain.ApiDeployment, error) {
	var res domain.ApiDeployment
	if err := c.t.put(ctx, apierr.FamilyDeployment, "/v1/api/deployments", deployment, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete снимает публикацию с сайта. Сервер отвечает строкой-подтверждением.
func (c *Deployments) Delete(ctx context.Context, project domain.ProjectID, definitionID, site string) (string, error) {
	params := url.Values{}
	params.Set("project-id", project.String())
	params.Set("api-definition-id", definitionID)
	params.Set("site", site)

	var res string
	err := c.t.delete(ctx, apierr.FamilyDeployment, "/v1/api/deployments", params, &res)
	return res, err
}
