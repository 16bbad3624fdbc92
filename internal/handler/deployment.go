package handler

import (
	"context"

	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/resolve"
)

// DeploymentCommand — команда группы deployment.
type DeploymentCommand interface {
	deploymentCommand()
}

// DeploymentGet — публикации определения API в проекте.
type DeploymentGet struct {
	Project      domain.ProjectRef
	DefinitionID string
}

// DeploymentAdd — публикация определения API на сайте.
type DeploymentAdd struct {
	Project      domain.ProjectRef
	DefinitionID string
	Host         string
	Subdomain    string
}

// DeploymentDelete — снятие публикации с сайта.
type DeploymentDelete struct {
	Project      domain.ProjectRef
	Site         string
	DefinitionID string
}

func (DeploymentGet) deploymentCommand()    {}
func (DeploymentAdd) deploymentCommand()    {}
func (DeploymentDelete) deploymentCommand() {}

// Deployments — обработчик группы deployment.
type Deployments struct {
	client   cloud.DeploymentClient
	resolver *resolve.Resolver
}

// NewDeployments создаёт обработчик публикаций.
func NewDeployments(client cloud.DeploymentClient, resolver *resolve.Resolver) *Deployments {
	return &Deployments{client: client, resolver: resolver}
}

// Handle выполняет команду.
func (h *Deployments) Handle(ctx context.Context, cmd DeploymentCommand) (Result, error) {
	switch c := cmd.(type) {
	case DeploymentGet:
		projectID, err := h.resolver.ProjectID(ctx, c.Project)
		if err != nil {
			return Result{}, err
		}
		res, err := h.client.Get(ctx, projectID, c.DefinitionID)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case DeploymentAdd:
		projectID, err := h.resolver.ProjectID(ctx, c.Project)
		if err != nil {
			return Result{}, err
		}
		deployment := domain.ApiDeployment{
			ProjectID:       projectID,
			ApiDefinitionID: c.DefinitionID,
			Site:            domain.ApiSite{Host: c.Host, Subdomain: c.Subdomain},
		}
		res, err := h.client.Update(ctx, deployment)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case DeploymentDelete:
		projectID, err := h.resolver.ProjectID(ctx, c.Project)
		if err != nil {
			return Result{}, err
		}
		res, err := h.client.Delete(ctx, projectID, c.DefinitionID, c.Site)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}
