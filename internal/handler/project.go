package handler

import (
	"context"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/resolve"
)

// ProjectCommand — команда группы project.
type ProjectCommand interface {
	projectCommand()
}

// ProjectList — проекты аккаунта; Name фильтрует по точному имени.
type ProjectList struct {
	Name *string
}

// ProjectAdd — создание проекта, владелец — текущий аккаунт.
type ProjectAdd struct {
	Name        string
	Description string
}

// ProjectDefault — проект по умолчанию.
type ProjectDefault struct{}

func (ProjectList) projectCommand()    {}
func (ProjectAdd) projectCommand()     {}
func (ProjectDefault) projectCommand() {}

// Projects — обработчик группы project.
type Projects struct {
	client  cloud.ProjectClient
	account domain.AccountID
}

// NewProjects создаёт обработчик проектов.
func NewProjects(client cloud.ProjectClient, account domain.AccountID) *Projects {
	return &Projects{client: client, account: account}
}

// Handle выполняет команду.
func (h *Projects) Handle(ctx context.Context, cmd ProjectCommand) (Result, error) {
	switch c := cmd.(type) {
	case ProjectList:
		res, err := h.client.List(ctx, c.Name)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case ProjectAdd:
		res, err := h.client.Add(ctx, domain.ProjectDataRequest{
			Name:           c.Name,
			OwnerAccountID: h.account,
			Description:    c.Description,
		})
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case ProjectDefault:
		res, err := h.client.GetDefault(ctx)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}

// PolicyCommand — команда группы policy.
type PolicyCommand interface {
	policyCommand()
}

// PolicyAdd — создание политики доступа.
type PolicyAdd struct {
	Name    string
	Actions []domain.ProjectAction
}

// PolicyGet — политика по id.
type PolicyGet struct {
	PolicyID domain.ProjectPolicyID
}

func (PolicyAdd) policyCommand() {}
func (PolicyGet) policyCommand() {}

// Policies — обработчик группы policy.
type Policies struct {
	client cloud.PolicyClient
}

// NewPolicies создаёт обработчик политик.
func NewPolicies(client cloud.PolicyClient) *Policies {
	return &Policies{client: client}
}

// Handle выполняет команду.
func (h *Policies) Handle(ctx context.Context, cmd PolicyCommand) (Result, error) {
	switch c := cmd.(type) {
	case PolicyAdd:
		res, err := h.client.Add(ctx, c.Name, c.Actions)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case PolicyGet:
		res, err := h.client.Get(ctx, c.PolicyID)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}

// Share — выдача доступа к проекту другому аккаунту.
//
// Задаётся ровно одно из PolicyID и Actions.
type Share struct {
	Project   domain.ProjectRef
	Recipient domain.AccountID
	PolicyID  *domain.ProjectPolicyID
	Actions   []domain.ProjectAction
}

// Sharing — обработчик команды share.
type Sharing struct {
	client   cloud.ProjectGrantClient
	resolver *resolve.Resolver
}

// NewSharing создаёт обработчик share.
func NewSharing(client cloud.ProjectGrantClient, resolver *resolve.Resolver) *Sharing {
	return &Sharing{client: client, resolver: resolver}
}

// Handle выполняет команду.
func (h *Sharing) Handle(ctx context.Context, cmd Share) (Result, error) {
	switch {
	case cmd.PolicyID != nil && len(cmd.Actions) > 0:
		return Result{}, apierr.Errorf("Project policy id and project actions are mutually exclusive")
	case cmd.PolicyID == nil && len(cmd.Actions) == 0:
		return Result{}, apierr.Errorf("Either project policy id or project actions are required")
	}

	projectID, err := h.resolver.ProjectID(ctx, cmd.Project)
	if err != nil {
		return Result{}, err
	}

	actions := cmd.Actions
	if actions == nil {
		actions = []domain.ProjectAction{}
	}
	res, err := h.client.Add(ctx, projectID, domain.ProjectGrantDataRequest{
		GranteeAccountID: cmd.Recipient,
		ProjectPolicyID:  cmd.PolicyID,
		ProjectActions:   actions,
	})
	if err != nil {
		return Result{}, fail(err)
	}
	return Ok(res), nil
}
