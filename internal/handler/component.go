package handler

import (
	"context"
	"io"

	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/resolve"
)

// ComponentCommand — команда группы component.
type ComponentCommand interface {
	componentCommand()
}

// ComponentAdd — загрузка нового компонента в проект.
type ComponentAdd struct {
	Project domain.ProjectRef
	Name    domain.ComponentName
	Content io.Reader
}

// ComponentUpdate — загрузка новой версии компонента.
type ComponentUpdate struct {
	Component domain.ComponentIDOrName
	Content   io.Reader
}

// ComponentList — компоненты проекта; Name фильтрует по имени.
type ComponentList struct {
	Project domain.ProjectRef
	Name    *domain.ComponentName
}

// ComponentGet — компонент; без Version возвращается последняя версия.
type ComponentGet struct {
	Component domain.ComponentIDOrName
	Version   *uint64
}

func (ComponentAdd) componentCommand()    {}
func (ComponentUpdate) componentCommand() {}
func (ComponentList) componentCommand()   {}
func (ComponentGet) componentCommand()    {}

// Components — обработчик группы component.
type Components struct {
	client   cloud.ComponentClient
	resolver *resolve.Resolver
}

// NewComponents создаёт обработчик компонентов.
func NewComponents(client cloud.ComponentClient, resolver *resolve.Resolver) *Components {
	return &Components{client: client, resolver: resolver}
}

// Handle выполняет команду.
func (h *Components) Handle(ctx context.Context, cmd ComponentCommand) (Result, error) {
	switch c := cmd.(type) {
	case ComponentAdd:
		projectID, err := h.resolver.ProjectID(ctx, c.Project)
		if err != nil {
			return Result{}, err
		}
		res, err := h.client.Add(ctx, projectID, c.Name, c.Content)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case ComponentUpdate:
		id, err := h.resolver.ComponentID(ctx, c.Component)
		if err != nil {
			return Result{}, err
		}
		res, err := h.client.Update(ctx, id, c.Content)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case ComponentList:
		projectID, err := h.resolver.ProjectID(ctx, c.Project)
		if err != nil {
			return Result{}, err
		}
		res, err := h.client.List(ctx, projectID, c.Name)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case ComponentGet:
		id, err := h.resolver.ComponentID(ctx, c.Component)
		if err != nil {
			return Result{}, err
		}
		var res *domain.Component
		if c.Version != nil {
			res, err = h.client.GetVersion(ctx, id, *c.Version)
		} else {
			res, err = h.client.GetLatest(ctx, id)
		}
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}

// WorkerCommand — команда группы worker.
type WorkerCommand interface {
	workerCommand()
}

// WorkerAdd — запуск воркера компонента.
type WorkerAdd struct {
	Component domain.ComponentIDOrName
	Name      string
	Args      []string
	Env       map[string]string
}

// WorkerGet — состояние воркера.
type WorkerGet struct {
	Component domain.ComponentIDOrName
	Name      string
}

// WorkerDelete — удаление воркера.
type WorkerDelete struct {
	Component domain.ComponentIDOrName
	Name      string
}

// WorkerInterrupt — прерывание воркера. RecoverImmediately перезапускает
// его сразу после прерывания.
type WorkerInterrupt struct {
	Component          domain.ComponentIDOrName
	Name               string
	RecoverImmediately bool
}

func (WorkerAdd) workerCommand()       {}
func (WorkerGet) workerCommand()       {}
func (WorkerDelete) workerCommand()    {}
func (WorkerInterrupt) workerCommand() {}

// Workers — обработчик группы worker.
type Workers struct {
	client   cloud.WorkerClient
	resolver *resolve.Resolver
}

// NewWorkers создаёт обработчик воркеров.
func NewWorkers(client cloud.WorkerClient, resolver *resolve.Resolver) *Workers {
	return &Workers{client: client, resolver: resolver}
}

// Handle выполняет команду.
func (h *Workers) Handle(ctx context.Context, cmd WorkerCommand) (Result, error) {
	switch c := cmd.(type) {
	case WorkerAdd:
		id, err := h.resolver.ComponentID(ctx, c.Component)
		if err != nil {
			return Result{}, err
		}
		args, env := c.Args, c.Env
		if args == nil {
			args = []string{}
		}
		if env == nil {
			env = map[string]string{}
		}
		res, err := h.client.Add(ctx, id, domain.WorkerCreationRequest{Name: c.Name, Args: args, Env: env})
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case WorkerGet:
		id, err := h.resolver.ComponentID(ctx, c.Component)
		if err != nil {
			return Result{}, err
		}
		res, err := h.client.GetMetadata(ctx, id, c.Name)
		if err != nil {
			return Result{}, fail(err)
		}
		return Ok(res), nil

	case WorkerDelete:
		id, err := h.resolver.ComponentID(ctx, c.Component)
		if err != nil {
			return Result{}, err
		}
		if err := h.client.Delete(ctx, id, c.Name); err != nil {
			return Result{}, fail(err)
		}
		return Str("Deleted"), nil

	case WorkerInterrupt:
		id, err := h.resolver.ComponentID(ctx, c.Component)
		if err != nil {
			return Result{}, err
		}
		if err := h.client.Interrupt(ctx, id, c.Name, c.RecoverImmediately); err != nil {
			return Result{}, fail(err)
		}
		return Str("Interrupted"), nil

	default:
		return Result{}, unknownCommand(cmd)
	}
}
