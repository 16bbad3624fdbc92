package cloud

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/domain"
)

// --- Components ---

// Components — HTTP-реализация ComponentClient.
type Components struct {
	t *Transport
}

// NewComponents создаёт клиент компонентов.
func NewComponents(t *Transport) *Components {
	return &Components{t: t}
}

// Add загружает новый компонент в проект.
func (c *Components) Add(ctx context.Context, project domain.ProjectID, name domain.ComponentName, content io.Reader) (*domain.Component, error) {
	params := url.Values{}
	params.Set("project-id", project.String())
	params.Set("component-name", name.String())

	var component domain.Component
	err := c.t.do(ctx, request{
		family: apierr.FamilyComponent,
		method: http.MethodPost,
		path:   "/v2/components",
		query:  params,
		raw:    content,
	}, &component)
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// Update загружает новую версию компонента.
func (c *Components) Update(ctx context.Context, id domain.ComponentID, content io.Reader) (*domain.Component, error) {
	var component domain.Component
	err := c.t.do(ctx, request{
		family: apierr.FamilyComponent,
		method: http.MethodPut,
		path:   "/v2/components/" + id.String() + "/upload",
		raw:    content,
	}, &component)
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// List возвращает компоненты проекта.
func (c *Components) List(ctx context.Context, project domain.ProjectID, name *domain.ComponentName) ([]domain.Component, error) {
	params := url.Values{}
	params.Set("project-id", project.String())
	if name != nil {
		params.Set("component-name", name.String())
	}

	var components []domain.Component
	err := c.t.get(ctx, apierr.FamilyComponent, "/v2/components", params, &components)
	return components, err
}

// GetLatest возвращает последнюю версию компонента.
func (c *Components) GetLatest(ctx context.Context, id domain.ComponentID) (*domain.Component, error) {
	var component domain.Component
	if err := c.t.get(ctx, apierr.FamilyComponent, "/v2/components/"+id.String()+"/latest", nil, &component); err != nil {
		return nil, err
	}
	return &component, nil
}

// GetVersion возвращает конкретную версию компонента.
func (c *Components) GetVersion(ctx context.Context, id domain.ComponentID, version uint64) (*domain.Component, error) {
	var component domain.Component
	path := "/v2/components/" + id.String() + "/versions/" + strconv.FormatUint(version, 10)
	if err := c.t.get(ctx, apierr.FamilyComponent, path, nil, &component); err != nil {
		return nil, err
	}
	return &component, nil
}

// --- Workers ---

// Workers — HTTP-реализация WorkerClient.
type Workers struct {
	t *Transport
}

// NewWorkers создаёт клиент воркеров.
func NewWorkers(t *Transport) *Workers {
	return &Workers{t: t}
}

func workersPath(component domain.ComponentID) string {
	return "/v2/components/" + component.String() + "/workers"
}

// Add запускает воркер.
func (c *Workers) Add(ctx context.Context, component domain.ComponentID, req domain.WorkerCreationRequest) (*domain.WorkerCreation, error) {
	var created domain.WorkerCreation
	if err := c.t.post(ctx, apierr.FamilyWorker, workersPath(component), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetMetadata возвращает состояние воркера.
func (c *Workers) GetMetadata(ctx context.Context, component domain.ComponentID, name string) (*domain.WorkerMetadata, error) {
	var meta domain.WorkerMetadata
	if err := c.t.get(ctx, apierr.FamilyWorker, workersPath(component)+"/"+segment(name), nil, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Delete удаляет воркер.
func (c *Workers) Delete(ctx context.Context, component domain.ComponentID, name string) error {
	return c.t.delete(ctx, apierr.FamilyWorker, workersPath(component)+"/"+segment(name), nil, nil)
}

// Interrupt прерывает выполнение воркера.
func (c *Workers) Interrupt(ctx context.Context, component domain.ComponentID, name string, recoverImmediately bool) error {
	params := url.Values{}
	params.Set("recovery-immediately", strconv.FormatBool(recoverImmediately))

	return c.t.do(ctx, request{
		family: apierr.FamilyWorker,
		method: http.MethodPost,
		path:   workersPath(component) + "/" + segment(name) + "/interrupt",
		query:  params,
	}, nil)
}
