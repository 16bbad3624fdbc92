// Package resolve разрешает ссылки на проекты и компоненты в идентификаторы.
//
// Resolver создаётся один раз на запуск команды. Он запоминает проект по
// умолчанию и найденные по имени проекты, поэтому повторное разрешение той же
// ссылки не обращается к серверу.
package resolve

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/domain"
)

// Resolver — разрешение ProjectRef и ComponentIDOrName.
type Resolver struct {
	projects   cloud.ProjectClient
	components cloud.ComponentClient
	logger     *slog.Logger

	defaultID *domain.ProjectID
	byName    map[string]domain.ProjectID
}

// New создаёт Resolver. components может быть nil, если команда не работает
// с компонентами.
func New(projects cloud.ProjectClient, components cloud.ComponentClient, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		projects:   projects,
		components: components,
		logger:     logger,
		byName:     make(map[string]domain.ProjectID),
	}
}

// ProjectID возвращает идентификатор проекта.
//
//   - по id: без обращения к серверу
//   - по имени: один поиск по точному имени; ноль совпадений — NotFound,
//     больше одного — ошибка неоднозначности
//   - по умолчанию: один запрос проекта по умолчанию
//
// Ошибка всегда *apierr.Error.
func (r *Resolver) ProjectID(ctx context.Context, ref domain.ProjectRef) (domain.ProjectID, error) {
	if id, ok := ref.ID(); ok {
		return id, nil
	}
	if name, ok := ref.Name(); ok {
		return r.projectByName(ctx, name)
	}
	return r.defaultProject(ctx)
}

func (r *Resolver) defaultProject(ctx context.Context) (domain.ProjectID, error) {
	if r.defaultID != nil {
		return *r.defaultID, nil
	}

	project, err := r.projects.GetDefault(ctx)
	if err != nil {
		return domain.ProjectID{}, apierr.Normalize(err)
	}

	id := project.ProjectID
	r.defaultID = &id
	r.logger.Debug("resolved default project", "project_id", id)
	return id, nil
}

func (r *Resolver) projectByName(ctx context.Context, name string) (domain.ProjectID, error) {
	if id, ok := r.byName[name]; ok {
		return id, nil
	}

	projects, err := r.projects.List(ctx, &name)
	if err != nil {
		return domain.ProjectID{}, apierr.Normalize(err)
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ProjectID.String())
	}
	switch len(projects) {
	case 0:
		return domain.ProjectID{}, apierr.Errorf("Not found: Can't find project with name %s", name)
	case 1:
	default:
		return domain.ProjectID{}, apierr.Errorf("Ambiguous project name %s: matches %s", name, strings.Join(ids, ", "))
	}

	id := projects[0].ProjectID
	r.byName[name] = id
	r.logger.Debug("resolved project by name", "name", name, "project_id", id)
	return id, nil
}

// ComponentID возвращает идентификатор компонента.
//
// Ссылка по имени сначала разрешает проект-владелец, затем ищет компонент
// по имени внутри проекта.
func (r *Resolver) ComponentID(ctx context.Context, ref domain.ComponentIDOrName) (domain.ComponentID, error) {
	if id, ok := ref.ID(); ok {
		return id, nil
	}

	name, projectRef, _ := ref.Name()
	projectID, err := r.ProjectID(ctx, projectRef)
	if err != nil {
		return domain.ComponentID{}, err
	}

	components, err := r.components.List(ctx, projectID, &name)
	if err != nil {
		return domain.ComponentID{}, apierr.Normalize(err)
	}

	// Каждая версия компонента приходит отдельной записью.
	var ids []domain.ComponentID
	seen := make(map[domain.ComponentID]bool)
	for _, c := range components {
		id := c.VersionedComponentID.ComponentID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	switch len(ids) {
	case 0:
		return domain.ComponentID{}, apierr.Errorf("Not found: Can't find component with name %s", name)
	case 1:
		r.logger.Debug("resolved component by name", "name", name, "project_id", projectID, "component_id", ids[0])
		return ids[0], nil
	default:
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = id.String()
		}
		return domain.ComponentID{}, apierr.Errorf("Ambiguous component name %s: matches %s", name, strings.Join(names, ", "))
	}
}
