package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Ошибки построения ссылок из флагов.
var (
	// ErrConflictingProjectRef — заданы одновременно --project-id и --project-name.
	ErrConflictingProjectRef = errors.New("project id and project name are mutually exclusive")

	// ErrConflictingComponentRef — заданы одновременно id и имя компонента,
	// либо id компонента вместе с флагами проекта.
	ErrConflictingComponentRef = errors.New("component id conflicts with component name and project flags")

	// ErrMissingComponentRef — не задан ни id, ни имя компонента.
	ErrMissingComponentRef = errors.New("either component id or component name is required")
)

// RefKind — активный вариант ссылки.
type RefKind int

const (
	// RefDefault — использовать проект по умолчанию.
	RefDefault RefKind = iota

	// RefID — явный идентификатор.
	RefID

	// RefName — явное имя, требует поиска на сервере.
	RefName
)

// ProjectRef — ссылка на проект: по id, по имени или "по умолчанию".
//
// В каждый момент активен ровно один вариант. Нулевое значение — DefaultProjectRef.
// Создаётся только через конструкторы ниже, поэтому состояние
// "задан и id, и имя" недостижимо.
type ProjectRef struct {
	kind RefKind
	id   ProjectID
	name string
}

// ProjectRefByID создаёт ссылку на проект по id.
func ProjectRefByID(id ProjectID) ProjectRef {
	return ProjectRef{kind: RefID, id: id}
}

// ProjectRefByName создаёт ссылку на проект по имени.
func ProjectRefByName(name string) ProjectRef {
	return ProjectRef{kind: RefName, name: name}
}

// DefaultProjectRef создаёт ссылку на проект по умолчанию.
func DefaultProjectRef() ProjectRef {
	return ProjectRef{kind: RefDefault}
}

// Kind возвращает активный вариант.
func (r ProjectRef) Kind() RefKind {
	return r.kind
}

// ID возвращает id и true, если ссылка задана по id.
func (r ProjectRef) ID() (ProjectID, bool) {
	return r.id, r.kind == RefID
}

// Name возвращает имя и true, если ссылка задана по имени.
func (r ProjectRef) Name() (string, bool) {
	return r.name, r.kind == RefName
}

// String возвращает человекочитаемое описание ссылки.
func (r ProjectRef) String() string {
	switch r.kind {
	case RefID:
		return "id:" + r.id.String()
	case RefName:
		return "name:" + r.name
	default:
		return "default"
	}
}

// ProjectRefArgs — представление ProjectRef во флагах командной строки.
type ProjectRefArgs struct {
	ProjectID   *uuid.UUID
	ProjectName string
}

// ProjectRefFromArgs строит ProjectRef из флагов.
//
// Пустые флаги дают DefaultProjectRef. Оба флага сразу — ErrConflictingProjectRef;
// cobra отсекает эту комбинацию раньше, здесь она проверяется для прочих вызывающих.
func ProjectRefFromArgs(a ProjectRefArgs) (ProjectRef, error) {
	switch {
	case a.ProjectID != nil && a.ProjectName != "":
		return ProjectRef{}, ErrConflictingProjectRef
	case a.ProjectID != nil:
		return ProjectRefByID(ProjectID{*a.ProjectID}), nil
	case a.ProjectName != "":
		return ProjectRefByName(a.ProjectName), nil
	default:
		return DefaultProjectRef(), nil
	}
}

// Args возвращает представление ссылки во флагах.
func (r ProjectRef) Args() ProjectRefArgs {
	switch r.kind {
	case RefID:
		id := r.id.UUID
		return ProjectRefArgs{ProjectID: &id}
	case RefName:
		return ProjectRefArgs{ProjectName: r.name}
	default:
		return ProjectRefArgs{}
	}
}

// ComponentIDOrName — ссылка на компонент: по id или по имени внутри проекта.
type ComponentIDOrName struct {
	byName  bool
	id      ComponentID
	name    ComponentName
	project ProjectRef
}

// ComponentRefByID создаёт ссылку на компонент по id.
func ComponentRefByID(id ComponentID) ComponentIDOrName {
	return ComponentIDOrName{id: id}
}

// ComponentRefByName создаёт ссылку на компонент по имени.
// Проект-владелец сам задаётся ссылкой и разрешается отдельно.
func ComponentRefByName(name ComponentName, project ProjectRef) ComponentIDOrName {
	return ComponentIDOrName{byName: true, name: name, project: project}
}

// ID возвращает id и true, если ссылка задана по id.
func (r ComponentIDOrName) ID() (ComponentID, bool) {
	return r.id, !r.byName
}

// Name возвращает имя, ссылку на проект и true, если ссылка задана по имени.
func (r ComponentIDOrName) Name() (ComponentName, ProjectRef, bool) {
	return r.name, r.project, r.byName
}

// String возвращает человекочитаемое описание ссылки.
func (r ComponentIDOrName) String() string {
	if r.byName {
		return "name:" + string(r.name) + " project:" + r.project.String()
	}
	return "id:" + r.id.String()
}

// ComponentArgs — представление ComponentIDOrName во флагах командной строки.
type ComponentArgs struct {
	ComponentID   *uuid.UUID
	ComponentName string
	ProjectID     *uuid.UUID
	ProjectName   string
}

// ComponentRefFromArgs строит ComponentIDOrName из флагов.
func ComponentRefFromArgs(a ComponentArgs) (ComponentIDOrName, error) {
	if a.ComponentID != nil {
		if a.ComponentName != "" || a.ProjectID != nil || a.ProjectName != "" {
			return ComponentIDOrName{}, ErrConflictingComponentRef
		}
		return ComponentRefByID(ComponentID{*a.ComponentID}), nil
	}
	if a.ComponentName == "" {
		return ComponentIDOrName{}, ErrMissingComponentRef
	}

	project, err := ProjectRefFromArgs(ProjectRefArgs{ProjectID: a.ProjectID, ProjectName: a.ProjectName})
	if err != nil {
		return ComponentIDOrName{}, err
	}
	return ComponentRefByName(ComponentName(a.ComponentName), project), nil
}

// Args возвращает представление ссылки во флагах.
func (r ComponentIDOrName) Args() ComponentArgs {
	if !r.byName {
		id := r.id.UUID
		return ComponentArgs{ComponentID: &id}
	}
	p := r.project.Args()
	return ComponentArgs{
		ComponentName: string(r.name),
		ProjectID:     p.ProjectID,
		ProjectName:   p.ProjectName,
	}
}
