package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role — роль уровня платформы, выдаётся аккаунту через grants.
//
// Сериализуется строго по имени: "Admin", "ViewProject" и т.д.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleWhitelistAdmin Role = "WhitelistAdmin"
	RoleMarketingAdmin Role = "MarketingAdmin"
	RoleViewProject    Role = "ViewProject"
	RoleDeleteProject  Role = "DeleteProject"
	RoleCreateProject  Role = "CreateProject"
	RoleInstanceServer Role = "InstanceServer"
)

// AllRoles — все роли в порядке объявления.
var AllRoles = []Role{
	RoleAdmin,
	RoleWhitelistAdmin,
	RoleMarketingAdmin,
	RoleViewProject,
	RoleDeleteProject,
	RoleCreateProject,
	RoleInstanceServer,
}

// String возвращает имя роли.
func (r Role) String() string {
	return string(r)
}

// ParseRole парсит роль по точному имени (с учётом регистра).
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("Unknown role: %s. Expected one of %s", s, quoteAll(AllRoles))
}

// UnmarshalJSON отклоняет неизвестные имена ролей.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ProjectAction — действие в рамках проекта, из которых состоят политики.
type ProjectAction string

const (
	ActionViewComponent       ProjectAction = "ViewComponent"
	ActionCreateComponent     ProjectAction = "CreateComponent"
	ActionUpdateComponent     ProjectAction = "UpdateComponent"
	ActionDeleteComponent     ProjectAction = "DeleteComponent"
	ActionViewWorker          ProjectAction = "ViewWorker"
	ActionCreateWorker        ProjectAction = "CreateWorker"
	ActionUpdateWorker        ProjectAction = "UpdateWorker"
	ActionDeleteWorker        ProjectAction = "DeleteWorker"
	ActionViewProjectGrants   ProjectAction = "ViewProjectGrants"
	ActionCreateProjectGrants ProjectAction = "CreateProjectGrants"
	ActionDeleteProjectGrants ProjectAction = "DeleteProjectGrants"
)

// AllProjectActions — все действия в порядке объявления.
var AllProjectActions = []ProjectAction{
	ActionViewComponent,
	ActionCreateComponent,
	ActionUpdateComponent,
	ActionDeleteComponent,
	ActionViewWorker,
	ActionCreateWorker,
	ActionUpdateWorker,
	ActionDeleteWorker,
	ActionViewProjectGrants,
	ActionCreateProjectGrants,
	ActionDeleteProjectGrants,
}

// String возвращает имя действия.
func (a ProjectAction) String() string {
	return string(a)
}

// ParseProjectAction парсит действие по точному имени.
func ParseProjectAction(s string) (ProjectAction, error) {
	for _, a := range AllProjectActions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("Unknown action: %s. Expected one of %s", s, quoteAll(AllProjectActions))
}

// ParseProjectActions парсит список действий; первая ошибка прерывает разбор.
func ParseProjectActions(ss []string) ([]ProjectAction, error) {
	actions := make([]ProjectAction, 0, len(ss))
	for _, s := range ss {
		a, err := ParseProjectAction(s)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// UnmarshalJSON отклоняет неизвестные имена действий.
func (a *ProjectAction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseProjectAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func quoteAll[T ~string](values []T) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + string(v) + `"`
	}
	return strings.Join(quoted, ", ")
}
