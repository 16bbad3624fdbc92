package cli

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shaiso/cloudctl/internal/domain"
)

var (
	_ pflag.Value = (*uuidFlag)(nil)
	_ pflag.Value = (*roleFlag)(nil)
	_ pflag.Value = (*actionsFlag)(nil)
	_ pflag.Value = (*domain.Format)(nil)
)

// uuidFlag — необязательный UUID-флаг: nil, пока флаг не задан.
type uuidFlag struct {
	value **uuid.UUID
}

func (f *uuidFlag) Set(s string) error {
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*f.value = &id
	return nil
}

func (f *uuidFlag) String() string {
	if *f.value == nil {
		return ""
	}
	return (*f.value).String()
}

func (f *uuidFlag) Type() string {
	return "uuid"
}

// roleFlag разбирает роль на этапе флагов.
type roleFlag struct {
	value *domain.Role
}

func (f *roleFlag) Set(s string) error {
	role, err := domain.ParseRole(s)
	if err != nil {
		return err
	}
	*f.value = role
	return nil
}

func (f *roleFlag) String() string {
	return string(*f.value)
}

func (f *roleFlag) Type() string {
	return "role"
}

// actionsFlag — повторяемый список действий, допускаются значения через запятую.
type actionsFlag struct {
	value *[]domain.ProjectAction
}

func (f *actionsFlag) Set(s string) error {
	actions, err := domain.ParseProjectActions(strings.Split(s, ","))
	if err != nil {
		return err
	}
	*f.value = append(*f.value, actions...)
	return nil
}

func (f *actionsFlag) String() string {
	names := make([]string, len(*f.value))
	for i, a := range *f.value {
		names[i] = string(a)
	}
	return strings.Join(names, ",")
}

func (f *actionsFlag) Type() string {
	return "actions"
}

// projectFlags — флаги ссылки на проект. Без флагов — проект по умолчанию.
type projectFlags struct {
	id   *uuid.UUID
	name string
}

func (p *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(&uuidFlag{value: &p.id}, "project-id", "P", "Project ID")
	cmd.Flags().StringVarP(&p.name, "project-name", "p", "", "Project name")
	cmd.MarkFlagsMutuallyExclusive("project-id", "project-name")
}

func (p *projectFlags) ref() (domain.ProjectRef, error) {
	return domain.ProjectRefFromArgs(domain.ProjectRefArgs{ProjectID: p.id, ProjectName: p.name})
}

// componentFlags — флаги ссылки на компонент: id или имя внутри проекта.
type componentFlags struct {
	id      *uuid.UUID
	name    string
	project projectFlags
}

func (c *componentFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(&uuidFlag{value: &c.id}, "component-id", "C", "Component ID")
	cmd.Flags().StringVarP(&c.name, "component-name", "c", "", "Component name")
	c.project.register(cmd)

	cmd.MarkFlagsOneRequired("component-id", "component-name")
	cmd.MarkFlagsMutuallyExclusive("component-id", "component-name")
	cmd.MarkFlagsMutuallyExclusive("component-id", "project-id")
	cmd.MarkFlagsMutuallyExclusive("component-id", "project-name")
}

func (c *componentFlags) ref() (domain.ComponentIDOrName, error) {
	return domain.ComponentRefFromArgs(domain.ComponentArgs{
		ComponentID:   c.id,
		ComponentName: c.name,
		ProjectID:     c.project.id,
		ProjectName:   c.project.name,
	})
}
