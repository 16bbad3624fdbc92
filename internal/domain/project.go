package domain

import (
	"github.com/google/uuid"
)

// Project — проект и его данные.
type Project struct {
	ProjectID   ProjectID   `json:"project_id"`
	ProjectData ProjectData `json:"project_data"`
}

// ProjectData — данные проекта.
type ProjectData struct {
	Name                 string    `json:"name"`
	OwnerAccountID       AccountID `json:"owner_account_id"`
	Description          string    `json:"description"`
	DefaultEnvironmentID string    `json:"default_environment_id,omitempty"`
	ProjectType          string    `json:"project_type,omitempty"`
}

// ProjectDataRequest — тело запроса на создание проекта.
type ProjectDataRequest struct {
	Name           string    `json:"name"`
	OwnerAccountID AccountID `json:"owner_account_id"`
	Description    string    `json:"description"`
}

// ProjectActions — набор действий политики.
type ProjectActions struct {
	Actions []ProjectAction `json:"actions"`
}

// ProjectPolicy — именованная политика доступа к проекту.
type ProjectPolicy struct {
	ID             ProjectPolicyID `json:"id"`
	Name           string          `json:"name"`
	ProjectActions ProjectActions  `json:"project_actions"`
}

// ProjectPolicyData — тело запроса на создание политики.
type ProjectPolicyData struct {
	Name           string         `json:"name"`
	ProjectActions ProjectActions `json:"project_actions"`
}

// ProjectGrant — выданный другому аккаунту доступ к проекту.
type ProjectGrant struct {
	ID   uuid.UUID        `json:"id"`
	Data ProjectGrantData `json:"data"`
}

// ProjectGrantData — содержимое ProjectGrant.
type ProjectGrantData struct {
	GranteeAccountID AccountID       `json:"grantee_account_id"`
	GrantorProjectID ProjectID       `json:"grantor_project_id"`
	ProjectPolicyID  ProjectPolicyID `json:"project_policy_id"`
}

// ProjectGrantDataRequest — тело запроса на выдачу доступа.
//
// Задаётся либо ProjectPolicyID, либо ProjectActions: сервер создаёт
// анонимную политику из переданных действий.
type ProjectGrantDataRequest struct {
	GranteeAccountID  AccountID        `json:"grantee_account_id"`
	ProjectPolicyID   *ProjectPolicyID `json:"project_policy_id,omitempty"`
	ProjectActions    []ProjectAction  `json:"project_actions"`
	ProjectPolicyName string           `json:"project_policy_name,omitempty"`
}
