package cloud

import (
	"context"
	"io"
	"time"

	"github.com/shaiso/cloudctl/internal/domain"
)

// AccountClient — операции над аккаунтами.
type AccountClient interface {
	Get(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	Update(ctx context.Context, id domain.AccountID, data domain.AccountData) (*domain.Account, error)
	Add(ctx context.Context, data domain.AccountData) (*domain.Account, error)
	Delete(ctx context.Context, id domain.AccountID) error
}

// TokenClient — операции над токенами аккаунта.
type TokenClient interface {
	List(ctx context.Context, account domain.AccountID) ([]domain.Token, error)
	Get(ctx context.Context, account domain.AccountID, id domain.TokenID) (*domain.Token, error)
	Add(ctx context.Context, account domain.AccountID, expiresAt time.Time) (*domain.UnsafeToken, error)
	Delete(ctx context.Context, account domain.AccountID, id domain.TokenID) error
}

// ProjectClient — операции над проектами.
type ProjectClient interface {
	// List возвращает проекты; name != nil фильтрует по точному имени.
	List(ctx context.Context, name *string) ([]domain.Project, error)

	// GetDefault возвращает проект по умолчанию текущего аккаунта.
	GetDefault(ctx context.Context) (*domain.Project, error)

	Add(ctx context.Context, data domain.ProjectDataRequest) (*domain.Project, error)
	Delete(ctx context.Context, id domain.ProjectID) error
}

// GrantClient — операции над ролями аккаунта.
type GrantClient interface {
	List(ctx context.Context, account domain.AccountID) ([]domain.Role, error)
	Get(ctx context.Context, account domain.AccountID, role domain.Role) (domain.Role, error)
	Add(ctx context.Context, account domain.AccountID, role domain.Role) (domain.Role, error)
	Delete(ctx context.Context, account domain.AccountID, role domain.Role) error
}

// PolicyClient — операции над политиками проектов.
type PolicyClient interface {
	Add(ctx context.Context, name string, actions []domain.ProjectAction) (*domain.ProjectPolicy, error)
	Get(ctx context.Context, id domain.ProjectPolicyID) (*domain.ProjectPolicy, error)
}

// ProjectGrantClient — выдача доступа к проекту другим аккаунтам.
type ProjectGrantClient interface {
	Add(ctx context.Context, project domain.ProjectID, data domain.ProjectGrantDataRequest) (*domain.ProjectGrant, error)
}

// ComponentClient — операции над компонентами.
type ComponentClient interface {
	Add(ctx context.Context, project domain.ProjectID, name domain.ComponentName, content io.Reader) (*domain.Component, error)
	Update(ctx context.Context, id domain.ComponentID, content io.Reader) (*domain.Component, error)

	// List возвращает компоненты проекта; name != nil фильтрует по имени.
	List(ctx context.Context, project domain.ProjectID, name *domain.ComponentName) ([]domain.Component, error)

	GetLatest(ctx context.Context, id domain.ComponentID) (*domain.Component, error)
	GetVersion(ctx context.Context, id domain.ComponentID, version uint64) (*domain.Component, error)
}

// WorkerClient — операции над воркерами компонента.
type WorkerClient interface {
	Add(ctx context.Context, component domain.ComponentID, req domain.WorkerCreationRequest) (*domain.WorkerCreation, error)
	GetMetadata(ctx context.Context, component domain.ComponentID, name string) (*domain.WorkerMetadata, error)
	Delete(ctx context.Context, component domain.ComponentID, name string) error
	Interrupt(ctx context.Context, component domain.ComponentID, name string, recoverImmediately bool) error
}

// DeploymentClient — публикации API gateway.
type DeploymentClient interface {
	Get(ctx context.Context, project domain.ProjectID, definitionID string) ([]domain.ApiDeployment, error)
	Update(ctx context.Context, deployment domain.ApiDeployment) (*domain.ApiDeployment, error)
	Delete(ctx context.Context, project domain.ProjectID, definitionID, site string) (string, error)
}

// LoginClient — проверка секрета токена.
type LoginClient interface {
	// CurrentToken возвращает метаданные токена, которому принадлежит секрет.
	CurrentToken(ctx context.Context, secret domain.TokenSecret) (*domain.Token, error)
}

// Clients — набор клиентов всех семейств для одного запуска.
type Clients struct {
	Accounts      AccountClient
	Tokens        TokenClient
	Projects      ProjectClient
	Grants        GrantClient
	Policies      PolicyClient
	ProjectGrants ProjectGrantClient
	Components    ComponentClient
	Workers       WorkerClient
	Deployments   DeploymentClient
}

// NewClients создаёт HTTP-клиенты поверх транспортов cloud и gateway.
func NewClients(cloud, gateway *Transport) Clients {
	return Clients{
		Accounts:      NewAccounts(cloud),
		Tokens:        NewTokens(cloud),
		Projects:      NewProjects(cloud),
		Grants:        NewGrants(cloud),
		Policies:      NewPolicies(cloud),
		ProjectGrants: NewProjectGrants(cloud),
		Components:    NewComponents(cloud),
		Workers:       NewWorkers(cloud),
		Deployments:   NewDeployments(gateway),
	}
}
