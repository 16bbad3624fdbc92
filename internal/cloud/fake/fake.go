// Package fake — in-memory реализации клиентов cloud для тестов.
//
// Каждая реализация хранит данные в памяти, считает вызовы и позволяет
// подставить ошибку (поле Err), которая вернётся из любого метода.
package fake

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/cloudctl/internal/apierr"
	"github.com/shaiso/cloudctl/internal/cloud"
	"github.com/shaiso/cloudctl/internal/domain"
)

var (
	_ cloud.AccountClient      = (*Accounts)(nil)
	_ cloud.TokenClient        = (*Tokens)(nil)
	_ cloud.ProjectClient      = (*Projects)(nil)
	_ cloud.GrantClient        = (*Grants)(nil)
	_ cloud.PolicyClient       = (*Policies)(nil)
	_ cloud.ProjectGrantClient = (*ProjectGrants)(nil)
	_ cloud.ComponentClient    = (*Components)(nil)
	_ cloud.WorkerClient       = (*Workers)(nil)
	_ cloud.DeploymentClient   = (*Deployments)(nil)
	_ cloud.LoginClient        = (*Login)(nil)
)

// NotFound возвращает ошибку 404 семейства.
func NotFound(f apierr.Family, message string) *apierr.BackendError {
	return &apierr.BackendError{Family: f, Kind: apierr.KindNotFound, Status: 404, Message: message}
}

// BadRequest возвращает ошибку 400 семейства.
func BadRequest(f apierr.Family, errs ...string) *apierr.BackendError {
	return &apierr.BackendError{Family: f, Kind: apierr.KindBadRequest, Status: 400, Errors: errs}
}

// --- Projects ---

// Projects — fake ProjectClient.
type Projects struct {
	Items     []domain.Project
	DefaultID *domain.ProjectID
	Err       error

	ListCalls       int
	GetDefaultCalls int
	AddCalls        int
	DeleteCalls     int
}

// AddProject добавляет проект в хранилище и возвращает его id.
func (p *Projects) AddProject(name string) domain.ProjectID {
	id := domain.ProjectID{UUID: uuid.New()}
	p.Items = append(p.Items, domain.Project{ProjectID: id, ProjectData: domain.ProjectData{Name: name}})
	return id
}

func (p *Projects) List(_ context.Context, name *string) ([]domain.Project, error) {
	p.ListCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	var res []domain.Project
	for _, pr := range p.Items {
		if name == nil || pr.ProjectData.Name == *name {
			res = append(res, pr)
		}
	}
	return res, nil
}

func (p *Projects) GetDefault(_ context.Context) (*domain.Project, error) {
	p.GetDefaultCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	if p.DefaultID == nil {
		return nil, NotFound(apierr.FamilyProject, "default project")
	}
	for _, pr := range p.Items {
		if pr.ProjectID == *p.DefaultID {
			res := pr
			return &res, nil
		}
	}
	return &domain.Project{ProjectID: *p.DefaultID}, nil
}

func (p *Projects) Add(_ context.Context, data domain.ProjectDataRequest) (*domain.Project, error) {
	p.AddCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	pr := domain.Project{
		ProjectID: domain.ProjectID{UUID: uuid.New()},
		ProjectData: domain.ProjectData{
			Name:           data.Name,
			OwnerAccountID: data.OwnerAccountID,
			Description:    data.Description,
		},
	}
	p.Items = append(p.Items, pr)
	return &pr, nil
}

func (p *Projects) Delete(_ context.Context, id domain.ProjectID) error {
	p.DeleteCalls++
	if p.Err != nil {
		return p.Err
	}
	for i, pr := range p.Items {
		if pr.ProjectID == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return nil
		}
	}
	return NotFound(apierr.FamilyProject, id.String())
}

// --- Deployments ---

// Deployments — fake DeploymentClient.
type Deployments struct {
	Items []domain.ApiDeployment
	Err   error

	GetCalls    int
	UpdateCalls int
	DeleteCalls int

	LastUpdate *domain.ApiDeployment
}

func (d *Deployments) Get(_ context.Context, project domain.ProjectID, definitionID string) ([]domain.ApiDeployment, error) {
	d.GetCalls++
	if d.Err != nil {
		return nil, d.Err
	}
	var res []domain.ApiDeployment
	for _, dep := range d.Items {
		if dep.ProjectID == project && dep.ApiDefinitionID == definitionID {
			res = append(res, dep)
		}
	}
	return res, nil
}

func (d *Deployments) Update(_ context.Context, deployment domain.ApiDeployment) (*domain.ApiDeployment, error) {
	d.UpdateCalls++
	d.LastUpdate = &deployment
	if d.Err != nil {
		return nil, d.Err
	}
	d.Items = append(d.Items, deployment)
	return &deployment, nil
}

func (d *Deployments) Delete(_ context.Context, project domain.ProjectID, definitionID, site string) (string, error) {
	d.DeleteCalls++
	if d.Err != nil {
		return "", d.Err
	}
	for i, dep := range d.Items {
		if dep.ProjectID == project && dep.ApiDefinitionID == definitionID && siteName(dep.Site) == site {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return "API deployment deleted", nil
		}
	}
	return "", NotFound(apierr.FamilyDeployment, "deployment "+definitionID+" on "+site)
}

func siteName(s domain.ApiSite) string {
	if s.Subdomain == "" {
		return s.Host
	}
	return s.Subdomain + "." + s.Host
}

// --- Accounts ---

// Accounts — fake AccountClient.
type Accounts struct {
	Items map[domain.AccountID]domain.Account
	Err   error

	GetCalls    int
	UpdateCalls int
	AddCalls    int
	DeleteCalls int
}

func (a *Accounts) Get(_ context.Context, id domain.AccountID) (*domain.Account, error) {
	a.GetCalls++
	if a.Err != nil {
		return nil, a.Err
	}
	acc, ok := a.Items[id]
	if !ok {
		return nil, NotFound(apierr.FamilyAccount, id.String())
	}
	return &acc, nil
}

func (a *Accounts) Update(_ context.Context, id domain.AccountID, data domain.AccountData) (*domain.Account, error) {
	a.UpdateCalls++
	if a.Err != nil {
		return nil, a.Err
	}
	if _, ok := a.Items[id]; !ok {
		return nil, NotFound(apierr.FamilyAccount, id.String())
	}
	acc := domain.Account{ID: id, Name: data.Name, Email: data.Email}
	a.Items[id] = acc
	return &acc, nil
}

func (a *Accounts) Add(_ context.Context, data domain.AccountData) (*domain.Account, error) {
	a.AddCalls++
	if a.Err != nil {
		return nil, a.Err
	}
	if a.Items == nil {
		a.Items = map[domain.AccountID]domain.Account{}
	}
	acc := domain.Account{ID: domain.AccountID(uuid.NewString()), Name: data.Name, Email: data.Email}
	a.Items[acc.ID] = acc
	return &acc, nil
}

func (a *Accounts) Delete(_ context.Context, id domain.AccountID) error {
	a.DeleteCalls++
	if a.Err != nil {
		return a.Err
	}
	if _, ok := a.Items[id]; !ok {
		return NotFound(apierr.FamilyAccount, id.String())
	}
	delete(a.Items, id)
	return nil
}

// --- Tokens ---

// Tokens — fake TokenClient.
type Tokens struct {
	Items []domain.Token
	Err   error

	AddCalls    int
	DeleteCalls int
}

func (t *Tokens) List(_ context.Context, account domain.AccountID) ([]domain.Token, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	var res []domain.Token
	for _, tok := range t.Items {
		if tok.AccountID == account {
			res = append(res, tok)
		}
	}
	return res, nil
}

func (t *Tokens) Get(_ context.Context, account domain.AccountID, id domain.TokenID) (*domain.Token, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	for _, tok := range t.Items {
		if tok.AccountID == account && tok.ID == id {
			res := tok
			return &res, nil
		}
	}
	return nil, NotFound(apierr.FamilyToken, id.String())
}

func (t *Tokens) Add(_ context.Context, account domain.AccountID, expiresAt time.Time) (*domain.UnsafeToken, error) {
	t.AddCalls++
	if t.Err != nil {
		return nil, t.Err
	}
	tok := domain.Token{
		ID:        domain.TokenID{UUID: uuid.New()},
		AccountID: account,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
	t.Items = append(t.Items, tok)
	return &domain.UnsafeToken{Data: tok, Secret: domain.TokenSecret{Value: uuid.NewString()}}, nil
}

func (t *Tokens) Delete(_ context.Context, account domain.AccountID, id domain.TokenID) error {
	t.DeleteCalls++
	if t.Err != nil {
		return t.Err
	}
	for i, tok := range t.Items {
		if tok.AccountID == account && tok.ID == id {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			return nil
		}
	}
	return NotFound(apierr.FamilyToken, id.String())
}

// --- Grants ---

// Grants — fake GrantClient.
type Grants struct {
	Items map[domain.AccountID][]domain.Role
	Err   error
}

func (g *Grants) List(_ context.Context, account domain.AccountID) ([]domain.Role, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Items[account], nil
}

func (g *Grants) Get(_ context.Context, account domain.AccountID, role domain.Role) (domain.Role, error) {
	if g.Err != nil {
		return "", g.Err
	}
	for _, r := range g.Items[account] {
		if r == role {
			return r, nil
		}
	}
	return "", NotFound(apierr.FamilyGrant, role.String())
}

func (g *Grants) Add(_ context.Context, account domain.AccountID, role domain.Role) (domain.Role, error) {
	if g.Err != nil {
		return "", g.Err
	}
	if g.Items == nil {
		g.Items = map[domain.AccountID][]domain.Role{}
	}
	g.Items[account] = append(g.Items[account], role)
	return role, nil
}

func (g *Grants) Delete(_ context.Context, account domain.AccountID, role domain.Role) error {
	if g.Err != nil {
		return g.Err
	}
	roles := g.Items[account]
	for i, r := range roles {
		if r == role {
			g.Items[account] = append(roles[:i], roles[i+1:]...)
			return nil
		}
	}
	return NotFound(apierr.FamilyGrant, role.String())
}

// --- Policies ---

// Policies — fake PolicyClient.
type Policies struct {
	Items []domain.ProjectPolicy
	Err   error

	AddCalls int
}

func (p *Policies) Add(_ context.Context, name string, actions []domain.ProjectAction) (*domain.ProjectPolicy, error) {
	p.AddCalls++
	if p.Err != nil {
		return nil, p.Err
	}
	policy := domain.ProjectPolicy{
		ID:             domain.ProjectPolicyID{UUID: uuid.New()},
		Name:           name,
		ProjectActions: domain.ProjectActions{Actions: actions},
	}
	p.Items = append(p.Items, policy)
	return &policy, nil
}

func (p *Policies) Get(_ context.Context, id domain.ProjectPolicyID) (*domain.ProjectPolicy, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	for _, policy := range p.Items {
		if policy.ID == id {
			res := policy
			return &res, nil
		}
	}
	return nil, NotFound(apierr.FamilyPolicy, id.String())
}

// --- Project grants ---

// ProjectGrants — fake ProjectGrantClient.
type ProjectGrants struct {
	Err error

	AddCalls    int
	LastProject domain.ProjectID
	LastRequest domain.ProjectGrantDataRequest
}

func (g *ProjectGrants) Add(_ context.Context, project domain.ProjectID, data domain.ProjectGrantDataRequest) (*domain.ProjectGrant, error) {
	g.AddCalls++
	g.LastProject = project
	g.LastRequest = data
	if g.Err != nil {
		return nil, g.Err
	}
	grant := domain.ProjectGrant{
		ID: uuid.New(),
		Data: domain.ProjectGrantData{
			GranteeAccountID: data.GranteeAccountID,
			GrantorProjectID: project,
		},
	}
	if data.ProjectPolicyID != nil {
		grant.Data.ProjectPolicyID = *data.ProjectPolicyID
	} else {
		grant.Data.ProjectPolicyID = domain.ProjectPolicyID{UUID: uuid.New()}
	}
	return &grant, nil
}

// --- Components ---

// Components — fake ComponentClient.
type Components struct {
	Items []domain.Component
	Err   error

	ListCalls   int
	AddCalls    int
	UpdateCalls int
}

// AddComponent добавляет компонент в хранилище и возвращает его id.
func (c *Components) AddComponent(project domain.ProjectID, name domain.ComponentName) domain.ComponentID {
	id := domain.ComponentID{UUID: uuid.New()}
	c.Items = append(c.Items, domain.Component{
		VersionedComponentID: domain.VersionedComponentID{ComponentID: id},
		ComponentName:        name,
		ProjectID:            project,
	})
	return id
}

func (c *Components) Add(_ context.Context, project domain.ProjectID, name domain.ComponentName, content io.Reader) (*domain.Component, error) {
	c.AddCalls++
	if c.Err != nil {
		return nil, c.Err
	}
	size, err := io.Copy(io.Discard, content)
	if err != nil {
		return nil, apierr.RequestFailure(apierr.FamilyComponent, err)
	}
	comp := domain.Component{
		VersionedComponentID: domain.VersionedComponentID{ComponentID: domain.ComponentID{UUID: uuid.New()}},
		ComponentName:        name,
		ComponentSize:        uint64(size),
		ProjectID:            project,
	}
	c.Items = append(c.Items, comp)
	return &comp, nil
}

func (c *Components) Update(_ context.Context, id domain.ComponentID, content io.Reader) (*domain.Component, error) {
	c.UpdateCalls++
	if c.Err != nil {
		return nil, c.Err
	}
	latest, ok := c.latest(id)
	if !ok {
		return nil, NotFound(apierr.FamilyComponent, id.String())
	}
	size, err := io.Copy(io.Discard, content)
	if err != nil {
		return nil, apierr.RequestFailure(apierr.FamilyComponent, err)
	}
	next := latest
	next.VersionedComponentID.Version++
	next.ComponentSize = uint64(size)
	c.Items = append(c.Items, next)
	return &next, nil
}

func (c *Components) List(_ context.Context, project domain.ProjectID, name *domain.ComponentName) ([]domain.Component, error) {
	c.ListCalls++
	if c.Err != nil {
		return nil, c.Err
	}
	var res []domain.Component
	for _, comp := range c.Items {
		if comp.ProjectID != project {
			continue
		}
		if name != nil && comp.ComponentName != *name {
			continue
		}
		res = append(res, comp)
	}
	return res, nil
}

func (c *Components) GetLatest(_ context.Context, id domain.ComponentID) (*domain.Component, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	latest, ok := c.latest(id)
	if !ok {
		return nil, NotFound(apierr.FamilyComponent, id.String())
	}
	return &latest, nil
}

func (c *Components) GetVersion(_ context.Context, id domain.ComponentID, version uint64) (*domain.Component, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	for _, comp := range c.Items {
		if comp.VersionedComponentID.ComponentID == id && comp.VersionedComponentID.Version == version {
			res := comp
			return &res, nil
		}
	}
	return nil, NotFound(apierr.FamilyComponent, id.String())
}

func (c *Components) latest(id domain.ComponentID) (domain.Component, bool) {
	var (
		found domain.Component
		ok    bool
	)
	for _, comp := range c.Items {
		if comp.VersionedComponentID.ComponentID != id {
			continue
		}
		if !ok || comp.VersionedComponentID.Version > found.VersionedComponentID.Version {
			found, ok = comp, true
		}
	}
	return found, ok
}

// --- Workers ---

// Workers — fake WorkerClient.
type Workers struct {
	Items map[domain.WorkerID]domain.WorkerMetadata
	Err   error

	AddCalls       int
	InterruptCalls int
}

func (w *Workers) Add(_ context.Context, component domain.ComponentID, req domain.WorkerCreationRequest) (*domain.WorkerCreation, error) {
	w.AddCalls++
	if w.Err != nil {
		return nil, w.Err
	}
	id := domain.WorkerID{ComponentID: component, WorkerName: req.Name}
	if w.Items == nil {
		w.Items = map[domain.WorkerID]domain.WorkerMetadata{}
	}
	if _, exists := w.Items[id]; exists {
		return nil, &apierr.BackendError{Family: apierr.FamilyWorker, Kind: apierr.KindConflict, Status: 409, ResourceID: req.Name}
	}
	w.Items[id] = domain.WorkerMetadata{WorkerID: id, Args: req.Args, Env: req.Env, Status: "Idle"}
	return &domain.WorkerCreation{WorkerID: id}, nil
}

func (w *Workers) GetMetadata(_ context.Context, component domain.ComponentID, name string) (*domain.WorkerMetadata, error) {
	if w.Err != nil {
		return nil, w.Err
	}
	meta, ok := w.Items[domain.WorkerID{ComponentID: component, WorkerName: name}]
	if !ok {
		return nil, NotFound(apierr.FamilyWorker, name)
	}
	return &meta, nil
}

func (w *Workers) Delete(_ context.Context, component domain.ComponentID, name string) error {
	if w.Err != nil {
		return w.Err
	}
	id := domain.WorkerID{ComponentID: component, WorkerName: name}
	if _, ok := w.Items[id]; !ok {
		return NotFound(apierr.FamilyWorker, name)
	}
	delete(w.Items, id)
	return nil
}

func (w *Workers) Interrupt(_ context.Context, component domain.ComponentID, name string, recoverImmediately bool) error {
	w.InterruptCalls++
	if w.Err != nil {
		return w.Err
	}
	id := domain.WorkerID{ComponentID: component, WorkerName: name}
	meta, ok := w.Items[id]
	if !ok {
		return NotFound(apierr.FamilyWorker, name)
	}
	if recoverImmediately {
		meta.RetryCount++
		meta.Status = "Running"
	} else {
		meta.Status = "Interrupted"
	}
	w.Items[id] = meta
	return nil
}

// --- Login ---

// Login — fake LoginClient: секрет → токен.
type Login struct {
	Tokens map[string]domain.Token
	Err    error

	Calls int
}

func (l *Login) CurrentToken(_ context.Context, secret domain.TokenSecret) (*domain.Token, error) {
	l.Calls++
	if l.Err != nil {
		return nil, l.Err
	}
	tok, ok := l.Tokens[secret.Value]
	if !ok {
		return nil, &apierr.BackendError{Family: apierr.FamilyLogin, Kind: apierr.KindUnauthorized, Status: 401, Detail: "unknown token"}
	}
	return &tok, nil
}
