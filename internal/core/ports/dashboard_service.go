package ports

import (
	"context"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

// ViewState is the terminal state of a dashboard load.
type ViewState string

const (
	AdminView       ViewState = "ADMIN_VIEW"
	ClientView      ViewState = "CLIENT_VIEW"
	ClientViewEmpty ViewState = "CLIENT_VIEW_EMPTY"
)

// AdminDashboard is the admin-facing aggregate: every project, newest first.
type AdminDashboard struct {
	Projects []domain.Project
}

// ClientDashboard is the client-facing aggregate: the single owned project
// plus its stages and payments. All fields are nil/empty for the empty view.
type ClientDashboard struct {
	Project  *domain.Project
	Stages   []domain.ConstructionStage
	Payments []domain.Payment
}

// DashboardView is the tagged result of a load: exactly one of Admin or
// Client is populated, matching State. Consumers render from the narrowed
// shape and never re-check the role flag.
type DashboardView struct {
	State  ViewState
	Admin  *AdminDashboard
	Client *ClientDashboard
}

// CreateProjectInput carries the admin create-project form. All fields are
// required; ClientID must reference an existing CLIENT profile.
type CreateProjectInput struct {
	Name      string
	Location  string
	ClientID  string
	Status    domain.ProjectStatus
	StartDate string
}

// DashboardService materializes the role-scoped dashboard aggregate and owns
// the admin create-project pathway.
type DashboardService interface {
	// Load fetches exactly the data identity's role requires. Re-invocable;
	// each call fully replaces prior results.
	Load(ctx context.Context, identity *domain.Identity) (*DashboardView, error)
	CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	// ListClients returns all CLIENT profiles, feeding the create form.
	ListClients(ctx context.Context) ([]domain.Profile, error)
}
