package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// DashboardService assembles the role-scoped dashboard aggregate and owns
// the admin create-project pathway.
type DashboardService struct {
	projects ports.ProjectRepository
	stages   ports.StageRepository
	payments ports.PaymentRepository
	profiles ports.ProfileRepository
	log      zerolog.Logger
}

func NewDashboardService(
	projects ports.ProjectRepository,
	stages ports.StageRepository,
	payments ports.PaymentRepository,
	profiles ports.ProfileRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		projects: projects,
		stages:   stages,
		payments: payments,
		profiles: profiles,
		log:      log,
	}
}

// Load materializes exactly the data identity's role requires. Each call
// fully replaces prior results; the three client-side reads are independent
// and not transactionally consistent with each other.
func (s *DashboardService) Load(ctx context.Context, identity *domain.Identity) (*ports.DashboardView, error) {
	if identity == nil {
		return nil, domain.ErrForbidden
	}

	if identity.Role == domain.RoleAdmin {
		return s.loadAdmin(ctx)
	}
	return s.loadClient(ctx, identity.ID)
}

func (s *DashboardService) loadAdmin(ctx context.Context) (*ports.DashboardView, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list projects")
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	return &ports.DashboardView{
		State: ports.AdminView,
		Admin: &ports.AdminDashboard{Projects: projects},
	}, nil
}

func (s *DashboardService) loadClient(ctx context.Context, clientID string) (*ports.DashboardView, error) {
	project, err := s.projects.FindByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			// No owned project is a valid terminal state, not an error.
			return &ports.DashboardView{
				State:  ports.ClientViewEmpty,
				Client: &ports.ClientDashboard{},
			}, nil
		}
		s.log.Error().Err(err).Str("client_id", clientID).Msg("failed to fetch client project")
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	// Multiple ownership is a data-integrity condition; the repository
	// resolves it as most-recent-wins, we only surface it in the logs.
	if n, err := s.projects.CountByClientID(ctx, clientID); err == nil && n > 1 {
		s.log.Warn().Str("client_id", clientID).Int64("count", n).Msg("client owns multiple projects, newest wins")
	}

	stages, err := s.stages.ListByProject(ctx, project.ID)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", project.ID).Msg("failed to fetch stages")
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	payments, err := s.payments.ListByProject(ctx, project.ID)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", project.ID).Msg("failed to fetch payments")
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	return &ports.DashboardView{
		State: ports.ClientView,
		Client: &ports.ClientDashboard{
			Project:  project,
			Stages:   stages,
			Payments: payments,
		},
	}, nil
}

// CreateProject inserts a new project with progress initialized to zero.
// Nothing is written unless every required field is present and the client
// id references an existing CLIENT profile.
func (s *DashboardService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" || in.Location == "" || in.ClientID == "" || in.StartDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	client, err := s.profiles.FindByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Role != domain.RoleClient {
		return nil, domain.ErrInvalidInput
	}

	project := &domain.Project{
		ID:        uuid.NewString(),
		ClientID:  in.ClientID,
		Name:      in.Name,
		Location:  in.Location,
		Status:    in.Status,
		StartDate: in.StartDate,
		Progress:  0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.projects.Create(ctx, project); err != nil {
		s.log.Error().Err(err).Str("client_id", in.ClientID).Msg("failed to create project")
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Str("client_id", project.ClientID).Msg("project created")
	return project, nil
}

// ListClients returns every CLIENT profile, feeding the create-project form.
func (s *DashboardService) ListClients(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListByRole(ctx, domain.RoleClient)
}
