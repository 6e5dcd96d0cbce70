package ports

import (
	"context"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// ListAll returns every project ordered by creation time descending.
	ListAll(ctx context.Context) ([]domain.Project, error)
	// FindByClientID retrieves the project owned by clientID. When more than
	// one row matches, the most recently created project is returned.
	// Returns domain.ErrProjectNotFound when the client owns none.
	FindByClientID(ctx context.Context, clientID string) (*domain.Project, error)
	// CountByClientID reports how many projects a client owns, so callers can
	// surface the data-integrity condition of multiple ownership.
	CountByClientID(ctx context.Context, clientID string) (int64, error)
}

// StageRepository reads the construction stages of a project.
type StageRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.ConstructionStage, error)
}

// PaymentRepository reads the milestone payments of a project.
type PaymentRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Payment, error)
}

// InboxRepository persists the one-shot marketing submissions. Write-only;
// rows are read back through the storage console, not the portal.
type InboxRepository interface {
	InsertBooking(ctx context.Context, b *domain.Booking) error
	InsertContactMessage(ctx context.Context, m *domain.ContactMessage) error
}
