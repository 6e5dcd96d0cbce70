package ports

import (
	"context"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile by its user id (exact match, 0 or 1 rows).
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// ListByRole returns all profiles carrying the given role.
	ListByRole(ctx context.Context, role string) ([]domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
}
