package ports

import (
	"context"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

// SessionService maintains the current identity of each logical session and
// keeps it consistent with the auth provider's state changes. A missing
// profile is equivalent to anonymous: Resolve returns (nil, nil) rather than
// an error in that case.
type SessionService interface {
	// Resolve returns the identity for userID, performing a fresh profile
	// lookup when none is held. A nil identity with nil error means anonymous.
	Resolve(ctx context.Context, userID string) (*domain.Identity, error)
	// Current returns the identity already held for userID without touching
	// the profile store. Nil when the session is unresolved or anonymous.
	Current(userID string) *domain.Identity
	// SignOut invalidates the session with the auth provider, clears the
	// identity, and removes the durable cache entry.
	SignOut(ctx context.Context, userID string) error
}

// IdentityCache is the durable fallback copy of a resolved identity. It is a
// last-resort hint: a fresh resolution always wins over the cached value.
type IdentityCache interface {
	Get(ctx context.Context, userID string) (*domain.Identity, error)
	Put(ctx context.Context, id *domain.Identity) error
	Delete(ctx context.Context, userID string) error
}
