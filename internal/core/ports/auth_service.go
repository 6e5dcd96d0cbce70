package ports

import (
	"context"
	"time"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

// AuthEventType enumerates the auth-state changes the provider can emit.
type AuthEventType string

const (
	AuthSignedIn       AuthEventType = "SIGNED_IN"
	AuthSignedOut      AuthEventType = "SIGNED_OUT"
	AuthTokenRefreshed AuthEventType = "TOKEN_REFRESHED"
)

// Session is the provider's view of an authenticated session.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// AuthEvent is published by the auth provider on every state change.
// Session is nil for AuthSignedOut.
type AuthEvent struct {
	Type    AuthEventType
	UserID  string
	Session *Session
	At      time.Time
}

// AuthEventSink receives auth events for asynchronous delivery. Events for a
// single user id must be delivered in publish order.
type AuthEventSink interface {
	Publish(ev AuthEvent)
}

// RegisterInput carries the data needed to create a portal account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService is the portal's authentication provider: password sign-in,
// session invalidation, and account creation. Every state change is also
// published to the configured event sink.
type AuthService interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, *domain.Identity, error)
	SignOut(ctx context.Context, userID string) error
	Register(ctx context.Context, in RegisterInput) (*domain.Profile, error)
}
