package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// AuthService implements password sign-in, sign-out, and account creation.
// Every state change is published to the event sink so the session resolver
// stays consistent with the auth state.
type AuthService struct {
	repo      ports.ProfileRepository
	events    ports.AuthEventSink
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.ProfileRepository, events ports.AuthEventSink, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, events: events, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) SignInWithPassword(ctx context.Context, email, password string) (*ports.Session, *domain.Identity, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	profile, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.generateSession(profile)
	if err != nil {
		return nil, nil, err
	}

	s.events.Publish(ports.AuthEvent{
		Type:    ports.AuthSignedIn,
		UserID:  profile.ID,
		Session: session,
		At:      time.Now().UTC(),
	})

	return session, domain.IdentityOf(profile), nil
}

// SignOut announces session invalidation. The JWT itself is stateless and
// expires on its own; the signed-out event is what tears the session down.
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	s.events.Publish(ports.AuthEvent{
		Type:   ports.AuthSignedOut,
		UserID: userID,
		At:     time.Now().UTC(),
	})
	return nil
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Profile, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *AuthService) generateSession(p *domain.Profile) (*ports.Session, error) {
	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":  p.ID,
		"role": p.Role,
		"exp":  expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.Session{UserID: p.ID, Token: signed, ExpiresAt: expiresAt}, nil
}
