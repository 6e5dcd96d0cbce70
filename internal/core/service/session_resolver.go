package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// SessionResolver maintains the current identity of each logical session.
// It is the single writer of session state: the auth middleware and the
// handlers only read from it.
//
// Each auth-state change bumps a per-session generation counter. A profile
// lookup result is applied only while its generation is still current, so a
// slow response can never overwrite an identity resolved from a newer event.
type SessionResolver struct {
	profiles ports.ProfileRepository
	cache    ports.IdentityCache
	auth     ports.AuthService
	log      zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	identity *domain.Identity
	gen      uint64
}

func NewSessionResolver(profiles ports.ProfileRepository, cache ports.IdentityCache, auth ports.AuthService, log zerolog.Logger) *SessionResolver {
	return &SessionResolver{
		profiles: profiles,
		cache:    cache,
		auth:     auth,
		log:      log,
		sessions: make(map[string]*sessionEntry),
	}
}

// Resolve returns the identity for userID. A held identity is returned
// synchronously; otherwise a fresh profile lookup runs. A nil identity with
// nil error means anonymous (missing profile is not an error here).
func (r *SessionResolver) Resolve(ctx context.Context, userID string) (*domain.Identity, error) {
	if userID == "" {
		return nil, nil
	}

	r.mu.Lock()
	entry := r.entryLocked(userID)
	if entry.identity != nil {
		id := entry.identity
		r.mu.Unlock()
		return id, nil
	}
	gen := entry.gen
	r.mu.Unlock()

	return r.resolveFresh(ctx, userID, gen)
}

// Current returns the identity already held for userID, without any lookup.
func (r *SessionResolver) Current(userID string) *domain.Identity {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.sessions[userID]; ok {
		return entry.identity
	}
	return nil
}

// SignOut invalidates the session with the auth provider, clears the held
// identity, and deletes the cache entry. The clear happens unconditionally,
// whatever state the session was in.
func (r *SessionResolver) SignOut(ctx context.Context, userID string) error {
	err := r.auth.SignOut(ctx, userID)

	r.clear(ctx, userID)

	return err
}

// HandleAuthEvent processes one auth-state change. Events for a single
// session arrive in order; processing is last-write-wins.
func (r *SessionResolver) HandleAuthEvent(ctx context.Context, ev ports.AuthEvent) {
	if ev.UserID == "" {
		return
	}

	if ev.Session == nil || ev.Type == ports.AuthSignedOut {
		r.clear(ctx, ev.UserID)
		r.log.Debug().Str("user_id", ev.UserID).Str("event", string(ev.Type)).Msg("session cleared")
		return
	}

	r.mu.Lock()
	entry := r.entryLocked(ev.UserID)
	entry.gen++
	gen := entry.gen
	r.mu.Unlock()

	if _, err := r.resolveFresh(ctx, ev.UserID, gen); err != nil {
		r.log.Warn().Err(err).Str("user_id", ev.UserID).Str("event", string(ev.Type)).Msg("identity resolution failed")
	}
}

// resolveFresh looks the profile up and applies the result if gen is still
// current. On a store failure the durable cache is consulted as a last
// resort; on a missing profile the session degrades to anonymous.
func (r *SessionResolver) resolveFresh(ctx context.Context, userID string, gen uint64) (*domain.Identity, error) {
	profile, err := r.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			// Missing profile == not logged in. Drop any cached copy.
			r.apply(userID, gen, nil)
			if cerr := r.cache.Delete(ctx, userID); cerr != nil {
				r.log.Warn().Err(cerr).Str("user_id", userID).Msg("identity cache delete failed")
			}
			return nil, nil
		}

		// Store unreachable: fall back to the cached identity as a hint.
		if cached, cerr := r.cache.Get(ctx, userID); cerr == nil && cached != nil {
			r.log.Warn().Err(err).Str("user_id", userID).Msg("profile store unavailable, using cached identity")
			r.apply(userID, gen, cached)
			return cached, nil
		}
		return nil, err
	}

	identity := domain.IdentityOf(profile)
	if !r.apply(userID, gen, identity) {
		// A newer event superseded this lookup; discard the stale result.
		r.log.Debug().Str("user_id", userID).Msg("stale identity resolution discarded")
		return r.Current(userID), nil
	}

	if err := r.cache.Put(ctx, identity); err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("identity cache write failed")
	}
	return identity, nil
}

// apply installs identity for userID if gen is still the current generation.
func (r *SessionResolver) apply(userID string, gen uint64, identity *domain.Identity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := r.entryLocked(userID)
	if entry.gen != gen {
		return false
	}
	entry.identity = identity
	return true
}

// clear unconditionally drops the identity, bumps the generation so any
// in-flight lookup cannot resurrect it, and deletes the cache entry.
func (r *SessionResolver) clear(ctx context.Context, userID string) {
	r.mu.Lock()
	entry := r.entryLocked(userID)
	entry.identity = nil
	entry.gen++
	r.mu.Unlock()

	if err := r.cache.Delete(ctx, userID); err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("identity cache delete failed")
	}
}

func (r *SessionResolver) entryLocked(userID string) *sessionEntry {
	entry, ok := r.sessions[userID]
	if !ok {
		entry = &sessionEntry{}
		r.sessions[userID] = entry
	}
	return entry
}
