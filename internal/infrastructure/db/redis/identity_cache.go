package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

const identityTTL = 24 * time.Hour

// IdentityCache is the durable fallback copy of resolved identities.
// Key format: identity:<user_id>, value is the JSON-serialized identity.
type IdentityCache struct {
	client *redis.Client
}

// NewIdentityCache creates an IdentityCache wrapping the given Redis client.
func NewIdentityCache(client *redis.Client) *IdentityCache {
	return &IdentityCache{client: client}
}

// Get returns the cached identity for userID, or (nil, nil) on a miss.
func (c *IdentityCache) Get(ctx context.Context, userID string) (*domain.Identity, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("identity cache get: %w", err)
	}

	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("identity cache decode: %w", err)
	}
	return &id, nil
}

// Put stores the identity under its user id (expires after identityTTL).
func (c *IdentityCache) Put(ctx context.Context, id *domain.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("identity cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(id.ID), raw, identityTTL).Err()
}

// Delete removes the cached identity for userID.
func (c *IdentityCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *IdentityCache) key(userID string) string {
	return "identity:" + userID
}
