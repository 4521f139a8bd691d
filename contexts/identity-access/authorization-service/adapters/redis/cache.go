package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"atelier/contexts/identity-access/authorization-service/domain/entities"

	"github.com/redis/go-redis/v9"
)

// PrincipalCache implements ports.PrincipalCache on Redis. Entries carry their
// own TTL so stale principals age out even if invalidation is missed.
type PrincipalCache struct {
	client *redis.Client
}

func NewPrincipalCache(client *redis.Client) *PrincipalCache {
	return &PrincipalCache{client: client}
}

func (c *PrincipalCache) Get(ctx context.Context, userID string, _ time.Time) (entities.Principal, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Principal{}, false, nil
	}
	if err != nil {
		return entities.Principal{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var principal entities.Principal
	if err := json.Unmarshal(data, &principal); err != nil {
		return entities.Principal{}, false, fmt.Errorf("unmarshal principal failed: %w", err)
	}
	return principal, true, nil
}

func (c *PrincipalCache) Set(ctx context.Context, principal entities.Principal, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("marshal principal failed: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(principal.UserID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *PrincipalCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(userID string) string {
	return "authz:principal:" + userID
}
