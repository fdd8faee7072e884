// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pocketledger/backend/internal/application/adapter"
)

// keyPrefix namespaces report entries so Invalidate never touches foreign
// keys on a shared Redis.
const keyPrefix = "report:"

// reportCache implements the adapter.ReportCache interface on go-redis.
type reportCache struct {
	client *redis.Client
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client) adapter.ReportCache {
	return &reportCache{
		client: client,
	}
}

// Get returns the cached payload for key, or ok=false on a miss.
func (c *reportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores a payload under key with the given TTL.
func (c *reportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, keyPrefix+key, payload, ttl).Err()
}

// Invalidate drops every cached report entry.
func (c *reportCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
