package adapter

import (
	"context"
	"time"
)

// ReportCache caches rendered report payloads keyed by request path and
// query. The analytics engine itself never memoizes; caching belongs to the
// entrypoint layer.
type ReportCache interface {
	// Get returns the cached payload for key, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)

	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops every cached report. Called when underlying data
	// changes.
	Invalidate(ctx context.Context) error
}
