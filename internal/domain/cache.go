package domain

import (
	"context"
	"time"
)

// Cache defines the interface (port) for the key/value store backing
// cross-request counters. Implementations are adapters such as RedisCacheAdapter.
type Cache interface {
	// Incr atomically increments the integer stored at key and returns the new value.
	// A missing key counts as 0.
	Incr(ctx context.Context, key string) (int64, error)

	// Expire sets an expiration time on key.
	Expire(ctx context.Context, key string, expiration time.Duration) error
}
