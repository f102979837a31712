// Package counterstore provides the shared TTL counter store backing the
// notification rate limiter. The store is a plain key-value surface: a Get
// followed by a Put is deliberately not atomic, so the limiter built on top
// of it is best-effort under concurrent load.
package counterstore

import (
	"context"
	"time"
)

// Store is a shared integer counter store with per-key expiry
type Store interface {
	// Get returns the current value for key. The second return value is
	// false when the key is absent or its TTL has elapsed.
	Get(ctx context.Context, key string) (int64, bool, error)

	// Put writes value under key with a fresh TTL, overwriting any
	// existing value and expiry.
	Put(ctx context.Context, key string, value int64, ttl time.Duration) error

	// Close releases any resources held by the store
	Close() error
}
