package notifier

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/errnotify/internal/config"
	"github.com/aleister1102/errnotify/internal/counterstore"
)

// RateLimiter damps notification bursts with a single shared counter.
//
// The window is an approximate fixed window, not a rolling one: Increment
// rewrites the key with a fresh TTL every time, so sends below the ceiling
// keep pushing the expiry forward, and a burst that reaches the ceiling
// silences notifications until the TTL elapses with no further writes.
// The Get/Put pair is not atomic, so concurrent senders may under-count;
// this is accepted for a spam-damping mechanism.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	store  counterstore.Store
	logger zerolog.Logger
}

// NewRateLimiter creates a new rate limiter over the shared counter store
func NewRateLimiter(cfg config.RateLimitConfig, store counterstore.Store, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		cfg:    cfg,
		store:  store,
		logger: logger.With().Str("module", "RateLimiter").Logger(),
	}
}

// IsLimited reports whether the counter has reached the configured ceiling.
// A disabled limiter is never limited.
func (rl *RateLimiter) IsLimited(ctx context.Context) (bool, error) {
	if !rl.cfg.Enabled {
		return false, nil
	}

	count, ok, err := rl.store.Get(ctx, RateLimitCounterKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return count >= int64(rl.cfg.MaxNotifications), nil
}

// Increment records one successful send, re-arming the window TTL.
// No-op when the limiter is disabled.
func (rl *RateLimiter) Increment(ctx context.Context) error {
	if !rl.cfg.Enabled {
		return nil
	}

	count, _, err := rl.store.Get(ctx, RateLimitCounterKey)
	if err != nil {
		return err
	}

	ttl := time.Duration(rl.cfg.PerMinutes) * time.Minute
	if err := rl.store.Put(ctx, RateLimitCounterKey, count+1, ttl); err != nil {
		return err
	}

	rl.logger.Debug().Int64("count", count+1).Dur("ttl", ttl).Msg("Notification counter incremented")
	return nil
}
