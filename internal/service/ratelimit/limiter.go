package ratelimit

import (
	"context"
	"fmt"
	"math"
	"time"

	"SecureBank/pkg/cache"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds, at least 1.
func (d Decision) RetryAfterSeconds() int {
	secs := int(math.Ceil(d.RetryAfter.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// Limiter is a fixed-window counter per key backed by a cache.Service, so
// windows are shared between replicas when the store is Redis.
type Limiter struct {
	store  cache.Service
	limit  int
	window time.Duration
	prefix string
}

func New(store cache.Service, limit int, window time.Duration) *Limiter {
	return &Limiter{store: store, limit: limit, window: window, prefix: "ratelimit"}
}

// Allow counts one hit for key. Store errors are returned together with an
// allowing decision.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	k := cache.GenerateKeyWithParams(l.prefix, key)

	n, err := l.store.Increment(ctx, k)
	if err != nil {
		return Decision{Allowed: true}, fmt.Errorf("ratelimit increment: %w", err)
	}
	if n == 1 {
		if _, err := l.store.Expire(ctx, k, l.window); err != nil {
			return Decision{Allowed: true}, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	if int(n) <= l.limit {
		return Decision{Allowed: true, Remaining: l.limit - int(n)}, nil
	}

	retry, err := l.store.TTL(ctx, k)
	if err != nil || retry < 0 {
		retry = l.window
	}
	return Decision{Allowed: false, RetryAfter: retry}, nil
}
