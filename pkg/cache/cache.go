package cache

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCacheMiss = errors.New("cache: key not found")
)

// Service is the counter store behind request throttling.
type Service interface {
	// Increment adds one to key, creating it at 1 when absent or expired.
	Increment(ctx context.Context, key string) (int64, error)
	// Expire sets the remaining lifetime of key. Returns false if key is absent.
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
	// TTL reports the remaining lifetime of key or ErrCacheMiss.
	TTL(ctx context.Context, key string) (time.Duration, error)
	Close() error
}
