package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable points at a closed local port so every command fails fast.
func unreachable() *redis.Options {
	return &redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond}
}

func TestRedisCacheWrapKey(t *testing.T) {
	assert.Equal(t, "securebank:ratelimit:1.2.3.4", (&RedisCache{prefix: "securebank"}).wrapKey("ratelimit:1.2.3.4"))
	assert.Equal(t, "k", (&RedisCache{}).wrapKey("k"))
}

func TestNewRedisCacheFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisCache(ctx, WithRedisHost("127.0.0.1"), WithRedisPort(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}

func TestRedisCacheCommandErrorsPropagate(t *testing.T) {
	c := &RedisCache{client: redis.NewClient(unreachable()), prefix: "securebank"}
	defer c.Close()
	ctx := context.Background()

	_, err := c.Increment(ctx, "k")
	assert.Error(t, err)

	_, err = c.Expire(ctx, "k", time.Minute)
	assert.Error(t, err)

	_, err = c.TTL(ctx, "k")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCacheMiss))
}
