package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestMemoryCacheIncrementAndExpire(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	mc := NewMemoryCache(WithMemoryClock(clock.Now))
	defer mc.Close()
	ctx := context.Background()

	n, err := mc.Increment(ctx, "k")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	ok, err := mc.Expire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	n, _ = mc.Increment(ctx, "k")
	assert.EqualValues(t, 2, n)

	ttl, err := mc.TTL(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	clock.Advance(61 * time.Second)
	_, err = mc.TTL(ctx, "k")
	assert.True(t, errors.Is(err, ErrCacheMiss))

	n, _ = mc.Increment(ctx, "k")
	assert.EqualValues(t, 1, n, "expired counter restarts")
}

func TestMemoryCacheExpireMissingKey(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Close()

	ok, err := mc.Expire(context.Background(), "missing", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	mc := NewMemoryCache(WithMemoryMaxSize(2), WithMemoryClock(clock.Now))
	defer mc.Close()
	ctx := context.Background()

	_, _ = mc.Increment(ctx, "a")
	clock.Advance(time.Second)
	_, _ = mc.Increment(ctx, "b")
	clock.Advance(time.Second)
	_, _ = mc.Increment(ctx, "a")
	clock.Advance(time.Second)
	_, _ = mc.Increment(ctx, "c")

	_, err := mc.TTL(ctx, "b")
	assert.True(t, errors.Is(err, ErrCacheMiss))
	_, err = mc.TTL(ctx, "a")
	assert.NoError(t, err)
}
