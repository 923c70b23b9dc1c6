package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"SecureBank/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterFixedWindow(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryCache(cache.WithMemoryClock(func() time.Time { return now }))
	defer store.Close()

	l := New(store, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Minute, d.RetryAfter)

	other, _ := l.Allow(ctx, "10.0.0.2")
	assert.True(t, other.Allowed, "keys are independent")

	now = now.Add(time.Minute + time.Second)
	d, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, d.Allowed, "new window")
	assert.Equal(t, 1, d.Remaining)
}

type brokenStore struct{ cache.Service }

func (brokenStore) Increment(context.Context, string) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestLimiterFailsOpen(t *testing.T) {
	d, err := New(brokenStore{}, 1, time.Minute).Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.True(t, d.Allowed)
}
