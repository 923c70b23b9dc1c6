package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"SecureBank/internal/domain/models"
	"SecureBank/pkg/cache"
	"SecureBank/pkg/config"
	xhttp "SecureBank/pkg/http"
	applogger "SecureBank/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingSink struct {
	closed bool
	err    error
}

func (s *closingSink) Publish(context.Context, models.PredictionEvent) error { return nil }
func (s *closingSink) Name() string                                          { return "test" }

func (s *closingSink) Close() error {
	s.closed = true
	return s.err
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := config.Default()
	srv := xhttp.NewServer(applogger.Nop(), nil,
		xhttp.WithHost("127.0.0.1"),
		xhttp.WithPort(0),
		xhttp.WithTimeouts(time.Second, time.Second, time.Second),
	)
	sink := &closingSink{}
	store := cache.NewMemoryCache()
	app := New(cfg, applogger.Nop(), srv, sink, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, sink.closed)
}

func TestShutdownJoinsCloseErrors(t *testing.T) {
	srv := xhttp.NewServer(applogger.Nop(), nil, xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))
	sink := &closingSink{err: errors.New("flush failed")}
	app := New(config.Default(), applogger.Nop(), srv, sink, nil)

	err := app.shutdown()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
}
