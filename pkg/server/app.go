package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	domrepo "SecureBank/internal/domain/repository"
	"SecureBank/pkg/cache"
	"SecureBank/pkg/config"
	xhttp "SecureBank/pkg/http"
	applogger "SecureBank/pkg/logger"
)

// App owns the HTTP server and every resource that must be released on exit.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	httpServer *xhttp.Server
	sink       domrepo.EventSink
	limitStore cache.Service
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	sink domrepo.EventSink,
	limitStore cache.Service,
) *App {
	return &App{
		cfg:        cfg,
		log:        l,
		httpServer: httpServer,
		sink:       sink,
		limitStore: limitStore,
	}
}

// Run serves until ctx is cancelled, SIGINT/SIGTERM arrives or the listener
// fails, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Info("starting securebank web",
		applogger.String("env", a.cfg.Environment),
		applogger.String("backend", a.cfg.Backend.BaseURL),
		applogger.String("locale", a.cfg.UI.Locale),
		applogger.String("events_sink", a.sink.Name()),
	)

	var runErr error
	select {
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	case err, ok := <-a.httpServer.Start():
		if ok && err != nil {
			a.log.Error("http server failed", applogger.Error(err))
			runErr = err
		}
	}

	return errors.Join(runErr, a.shutdown())
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.httpServer.ShutdownTimeout())
	defer cancel()

	var errs []error
	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
		errs = append(errs, err)
	}
	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			a.log.Warn("event sink close error", applogger.String("sink", a.sink.Name()), applogger.Error(err))
			errs = append(errs, err)
		}
	}
	if a.limitStore != nil {
		if err := a.limitStore.Close(); err != nil {
			a.log.Warn("rate limit store close error", applogger.Error(err))
			errs = append(errs, err)
		}
	}

	a.log.Info("shutdown complete")
	return errors.Join(errs...)
}
