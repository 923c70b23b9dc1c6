package di

import (
	"context"
	"fmt"
	"time"

	"SecureBank/internal/domain/repository"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/handler/api"
	"SecureBank/internal/handler/web"
	"SecureBank/internal/messages"
	internalrepo "SecureBank/internal/repository"
	"SecureBank/internal/service/backend"
	"SecureBank/internal/service/ratelimit"
	"SecureBank/internal/view"
	"SecureBank/pkg/cache"
	"SecureBank/pkg/config"
	xhttp "SecureBank/pkg/http"
	applogger "SecureBank/pkg/logger"
	"SecureBank/pkg/metrics"
	"SecureBank/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// connectTimeout bounds start-up connections to Redis, Kafka and ClickHouse.
const connectTimeout = 10 * time.Second

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() repository.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

func ProvideCatalog(cfg *config.Config) *messages.Catalog {
	return messages.New(cfg.UI.Locale)
}

// ProvideBackendAPI creates the prediction backend client.
func ProvideBackendAPI(cfg *config.Config, m repository.Metrics, l *applogger.Logger) service.BackendAPI {
	return backend.NewClient(cfg, m, l.With(applogger.String("component", "backend")))
}

// ProvideEventSink creates the prediction event sink selected in config.
func ProvideEventSink(cfg *config.Config, l *applogger.Logger) (repository.EventSink, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return internalrepo.NewEventSink(ctx, cfg, l)
}

// ProvideRateLimitStore creates the counter store behind the predict rate limit.
func ProvideRateLimitStore(cfg *config.Config) (cache.Service, error) {
	if cfg.RateLimit.Backend != config.RateLimitRedis {
		return cache.NewMemoryCache(cache.WithMemoryCleanup(cfg.RateLimit.Window)), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	store, err := cache.NewRedisCache(ctx,
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return store, nil
}

// ProvidePredictGuard returns nil when rate limiting is disabled.
func ProvidePredictGuard(cfg *config.Config, store cache.Service, m repository.Metrics, l *applogger.Logger) *ratelimit.Guard {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.NewGuard(ratelimit.New(store, cfg.RateLimit.Limit, cfg.RateLimit.Window), "predict", m, l)
}

func ProvideRenderer(cat *messages.Catalog) (*view.Renderer, error) {
	return view.NewRenderer(cat)
}

func ProvideHandlers(w *web.PagesHandler, a *api.PagesHandler) []xhttp.Handler {
	return []xhttp.Handler{w, a}
}

// ProvideHTTPServer creates the Echo server with every handler registered.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, handlers []xhttp.Handler, r *view.Renderer) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(l, handlers,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithRenderer(r),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	sink repository.EventSink,
	store cache.Service,
) *server.App {
	return server.New(cfg, l, srv, sink, store)
}
