package ratelimit

import (
	"context"

	"SecureBank/internal/domain/repository"
	applogger "SecureBank/pkg/logger"
)

// Guard applies a Limiter to one route. A nil Guard allows everything.
type Guard struct {
	limiter *Limiter
	route   string
	metrics repository.Metrics
	log     *applogger.Logger
}

func NewGuard(l *Limiter, route string, m repository.Metrics, log *applogger.Logger) *Guard {
	if log == nil {
		log = applogger.Nop()
	}
	return &Guard{limiter: l, route: route, metrics: m, log: log}
}

// Allow counts a hit for key. Store failures are logged and let the request through.
func (g *Guard) Allow(ctx context.Context, key string) Decision {
	if g == nil || g.limiter == nil {
		return Decision{Allowed: true}
	}
	d, err := g.limiter.Allow(ctx, key)
	if err != nil {
		g.log.Warn("rate limiter unavailable, allowing request",
			applogger.String("route", g.route),
			applogger.Error(err),
		)
	}
	if !d.Allowed && g.metrics != nil {
		g.metrics.RecordRateLimited(g.route)
	}
	return d
}
