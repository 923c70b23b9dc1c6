//go:build wireinject
// +build wireinject

package di

import (
	"SecureBank/internal/handler/api"
	"SecureBank/internal/handler/web"
	"SecureBank/internal/usecase"
	"SecureBank/pkg/config"
	"SecureBank/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCatalog,

		// Infrastructure
		ProvideBackendAPI,
		ProvideEventSink,
		ProvideRateLimitStore,
		ProvidePredictGuard,

		// Use cases
		usecase.NewDashboardUsecase,
		usecase.NewInsightsUsecase,
		usecase.NewModelInfoUsecase,
		usecase.NewPredictionUsecase,

		// HTTP
		ProvideRenderer,
		web.NewPagesHandler,
		api.NewPagesHandler,
		ProvideHandlers,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
