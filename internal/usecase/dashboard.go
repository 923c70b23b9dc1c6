package usecase

import (
	"context"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/repository"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"
	"SecureBank/pkg/config"

	"golang.org/x/sync/errgroup"
)

var dashboardFallbacks = map[string]string{
	service.EndpointTargetDistribution: messages.DashboardTargetFailed,
	service.EndpointJobSuccessRate:     messages.DashboardJobFailed,
}

type DashboardUsecase struct {
	api     service.BackendAPI
	kpi     models.KPI
	cat     *messages.Catalog
	metrics repository.Metrics
}

func NewDashboardUsecase(api service.BackendAPI, cfg *config.Config, cat *messages.Catalog, m repository.Metrics) *DashboardUsecase {
	k := cfg.Dashboard.KPI
	return &DashboardUsecase{
		api: api,
		kpi: models.KPI{
			TotalCustomers:     k.TotalCustomers,
			OverallSuccessRate: k.OverallSuccessRate,
			AvgCallDuration:    k.AvgCallDuration,
			AvgCustomerAge:     k.AvgCustomerAge,
			Placeholder:        true,
		},
		cat:     cat,
		metrics: m,
	}
}

// Fetch loads both dashboard datasets concurrently and waits for both.
// Either failing fails the page; the target distribution is reported first.
func (u *DashboardUsecase) Fetch(ctx context.Context) (models.Dashboard, error) {
	var (
		d                 models.Dashboard
		targetErr, jobErr error
		g                 errgroup.Group
	)

	g.Go(func() error {
		d.TargetDistribution, targetErr = u.api.TargetDistribution(ctx)
		return nil
	})
	g.Go(func() error {
		d.JobSuccessRate, jobErr = u.api.JobSuccessRate(ctx)
		return nil
	})
	_ = g.Wait()

	if err := firstError(targetErr, jobErr); err != nil {
		return models.Dashboard{}, pageFailure(err, u.cat, dashboardFallbacks, messages.DashboardGeneric)
	}

	d.KPI = u.kpi
	d.Normalize()
	return d, nil
}

// Page returns a fresh state machine for one dashboard view.
func (u *DashboardUsecase) Page() *Machine[models.Dashboard] {
	return NewMachine(PageDashboard, u.Fetch, u.metrics, u.cat.T(messages.DashboardGeneric))
}
