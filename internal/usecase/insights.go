package usecase

import (
	"context"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/repository"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"

	"golang.org/x/sync/errgroup"
)

var insightsFallbacks = map[string]string{
	service.EndpointAgeDistribution:       messages.InsightsAgeFailed,
	service.EndpointBalanceDurationSample: messages.InsightsSampleFailed,
}

type InsightsUsecase struct {
	api     service.BackendAPI
	cat     *messages.Catalog
	metrics repository.Metrics
}

func NewInsightsUsecase(api service.BackendAPI, cat *messages.Catalog, m repository.Metrics) *InsightsUsecase {
	return &InsightsUsecase{api: api, cat: cat, metrics: m}
}

// Fetch loads the age distribution and the balance/duration sample concurrently.
// When both fail, the age distribution error wins.
func (u *InsightsUsecase) Fetch(ctx context.Context) (models.Insights, error) {
	var (
		in                models.Insights
		ageErr, sampleErr error
		g                 errgroup.Group
	)

	g.Go(func() error {
		in.AgeDistribution, ageErr = u.api.AgeDistribution(ctx)
		return nil
	})
	g.Go(func() error {
		in.BalanceDurationSample, sampleErr = u.api.BalanceDurationSample(ctx)
		return nil
	})
	_ = g.Wait()

	if err := firstError(ageErr, sampleErr); err != nil {
		return models.Insights{}, pageFailure(err, u.cat, insightsFallbacks, messages.InsightsGeneric)
	}

	in.Normalize()
	return in, nil
}

func (u *InsightsUsecase) Page() *Machine[models.Insights] {
	return NewMachine(PageInsights, u.Fetch, u.metrics, u.cat.T(messages.InsightsGeneric))
}
