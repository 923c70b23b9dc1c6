package usecase

import (
	"context"
	"testing"
	"time"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okInsightsBackend() *fakeBackend {
	return &fakeBackend{
		ages: func(context.Context) ([]models.AgeDistributionPoint, error) {
			return []models.AgeDistributionPoint{
				{AgeGroup: "18-30", Subscribed: models.NumberOf(1200), NotSubscribed: models.NumberOf(7000)},
			}, nil
		},
		sample: func(context.Context) ([]models.BalanceDurationSample, error) {
			return []models.BalanceDurationSample{
				{Balance: models.NumberOf(1500), Duration: models.Number{}, Y: "yes", YLabel: models.LabelSubscribed},
			}, nil
		},
	}
}

func TestInsightsReady(t *testing.T) {
	uc := NewInsightsUsecase(okInsightsBackend(), messages.New(messages.LocaleID), nil)

	st := uc.Page().Load(context.Background())

	require.Equal(t, StatusReady, st.Status)
	assert.Len(t, st.Data.AgeDistribution, 1)
	assert.Equal(t, 0.0, st.Data.BalanceDurationSample[0].Duration.Value)
	assert.True(t, st.Data.BalanceDurationSample[0].Duration.Valid)
}

func TestInsightsSampleFailure(t *testing.T) {
	api := okInsightsBackend()
	api.sample = func(context.Context) ([]models.BalanceDurationSample, error) {
		return nil, statusErr(service.EndpointBalanceDurationSample, 500, "")
	}
	uc := NewInsightsUsecase(api, messages.New(messages.LocaleID), nil)

	st := uc.Page().Load(context.Background())

	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "Gagal mengambil data sampel saldo/durasi.", st.Error)
}

func TestInsightsTransportFailureIsGeneric(t *testing.T) {
	api := okInsightsBackend()
	api.ages = func(context.Context) ([]models.AgeDistributionPoint, error) {
		return nil, transportErr(service.EndpointAgeDistribution)
	}
	uc := NewInsightsUsecase(api, messages.New(messages.LocaleEN), nil)

	st := uc.Page().Load(context.Background())

	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, messages.New(messages.LocaleEN).T(messages.InsightsGeneric), st.Error)
}

func TestInsightsBothFailReportsAgeFirst(t *testing.T) {
	api := okInsightsBackend()
	api.ages = func(ctx context.Context) ([]models.AgeDistributionPoint, error) {
		time.Sleep(50 * time.Millisecond)
		if ctx.Err() != nil {
			return nil, transportErr(service.EndpointAgeDistribution)
		}
		return nil, statusErr(service.EndpointAgeDistribution, 500, "age detail")
	}
	api.sample = func(context.Context) ([]models.BalanceDurationSample, error) {
		return nil, statusErr(service.EndpointBalanceDurationSample, 500, "sample detail")
	}
	uc := NewInsightsUsecase(api, messages.New(messages.LocaleID), nil)

	st := uc.Page().Load(context.Background())

	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "age detail", st.Error)
}
