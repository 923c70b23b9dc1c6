package usecase

import (
	"context"
	"errors"
	"testing"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"
	"SecureBank/internal/service/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrediction(api *fakeBackend, sink *fakeSink, m *fakeMetrics) *PredictionUsecase {
	return NewPredictionUsecase(api, sink, messages.New(messages.LocaleID), m, nil)
}

func TestPredictReadyPublishesEvent(t *testing.T) {
	var got models.PredictionRequest
	api := &fakeBackend{predict: func(_ context.Context, req models.PredictionRequest) (models.PredictionResult, error) {
		got = req
		return models.PredictionResult{Prediction: models.OutcomeYes, ProbabilityYes: models.NumberOf(0.716)}, nil
	}}
	sink := &fakeSink{}
	metrics := &fakeMetrics{}

	form := models.NewCustomerInputForm()
	form.Age = "45"
	st := newPrediction(api, sink, metrics).Page(form).Load(context.Background())

	require.Equal(t, StatusReady, st.Status)
	assert.True(t, st.Data.Subscribes())
	assert.Equal(t, 45, got.Age)

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, models.OutcomeYes, ev.Prediction)
	assert.Equal(t, 0.716, ev.ProbabilityYes)
	assert.Equal(t, 45, ev.Input.Age)
	assert.Equal(t, []string{models.OutcomeYes}, metrics.predictions)
}

func TestPredictSinkFailureDoesNotFail(t *testing.T) {
	api := &fakeBackend{predict: func(context.Context, models.PredictionRequest) (models.PredictionResult, error) {
		return models.PredictionResult{Prediction: models.OutcomeNo, ProbabilityYes: models.NumberOf(0.1)}, nil
	}}
	sink := &fakeSink{err: errors.New("broker down")}
	metrics := &fakeMetrics{}

	st := newPrediction(api, sink, metrics).Page(models.NewCustomerInputForm()).Load(context.Background())

	assert.Equal(t, StatusReady, st.Status)
	assert.Equal(t, 1, metrics.sinkErrors)
}

func TestPredictErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"detail", statusErr(service.EndpointPredict, 500, "Model belum dimuat"), "Model belum dimuat"},
		{"bare status", statusErr(service.EndpointPredict, 503, ""), "Terjadi kesalahan HTTP! Status: 503"},
		{
			"embedded error",
			&backend.APIError{Kind: backend.KindPayload, Endpoint: service.EndpointPredict, Message: "input salah"},
			"input salah",
		},
		{
			"unreadable body",
			&backend.APIError{Kind: backend.KindPayload, Endpoint: service.EndpointPredict, Err: errors.New("bad json")},
			"Terjadi kesalahan tidak dikenal.",
		},
		{"transport", transportErr(service.EndpointPredict), "Terjadi kesalahan tidak dikenal."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeBackend{predict: func(context.Context, models.PredictionRequest) (models.PredictionResult, error) {
				return models.PredictionResult{}, tt.err
			}}
			sink := &fakeSink{}
			metrics := &fakeMetrics{}

			st := newPrediction(api, sink, metrics).Page(models.NewCustomerInputForm()).Load(context.Background())

			assert.Equal(t, StatusError, st.Status)
			assert.Equal(t, tt.want, st.Error)
			assert.Empty(t, sink.events)
			assert.Equal(t, []string{"error"}, metrics.predictions)
		})
	}
}
