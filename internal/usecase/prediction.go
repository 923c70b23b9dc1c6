package usecase

import (
	"context"
	"time"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/repository"
	"SecureBank/internal/domain/service"
	"SecureBank/internal/messages"
	"SecureBank/internal/service/backend"
	applogger "SecureBank/pkg/logger"
)

// publishTimeout bounds how long a prediction waits on the event sink.
const publishTimeout = 3 * time.Second

type PredictionUsecase struct {
	api     service.BackendAPI
	sink    repository.EventSink
	cat     *messages.Catalog
	metrics repository.Metrics
	log     *applogger.Logger
	now     func() time.Time
}

func NewPredictionUsecase(
	api service.BackendAPI,
	sink repository.EventSink,
	cat *messages.Catalog,
	m repository.Metrics,
	l *applogger.Logger,
) *PredictionUsecase {
	if l == nil {
		l = applogger.Nop()
	}
	return &PredictionUsecase{
		api:     api,
		sink:    sink,
		cat:     cat,
		metrics: m,
		log:     l.With(applogger.String("component", "prediction")),
		now:     time.Now,
	}
}

// Predict submits the form to the model. A successful result is also
// published to the event sink; sink failures are logged and never change
// the outcome.
func (u *PredictionUsecase) Predict(ctx context.Context, form *models.CustomerInputForm) (models.PredictionResult, error) {
	req := form.Payload()

	start := u.now()
	res, err := u.api.Predict(ctx, req)
	latency := u.now().Sub(start)
	if err != nil {
		if ctx.Err() == nil {
			u.recordPrediction("error")
		}
		return models.PredictionResult{}, u.failure(err)
	}

	u.recordPrediction(res.Prediction)
	u.publish(ctx, models.NewPredictionEvent(start, req, res, latency))
	return res, nil
}

// Page returns a state machine that submits form on every Load.
func (u *PredictionUsecase) Page(form *models.CustomerInputForm) *Machine[models.PredictionResult] {
	load := func(ctx context.Context) (models.PredictionResult, error) {
		return u.Predict(ctx, form)
	}
	return NewMachine(PagePrediction, load, u.metrics, u.cat.T(messages.PredictGeneric))
}

func (u *PredictionUsecase) failure(err error) *PageError {
	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		return &PageError{Message: u.cat.T(messages.PredictGeneric), Err: err}
	}
	switch apiErr.Kind {
	case backend.KindStatus:
		if apiErr.Message != "" {
			return &PageError{Message: apiErr.Message, Err: err}
		}
		return &PageError{Message: u.cat.T(messages.PredictHTTPStatus, apiErr.Status), Err: err}
	case backend.KindPayload:
		if apiErr.Message != "" {
			return &PageError{Message: apiErr.Message, Err: err}
		}
	}
	return &PageError{Message: u.cat.T(messages.PredictGeneric), Err: err}
}

func (u *PredictionUsecase) publish(ctx context.Context, ev models.PredictionEvent) {
	if u.sink == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := u.sink.Publish(ctx, ev); err != nil {
		if u.metrics != nil {
			u.metrics.RecordSinkError(u.sink.Name())
		}
		u.log.Warn("publish prediction event failed",
			applogger.String("sink", u.sink.Name()),
			applogger.String("event_id", ev.ID),
			applogger.Error(err),
		)
	}
}

func (u *PredictionUsecase) recordPrediction(outcome string) {
	if u.metrics != nil {
		u.metrics.RecordPrediction(outcome)
	}
}
