package repository

import (
	"context"
	"time"

	"SecureBank/internal/domain/models"
)

// EventSink receives an audit record for every successful prediction.
type EventSink interface {
	Publish(ctx context.Context, ev models.PredictionEvent) error
	Name() string
	Close() error
}

type Metrics interface {
	RecordBackendCall(endpoint, outcome string, d time.Duration)
	RecordPageLoad(page, state string)
	RecordPrediction(outcome string)
	RecordSinkError(sink string)
	RecordRateLimited(route string)
}
