package models

import (
	"time"

	"github.com/google/uuid"
)

// PredictionEvent records one successful prediction for auditing.
type PredictionEvent struct {
	ID             string            `json:"id"`
	Time           time.Time         `json:"time"`
	Input          PredictionRequest `json:"input"`
	Prediction     string            `json:"prediction"`
	ProbabilityYes float64           `json:"probability_yes"`
	LatencyMs      int64             `json:"latency_ms"`
}

// NewPredictionEvent stamps a result with a fresh ID.
func NewPredictionEvent(at time.Time, in PredictionRequest, res PredictionResult, latency time.Duration) PredictionEvent {
	return PredictionEvent{
		ID:             uuid.NewString(),
		Time:           at.UTC(),
		Input:          in,
		Prediction:     res.Prediction,
		ProbabilityYes: res.ProbabilityYes.OrZero(),
		LatencyMs:      latency.Milliseconds(),
	}
}
