package models

// Prediction outcomes returned by the model.
const (
	OutcomeYes = "yes"
	OutcomeNo  = "no"
)

// PredictionResponse is the raw body of POST /predict.
type PredictionResponse struct {
	Prediction     string `json:"prediction"`
	ProbabilityYes Number `json:"probability_yes"`
	Error          string `json:"error,omitempty"`
}

// PredictionResult is a successful prediction.
type PredictionResult struct {
	Prediction     string `json:"prediction"`
	ProbabilityYes Number `json:"probability_yes"`
}

// Subscribes reports whether the model predicts a term deposit subscription.
func (r PredictionResult) Subscribes() bool {
	return r.Prediction == OutcomeYes
}
