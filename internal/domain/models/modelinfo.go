package models

// ModelInfo is the model metadata served by GET /api/model-info. Every metric
// is optional and stays invalid unless the backend sent a usable number.
type ModelInfo struct {
	ModelName string         `json:"model_name"`
	ModelType string         `json:"model_type"`
	Accuracy  Number         `json:"accuracy"`
	Precision Number         `json:"precision"`
	Recall    Number         `json:"recall"`
	F1Score   Number         `json:"F1-Score"`
	AUCROC    Number         `json:"AUC-ROC"`
	CVFolds   Integer        `json:"CV Folds"`
	CVScore   OptionalString `json:"CV Score"`
}

// Normalize truncates CV folds to an integer.
func (m *ModelInfo) Normalize() {
	if m.CVFolds.Valid {
		m.CVFolds = IntegerOf(m.CVFolds.Value)
	}
}
