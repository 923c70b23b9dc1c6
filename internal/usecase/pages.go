package usecase

// Page names, used in routes and metric labels.
const (
	PagePrediction = "prediction"
	PageDashboard  = "dashboard"
	PageInsights   = "insights"
	PageModelInfo  = "model-info"
)
