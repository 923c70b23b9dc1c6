package messages

// Error message keys.
const (
	DashboardTargetFailed = "dashboard.error.target"
	DashboardJobFailed    = "dashboard.error.job"
	DashboardGeneric      = "dashboard.error.generic"

	InsightsAgeFailed    = "insights.error.age"
	InsightsSampleFailed = "insights.error.sample"
	InsightsGeneric      = "insights.error.generic"

	ModelInfoFailed  = "modelinfo.error.fetch"
	ModelInfoGeneric = "modelinfo.error.generic"

	PredictHTTPStatus = "predict.error.status"
	PredictGeneric    = "predict.error.generic"
	PredictRateLimit  = "predict.error.ratelimit"
	PredictInvalid    = "predict.error.invalid"
)
