package service

import (
	"context"

	"SecureBank/internal/domain/models"
)

// BackendAPI is the prediction backend as seen by the page controllers.
type BackendAPI interface {
	Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error)
	TargetDistribution(ctx context.Context) ([]models.TargetDistributionPoint, error)
	JobSuccessRate(ctx context.Context) ([]models.JobSuccessPoint, error)
	AgeDistribution(ctx context.Context) ([]models.AgeDistributionPoint, error)
	BalanceDurationSample(ctx context.Context) ([]models.BalanceDurationSample, error)
	ModelInfo(ctx context.Context) (models.ModelInfo, error)
}

// Backend endpoint paths.
const (
	EndpointPredict               = "/predict"
	EndpointTargetDistribution    = "/api/dashboard/target-distribution"
	EndpointJobSuccessRate        = "/api/dashboard/job-success-rate"
	EndpointAgeDistribution       = "/api/insights/age-distribution"
	EndpointBalanceDurationSample = "/api/insights/balance-duration-sample"
	EndpointModelInfo             = "/api/model-info"
)
