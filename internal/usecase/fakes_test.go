package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/service/backend"
)

type fakeBackend struct {
	predict   func(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error)
	target    func(ctx context.Context) ([]models.TargetDistributionPoint, error)
	jobs      func(ctx context.Context) ([]models.JobSuccessPoint, error)
	ages      func(ctx context.Context) ([]models.AgeDistributionPoint, error)
	sample    func(ctx context.Context) ([]models.BalanceDurationSample, error)
	modelInfo func(ctx context.Context) (models.ModelInfo, error)
}

func (f *fakeBackend) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error) {
	return f.predict(ctx, req)
}

func (f *fakeBackend) TargetDistribution(ctx context.Context) ([]models.TargetDistributionPoint, error) {
	return f.target(ctx)
}

func (f *fakeBackend) JobSuccessRate(ctx context.Context) ([]models.JobSuccessPoint, error) {
	return f.jobs(ctx)
}

func (f *fakeBackend) AgeDistribution(ctx context.Context) ([]models.AgeDistributionPoint, error) {
	return f.ages(ctx)
}

func (f *fakeBackend) BalanceDurationSample(ctx context.Context) ([]models.BalanceDurationSample, error) {
	return f.sample(ctx)
}

func (f *fakeBackend) ModelInfo(ctx context.Context) (models.ModelInfo, error) {
	return f.modelInfo(ctx)
}

func statusErr(endpoint string, status int, msg string) error {
	return &backend.APIError{Kind: backend.KindStatus, Endpoint: endpoint, Status: status, Message: msg}
}

func transportErr(endpoint string) error {
	return &backend.APIError{Kind: backend.KindTransport, Endpoint: endpoint, Err: errors.New("connection refused")}
}

type fakeSink struct {
	mu     sync.Mutex
	events []models.PredictionEvent
	err    error
}

func (s *fakeSink) Publish(_ context.Context, ev models.PredictionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func (s *fakeSink) Name() string { return "fake" }
func (s *fakeSink) Close() error { return nil }

type fakeMetrics struct {
	mu          sync.Mutex
	pageLoads   []string
	predictions []string
	sinkErrors  int
}

func (m *fakeMetrics) RecordBackendCall(string, string, time.Duration) {}

func (m *fakeMetrics) RecordPageLoad(page, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageLoads = append(m.pageLoads, page+":"+state)
}

func (m *fakeMetrics) RecordPrediction(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictions = append(m.predictions, outcome)
}

func (m *fakeMetrics) RecordSinkError(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sinkErrors++
}

func (m *fakeMetrics) RecordRateLimited(string) {}
