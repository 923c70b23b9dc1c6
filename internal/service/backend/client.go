package backend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"SecureBank/internal/domain/models"
	"SecureBank/internal/domain/repository"
	"SecureBank/internal/domain/service"
	"SecureBank/pkg/config"
	xhttp "SecureBank/pkg/http"
	applogger "SecureBank/pkg/logger"
)

var _ service.BackendAPI = (*Client)(nil)

// Client calls the prediction backend. Every failure is an *APIError.
type Client struct {
	baseURL string
	http    *xhttp.Client
	metrics repository.Metrics
	log     *applogger.Logger
}

// NewClient builds a backend client from config.
func NewClient(cfg *config.Config, m repository.Metrics, l *applogger.Logger, opts ...xhttp.ClientOption) *Client {
	opts = append([]xhttp.ClientOption{
		xhttp.WithTimeout(cfg.Backend.Timeout),
		xhttp.WithDecoder(decodeLenient),
	}, opts...)
	if l == nil {
		l = applogger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    xhttp.NewClient(opts...),
		metrics: m,
		log:     l,
	}
}

func (c *Client) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error) {
	var resp models.PredictionResponse
	if err := c.call(ctx, xhttp.MethodPost, service.EndpointPredict, req, &resp); err != nil {
		return models.PredictionResult{}, err
	}
	if resp.Error != "" {
		return models.PredictionResult{}, &APIError{Kind: KindPayload, Endpoint: service.EndpointPredict, Message: resp.Error}
	}
	if resp.Prediction == "" {
		return models.PredictionResult{}, &APIError{
			Kind:     KindPayload,
			Endpoint: service.EndpointPredict,
			Err:      errors.New("response has no prediction"),
		}
	}
	return models.PredictionResult{
		Prediction:     strings.ToLower(resp.Prediction),
		ProbabilityYes: resp.ProbabilityYes,
	}, nil
}

func (c *Client) TargetDistribution(ctx context.Context) ([]models.TargetDistributionPoint, error) {
	var out []models.TargetDistributionPoint
	err := c.call(ctx, xhttp.MethodGet, service.EndpointTargetDistribution, nil, &out)
	return out, err
}

func (c *Client) JobSuccessRate(ctx context.Context) ([]models.JobSuccessPoint, error) {
	var out []models.JobSuccessPoint
	err := c.call(ctx, xhttp.MethodGet, service.EndpointJobSuccessRate, nil, &out)
	return out, err
}

func (c *Client) AgeDistribution(ctx context.Context) ([]models.AgeDistributionPoint, error) {
	var out []models.AgeDistributionPoint
	err := c.call(ctx, xhttp.MethodGet, service.EndpointAgeDistribution, nil, &out)
	return out, err
}

func (c *Client) BalanceDurationSample(ctx context.Context) ([]models.BalanceDurationSample, error) {
	var out []models.BalanceDurationSample
	err := c.call(ctx, xhttp.MethodGet, service.EndpointBalanceDurationSample, nil, &out)
	return out, err
}

func (c *Client) ModelInfo(ctx context.Context) (models.ModelInfo, error) {
	var out models.ModelInfo
	err := c.call(ctx, xhttp.MethodGet, service.EndpointModelInfo, nil, &out)
	return out, err
}

func (c *Client) call(ctx context.Context, method, endpoint string, payload, dest interface{}) error {
	start := time.Now()
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: method,
		URL:    c.baseURL + endpoint,
		Body:   payload,
	}, dest)
	elapsed := time.Since(start)

	if err == nil {
		c.record(endpoint, "ok", elapsed)
		c.log.Debug("backend call",
			applogger.String("method", method),
			applogger.String("endpoint", endpoint),
			applogger.Duration("latency_ms", elapsed),
		)
		return nil
	}

	apiErr := classify(endpoint, err)
	c.record(endpoint, apiErr.Kind.String(), elapsed)
	if ctx.Err() == nil {
		c.log.Warn("backend call failed",
			applogger.String("method", method),
			applogger.String("endpoint", endpoint),
			applogger.String("kind", apiErr.Kind.String()),
			applogger.Int("status", apiErr.Status),
			applogger.Duration("latency_ms", elapsed),
			applogger.Error(err),
		)
	}
	return apiErr
}

func (c *Client) record(endpoint, outcome string, d time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordBackendCall(endpoint, outcome, d)
	}
}

func classify(endpoint string, err error) *APIError {
	var statusErr *xhttp.StatusError
	if errors.As(err, &statusErr) {
		return &APIError{
			Kind:     KindStatus,
			Endpoint: endpoint,
			Status:   statusErr.StatusCode,
			Message:  extractMessage(statusErr.Body),
			Err:      err,
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &APIError{Kind: KindPayload, Endpoint: endpoint, Err: err}
	}

	return &APIError{Kind: KindTransport, Endpoint: endpoint, Err: err}
}
