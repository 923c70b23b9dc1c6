package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	backendCalls   *prometheus.CounterVec
	backendLatency *prometheus.HistogramVec
	pageLoads      *prometheus.CounterVec
	predictions    *prometheus.CounterVec
	sinkErrors     *prometheus.CounterVec
	rateLimited    *prometheus.CounterVec
}

// New creates a recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		backendCalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "securebank",
				Subsystem: "backend",
				Name:      "calls_total",
				Help:      "Backend calls by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		backendLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "securebank",
				Subsystem: "backend",
				Name:      "latency_seconds",
				Help:      "Latency of backend calls",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		pageLoads: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "securebank",
				Name:      "page_loads_total",
				Help:      "Page loads by page and final state",
			},
			[]string{"page", "state"},
		),
		predictions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "securebank",
				Name:      "predictions_total",
				Help:      "Prediction submissions by outcome",
			},
			[]string{"outcome"},
		),
		sinkErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "securebank",
				Name:      "event_sink_errors_total",
				Help:      "Prediction events that could not be published",
			},
			[]string{"sink"},
		),
		rateLimited: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "securebank",
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}
}

// RecordBackendCall records one backend round trip.
func (r *Recorder) RecordBackendCall(endpoint, outcome string, d time.Duration) {
	r.backendCalls.WithLabelValues(endpoint, outcome).Inc()
	r.backendLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}

// RecordPageLoad records the state a page load settled in.
func (r *Recorder) RecordPageLoad(page, state string) {
	r.pageLoads.WithLabelValues(page, state).Inc()
}

// RecordPrediction records a prediction outcome: yes, no or error.
func (r *Recorder) RecordPrediction(outcome string) {
	r.predictions.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordSinkError(sink string) {
	r.sinkErrors.WithLabelValues(sink).Inc()
}

func (r *Recorder) RecordRateLimited(route string) {
	r.rateLimited.WithLabelValues(route).Inc()
}
