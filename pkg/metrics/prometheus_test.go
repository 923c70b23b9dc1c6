package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordBackendCall("/predict", "ok", 120*time.Millisecond)
	r.RecordBackendCall("/predict", "ok", 80*time.Millisecond)
	r.RecordPageLoad("dashboard", "error")
	r.RecordPrediction("yes")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.backendCalls.WithLabelValues("/predict", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.pageLoads.WithLabelValues("dashboard", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.predictions.WithLabelValues("yes")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.backendLatency))
}
