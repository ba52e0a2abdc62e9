package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.ObservePrediction("Corn___Healthy", false, 20*time.Millisecond)
	m.ObservePrediction("Corn___Healthy", true, time.Millisecond)
	m.ObservePredictionError("invalid_image")
	m.ObserveContactMessage()
	m.HTTPStarted()
	m.HTTPFinished("GET", "/", 200, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("Corn___Healthy", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictions.WithLabelValues("Corn___Healthy", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.predictionErrors.WithLabelValues("invalid_image")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contactMessages))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInflight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/", "200")))
}

func TestMetricsHandlerExposesNamespace(t *testing.T) {
	m := NewMetrics()
	m.ObserveContactMessage()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "agrinet_contact_messages_total 1"), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObservePrediction("x", false, time.Second)
	m.ObservePredictionError("x")
	m.ObserveContactMessage()
	m.HTTPStarted()
	m.HTTPFinished("GET", "/", 200, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOtelHeaders(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=abc, broken, =nokey, x-team = agri ")
	assert.Equal(t, map[string]string{"x-api-key": "abc", "x-team": "agri"}, otelHeaders())

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	assert.Nil(t, otelHeaders())
}

func TestSampleRatioClamped(t *testing.T) {
	t.Setenv("OTEL_SAMPLER_RATIO", "4")
	assert.Equal(t, 1.0, sampleRatio())
	t.Setenv("OTEL_SAMPLER_RATIO", "-1")
	assert.Equal(t, 0.0, sampleRatio())
	t.Setenv("OTEL_SAMPLER_RATIO", "")
	assert.Equal(t, 0.1, sampleRatio())
}
