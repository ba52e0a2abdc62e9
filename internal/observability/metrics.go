package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrinet"

// Metrics owns a private prometheus registry. All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	httpInflight prometheus.Gauge

	predictions       *prometheus.CounterVec
	predictionErrors  *prometheus.CounterVec
	predictionLatency *prometheus.HistogramVec

	contactMessages prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Served predictions by class and whether they came from the cache.",
		}, []string{"class", "cached"}),
		predictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_errors_total",
			Help:      "Failed predictions by reason.",
		}, []string{"reason"}),
		predictionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent producing a prediction.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"cached"}),
		contactMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_messages_total",
			Help:      "Stored contact form messages.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpLatency,
		m.httpInflight,
		m.predictions,
		m.predictionErrors,
		m.predictionLatency,
		m.contactMessages,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) HTTPStarted() {
	if m == nil {
		return
	}
	m.httpInflight.Inc()
}

func (m *Metrics) HTTPFinished(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpInflight.Dec()
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObservePrediction(class string, cached bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	c := strconv.FormatBool(cached)
	m.predictions.WithLabelValues(class, c).Inc()
	m.predictionLatency.WithLabelValues(c).Observe(elapsed.Seconds())
}

func (m *Metrics) ObservePredictionError(reason string) {
	if m == nil {
		return
	}
	m.predictionErrors.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveContactMessage() {
	if m == nil {
		return
	}
	m.contactMessages.Inc()
}
