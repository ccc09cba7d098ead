package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config contains configuration for the metrics collector.
type Config struct {
	// Enabled controls whether the /metrics endpoint is exposed.
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus endpoint.
	// Default: "/metrics".
	Path string `yaml:"path"`

	// Namespace is the metric name prefix. Default: "nordics".
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem label. Default: "gateway".
	Subsystem string `yaml:"subsystem"`
}

// Collector registers and records all gateway metrics.
//
// Metrics:
//   - nordics_gateway_requests_total{method, status}
//   - nordics_gateway_request_duration_seconds{method}
//   - nordics_gateway_rate_limited_total
//   - nordics_gateway_rate_limit_tracked_clients
//   - nordics_gateway_validation_total{schema, outcome}
//
// Label cardinality is kept deliberately low: status and method are bounded
// sets, and schema names come from the fixed predefined-schema table, so no
// client-controlled value ever becomes a label.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	rateLimitedTotal prometheus.Counter
	trackedClients   prometheus.Gauge
	validationTotal  *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry. If registry is
// nil a fresh one is created.
func NewCollector(cfg Config, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "nordics"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "gateway"
	}

	c := &Collector{
		registry: registry,

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"method"},
		),

		rateLimitedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rate_limited_total",
				Help:      "Total number of requests denied by the rate limiter",
			},
		),

		trackedClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "rate_limit_tracked_clients",
				Help:      "Number of client identifiers currently tracked by the rate limiter",
			},
		),

		validationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "validation_total",
				Help:      "Schema validation outcomes by predefined schema",
			},
			[]string{"schema", "outcome"},
		),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.rateLimitedTotal,
		c.trackedClients,
		c.validationTotal,
	)

	return c
}

// RecordRequest records one completed request.
func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordRateLimited records one denied request.
func (c *Collector) RecordRateLimited() {
	c.rateLimitedTotal.Inc()
}

// SetTrackedClients updates the tracked-identifier gauge.
func (c *Collector) SetTrackedClients(n int) {
	c.trackedClients.Set(float64(n))
}

// RecordValidation records one schema validation outcome.
func (c *Collector) RecordValidation(schema string, valid bool) {
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	c.validationTotal.WithLabelValues(schema, outcome).Inc()
}
