package handlers

import (
	"net/http"
	"sort"

	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/metrics"
	"github.com/SwineFeather/nordics-gateway/pkg/validation"
)

// Handlers bundles the API endpoints with their shared dependencies.
type Handlers struct {
	validator *validation.Validator
	logger    *logging.Logger
	collector *metrics.Collector

	// maxBodyBytes bounds accepted JSON request bodies.
	maxBodyBytes int64
}

// Options configures a Handlers instance.
type Options struct {
	// Validator performs schema validation. Required.
	Validator *validation.Validator

	// Logger receives handler logs. Required.
	Logger *logging.Logger

	// Collector records validation metrics. May be nil when metrics are
	// disabled.
	Collector *metrics.Collector

	// MaxBodyBytes bounds accepted JSON request bodies. Zero means 1MB.
	MaxBodyBytes int64
}

// New creates the endpoint set.
func New(opts Options) *Handlers {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	return &Handlers{
		validator:    opts.Validator,
		logger:       opts.Logger,
		collector:    opts.Collector,
		maxBodyBytes: opts.MaxBodyBytes,
	}
}

// observeValidation records a validation outcome and logs failures at
// debug level. Failed validation is expected traffic, not an error.
func (h *Handlers) observeValidation(r *http.Request, schema string, result *validation.Result) {
	if h.collector != nil {
		h.collector.RecordValidation(schema, result.IsValid)
	}
	if !result.IsValid {
		fields := make([]string, 0, len(result.Errors))
		for field := range result.Errors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		h.logger.DebugContext(r.Context(), "validation failed",
			"schema", schema,
			"fields", fields,
		)
	}
}
