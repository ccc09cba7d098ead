package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/metrics"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader captures the status code before writing.
func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.written = true
		rw.ResponseWriter.WriteHeader(code)
	}
}

// Write ensures WriteHeader is called if not already done.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Logging logs each request with method, path, status, latency, and
// request ID, and records request metrics. Completed 5xx responses are
// logged at error level and 4xx at warn level. The collector may be nil
// when metrics are disabled.
func Logging(logger *logging.Logger, collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			ctx := context.WithValue(r.Context(), StartTimeKey, startTime)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			latency := time.Since(startTime)
			if collector != nil {
				collector.RecordRequest(r.Method, rw.statusCode, latency)
			}

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"latency_ms", latency.Milliseconds(),
				"request_id", GetRequestID(ctx),
				"remote_addr", r.RemoteAddr,
			}
			switch {
			case rw.statusCode >= 500:
				logger.ErrorContext(ctx, "request completed", args...)
			case rw.statusCode >= 400:
				logger.WarnContext(ctx, "request completed", args...)
			default:
				logger.InfoContext(ctx, "request completed", args...)
			}
		})
	}
}
