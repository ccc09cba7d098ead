package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
)

// Recovery recovers from panics in HTTP handlers and returns a 500
// Internal Server Error response. The panic and stack trace are logged but
// not exposed to clients.
func Recovery(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic in handler",
						"error", err,
						"request_id", GetRequestID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					writeJSONError(w, http.StatusInternalServerError, map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
