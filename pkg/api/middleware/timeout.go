package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout enforces a per-request deadline using context.WithTimeout. If
// the deadline is exceeded before the handler finishes, the client
// receives a 504 Gateway Timeout and the handler's context is cancelled.
// A zero or negative timeout disables the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(w, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					writeJSONError(w, http.StatusGatewayTimeout, map[string]string{
						"error": "Request timeout",
					})
				}
			}
		})
	}
}
