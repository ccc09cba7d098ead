package middleware

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/ratelimit"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/metrics"
)

// Rate-limit response headers.
const (
	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
	RateLimitResetHeader     = "X-RateLimit-Reset"
)

// cleanupProbability is the per-request chance of sweeping expired
// windows inline. Roughly one request in a hundred pays the sweep cost,
// which keeps the table bounded without a dedicated timer even when the
// background sweeper is disabled.
const cleanupProbability = 0.01

// rateLimitedBody is the JSON body returned on denial.
type rateLimitedBody struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// RateLimit throttles requests per derived client identifier. Every
// response, allowed or denied, carries the X-RateLimit-Limit, Remaining,
// and Reset headers. Denied requests are answered with 429 and a JSON
// retry hint. The derived client identifier is stored in the request
// context for downstream handlers.
//
// Denials are logged at info level only; a throttled client is expected
// operation, not an error. The collector may be nil when metrics are
// disabled.
func RateLimit(limiter *ratelimit.Limiter, logger *logging.Logger, collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rand.Float64() < cleanupProbability {
				limiter.Cleanup()
				if collector != nil {
					collector.SetTrackedClients(limiter.Len())
				}
			}

			clientID := ClientID(r)
			ctx := context.WithValue(r.Context(), ClientIDKey, clientID)

			limited := limiter.IsRateLimited(clientID)
			setRateLimitHeaders(w, limiter, clientID)

			if limited {
				if collector != nil {
					collector.RecordRateLimited()
				}

				retryAfter := secondsUntil(limiter.ResetTime(clientID))
				logger.InfoContext(ctx, "request rate limited",
					"client_id", clientID,
					"path", r.URL.Path,
					"retry_after_s", retryAfter,
				)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeJSONError(w, http.StatusTooManyRequests, rateLimitedBody{
					Error:      "Too many requests",
					RetryAfter: retryAfter,
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// setRateLimitHeaders writes the three X-RateLimit headers for the client.
func setRateLimitHeaders(w http.ResponseWriter, limiter *ratelimit.Limiter, clientID string) {
	h := w.Header()
	h.Set(RateLimitLimitHeader, strconv.Itoa(limiter.MaxRequests()))
	h.Set(RateLimitRemainingHeader, strconv.Itoa(limiter.Remaining(clientID)))

	reset := limiter.ResetTime(clientID)
	if reset.IsZero() {
		h.Set(RateLimitResetHeader, "0")
	} else {
		h.Set(RateLimitResetHeader, strconv.FormatInt(reset.Unix(), 10))
	}
}

// secondsUntil returns the whole seconds until t, rounded up, never below
// one so that Retry-After is always a usable hint.
func secondsUntil(t time.Time) int {
	if t.IsZero() {
		return 1
	}
	d := time.Until(t)
	if d <= 0 {
		return 1
	}
	return int((d + time.Second - 1) / time.Second)
}
