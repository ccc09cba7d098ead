// Package middleware provides the HTTP middleware for the gateway's
// security pipeline.
//
// # Middleware Chain
//
// Middleware functions are chained in a specific order:
//
//	handler = Recovery(Logging(RequestID(SecurityHeaders(RateLimit(Timeout(handler))))))
//
// Order (outermost to innermost):
//  1. Recovery: convert panics into 500 responses
//  2. Logging: log request/response details, record metrics
//  3. RequestID: generate and propagate a request ID
//  4. SecurityHeaders: apply the security response headers
//  5. RateLimit: per-client request throttling
//  6. Timeout: enforce a per-request deadline
//
// SecurityHeaders runs before RateLimit so that even throttled responses
// carry the full header set.
//
// # Client identification
//
// The rate limiter keys clients by an identifier derived from request
// headers, in priority order: the first X-Forwarded-For entry, then
// X-Real-IP, then a 16-character hash of the User-Agent. The derivation
// is best effort. Any client that forges these headers can pick its own
// bucket when the gateway is not behind a trusted reverse proxy.
//
// # Rate-limit responses
//
// Every response passing through RateLimit carries X-RateLimit-Limit,
// X-RateLimit-Remaining, and X-RateLimit-Reset headers. Denied requests
// are answered with status 429 and a JSON body:
//
//	{"error": "Too many requests", "retryAfter": 42}
//
// where retryAfter is the number of seconds until the client's window
// resets.
package middleware
