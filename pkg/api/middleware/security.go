package middleware

import (
	"net/http"

	"github.com/SwineFeather/nordics-gateway/pkg/security/headers"
)

// SecurityHeaders applies the configured security headers to every
// response. The configuration is read through the source function on each
// request so that a hot reload takes effect without rebuilding the
// middleware chain.
func SecurityHeaders(source func() headers.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers.Apply(w.Header(), source())
			next.ServeHTTP(w, r)
		})
	}
}

// StaticSecurityHeaders applies a fixed header configuration. Convenience
// wrapper for callers that do not hot reload.
func StaticSecurityHeaders(cfg headers.Config) func(http.Handler) http.Handler {
	return SecurityHeaders(func() headers.Config { return cfg })
}
