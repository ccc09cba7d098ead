package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// ClientID derives the rate-limit client identifier from request headers,
// in priority order:
//
//  1. X-Forwarded-For: first comma-separated entry, trimmed
//  2. X-Real-IP
//  3. a 16-character hash of the User-Agent header
//
// The result is spoofable by any client that forges these headers when
// the gateway is not behind a trusted reverse proxy; it is best-effort
// attribution, not authentication.
func ClientID(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return hashUserAgent(r.UserAgent())
}

// hashUserAgent returns the first 16 hex characters of the SHA-256 of the
// User-Agent string. Weak attribution for clients with no usable address
// header; all clients sharing a User-Agent share a bucket.
func hashUserAgent(ua string) string {
	sum := sha256.Sum256([]byte(ua))
	return hex.EncodeToString(sum[:])[:16]
}
