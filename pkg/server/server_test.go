package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/config"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Security.RateLimit.SweepSchedule = ""
	if mutate != nil {
		mutate(&cfg)
	}

	logger, err := logging.New(logging.Config{Level: "error", Format: "json", Writer: io.Discard})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	s, err := New(&cfg, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestPipelineAppliesAllHeaderFamilies(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("X-Real-IP", "198.51.100.9")
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, name := range []string{
		"Content-Security-Policy",
		"Strict-Transport-Security",
		"Permissions-Policy",
		"X-Frame-Options",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-Request-ID",
	} {
		if rec.Header().Get(name) == "" {
			t.Errorf("header %s missing from pipeline response", name)
		}
	}
}

func TestPipelineThrottlesAndKeepsHeaders(t *testing.T) {
	handler := newTestServer(t, func(cfg *config.Config) {
		cfg.Security.RateLimit.MaxRequests = 2
	}).Handler()

	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("X-Real-IP", "198.51.100.9")
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("throttled response lost its security headers")
	}

	var body struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retryAfter"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("denial body is not JSON: %v", err)
	}
	if body.Error != "Too many requests" || body.RetryAfter < 1 {
		t.Errorf("denial body = %+v", body)
	}
}

func TestPipelineValidatesPayloads(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	r := httptest.NewRequest(http.MethodPost, "/api/forum/posts",
		strings.NewReader(`{"title": "", "content": "hi", "category_id": "nope"}`))
	r.Header.Set("X-Real-IP", "198.51.100.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestMetricsEndpointServed(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	r := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.Header.Set("X-Real-IP", "198.51.100.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestApplyConfigSwapsThresholds(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Security.RateLimit.MaxRequests = 1
	})
	handler := s.Handler()

	send := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.Header.Set("X-Real-IP", "198.51.100.9")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		return rec
	}

	send()
	if rec := send(); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}

	reloaded := config.DefaultConfig()
	reloaded.Security.RateLimit.MaxRequests = 100
	reloaded.Security.RateLimit.Window = time.Minute
	reloaded.Security.Headers.EnableHSTS = false
	s.ApplyConfig(&reloaded)

	rec := send()
	if rec.Code != http.StatusOK {
		t.Fatalf("post-reload status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("reloaded header policy not applied")
	}
}

func TestUnknownRouteGets404WithHeaders(t *testing.T) {
	handler := newTestServer(t, nil).Handler()

	r := httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.Header.Set("X-Real-IP", "198.51.100.9")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("404 response missing security headers")
	}
}
