//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/config"
	"github.com/SwineFeather/nordics-gateway/pkg/server"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/logging"
)

// TestGatewayEndToEnd runs the full pipeline over a real listener: schema
// validation, rate limiting, security headers, and metrics exposition.
func TestGatewayEndToEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Security.RateLimit.MaxRequests = 5
	cfg.Security.RateLimit.Window = time.Minute
	cfg.Security.RateLimit.SweepSchedule = ""

	logger, err := logging.New(logging.Config{Level: "error", Format: "json", Writer: io.Discard})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	srv, err := server.New(&cfg, logger)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := ts.Client()

	post := func(path, body, ip string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(body))
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Real-IP", ip)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		return resp
	}

	// A valid forum post passes validation and gets an ID.
	resp := post("/api/forum/posts", `{
		"title": "Ice road opens this weekend",
		"content": "The northern crossing is frozen solid again.",
		"category_id": "3f2aa6c1-9f14-4a8b-8b6e-1d2c3b4a5f60"
	}`, "203.0.113.10")

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("valid post status = %d, want 201", resp.StatusCode)
	}
	if resp.Header.Get("Content-Security-Policy") == "" {
		t.Error("security headers missing on API response")
	}
	if resp.Header.Get("X-RateLimit-Remaining") == "" {
		t.Error("rate-limit headers missing on API response")
	}
	var created map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if created["id"] == "" {
		t.Error("created post has no id")
	}

	// An invalid payload is rejected with per-field errors.
	resp = post("/api/forum/posts", `{"title": ""}`, "203.0.113.10")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid post status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	// Exhausting the window throttles the client but not others.
	for i := 0; i < 10; i++ {
		resp = post("/api/forum/comments", `{"content": "hello"}`, "203.0.113.20")
		resp.Body.Close()
	}
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("burst status = %d, want 429", resp.StatusCode)
	}
	if resp.Header.Get("Retry-After") == "" {
		t.Error("Retry-After missing on throttled response")
	}

	resp = post("/api/forum/comments", `{"content": "hello"}`, "203.0.113.21")
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("other client status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()

	// The metrics endpoint reports the traffic above.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/metrics", nil)
	req.Header.Set("X-Real-IP", "203.0.113.30")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("metrics scrape: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	for _, want := range []string{
		"nordics_gateway_requests_total",
		"nordics_gateway_rate_limited_total",
		fmt.Sprintf("nordics_gateway_validation_total{outcome=%q,schema=%q}", "valid", "forum_post"),
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}
