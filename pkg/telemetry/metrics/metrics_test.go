package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCollectorRecordsRequests(t *testing.T) {
	c := NewCollector(Config{}, nil)

	c.RecordRequest(http.MethodGet, 200, 15*time.Millisecond)
	c.RecordRequest(http.MethodGet, 200, 5*time.Millisecond)
	c.RecordRequest(http.MethodPost, 429, time.Millisecond)
	c.RecordRateLimited()
	c.RecordValidation("user_profile", false)
	c.SetTrackedClients(7)

	body := scrape(t, c)

	for _, want := range []string{
		`nordics_gateway_requests_total{method="GET",status="200"} 2`,
		`nordics_gateway_requests_total{method="POST",status="429"} 1`,
		`nordics_gateway_rate_limited_total 1`,
		`nordics_gateway_rate_limit_tracked_clients 7`,
		`nordics_gateway_validation_total{outcome="invalid",schema="user_profile"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestCollectorIsolatedRegistries(t *testing.T) {
	a := NewCollector(Config{}, nil)
	b := NewCollector(Config{}, nil)

	a.RecordRateLimited()

	if strings.Contains(scrape(t, b), "nordics_gateway_rate_limited_total 1") {
		t.Error("collectors share state across registries")
	}
}

func TestCollectorCustomNamespace(t *testing.T) {
	c := NewCollector(Config{Namespace: "test", Subsystem: "suite"}, nil)
	c.RecordRateLimited()

	if !strings.Contains(scrape(t, c), "test_suite_rate_limited_total 1") {
		t.Error("custom namespace not applied")
	}
}

func scrape(t *testing.T, c *Collector) string {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	return rec.Body.String()
}
