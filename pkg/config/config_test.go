package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want %q", cfg.Server.ListenAddress, DefaultListenAddress)
	}
	if cfg.Security.RateLimit.MaxRequests != DefaultRateLimitMaxRequests {
		t.Errorf("MaxRequests = %d, want %d", cfg.Security.RateLimit.MaxRequests, DefaultRateLimitMaxRequests)
	}
	if !cfg.Security.RateLimit.Enabled {
		t.Error("rate limiting should default to enabled")
	}
	if !cfg.Security.Headers.EnableCSP || !cfg.Security.Headers.EnableHSTS {
		t.Error("security headers should default to enabled")
	}
	if !cfg.Telemetry.Logging.RedactPII {
		t.Error("PII redaction should default to enabled")
	}
	if cfg.Telemetry.Metrics.Path != DefaultMetricsPath {
		t.Errorf("metrics path = %q, want %q", cfg.Telemetry.Metrics.Path, DefaultMetricsPath)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, `
server:
  listen_address: "0.0.0.0:9090"
  request_timeout: 5s
security:
  rate_limit:
    max_requests: 20
    window: 30s
  headers:
    enable_hsts: false
storage:
  backend: sqlite
  sqlite:
    path: /tmp/rl.db
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.Server.RequestTimeout)
	}
	if cfg.Security.RateLimit.MaxRequests != 20 || cfg.Security.RateLimit.Window != 30*time.Second {
		t.Errorf("rate limit = %+v", cfg.Security.RateLimit)
	}
	if cfg.Security.Headers.EnableHSTS {
		t.Error("explicit enable_hsts: false was not honored")
	}
	if !cfg.Security.Headers.EnableCSP {
		t.Error("omitted enable_csp lost its true default")
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.SQLite.Path != "/tmp/rl.db" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load() with missing file should fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeConfigFile(t, "server: [unclosed")); err == nil {
		t.Fatal("Load() with malformed YAML should fail")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("NORDICS_SERVER_LISTEN_ADDRESS", "127.0.0.1:7070")
	t.Setenv("NORDICS_RATE_LIMIT_MAX_REQUESTS", "250")
	t.Setenv("NORDICS_RATE_LIMIT_ENABLED", "false")
	t.Setenv("NORDICS_LOGGING_LEVEL", "debug")

	cfg, err := LoadWithEnvOverrides(writeConfigFile(t, `
server:
  listen_address: "0.0.0.0:9090"
`))
	if err != nil {
		t.Fatalf("LoadWithEnvOverrides() error = %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:7070" {
		t.Errorf("env override lost: ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Security.RateLimit.MaxRequests != 250 {
		t.Errorf("MaxRequests = %d, want 250", cfg.Security.RateLimit.MaxRequests)
	}
	if cfg.Security.RateLimit.Enabled {
		t.Error("NORDICS_RATE_LIMIT_ENABLED=false was not honored")
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Telemetry.Logging.Level)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.ListenAddress = "no-port"
	cfg.Security.RateLimit.MaxRequests = -1
	cfg.Storage.Backend = "redis"
	cfg.Telemetry.Logging.Level = "verbose"

	err := Validate(&cfg)
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want ValidationError", err)
	}
	if len(verr.Errors) != 4 {
		t.Errorf("got %d errors, want 4: %v", len(verr.Errors), verr)
	}
	if !strings.Contains(verr.Error(), "storage.backend") {
		t.Errorf("error message missing field path: %v", verr)
	}
}

func TestValidateSweepSchedule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Security.RateLimit.SweepSchedule = "not a cron"
	if Validate(&cfg) == nil {
		t.Error("invalid cron expression should fail validation")
	}

	cfg.Security.RateLimit.SweepSchedule = ""
	if err := Validate(&cfg); err != nil {
		t.Errorf("empty sweep schedule should be valid, got %v", err)
	}
}

func TestValidateDisabledRateLimitSkipsChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Security.RateLimit.Enabled = false
	cfg.Security.RateLimit.MaxRequests = 0

	if err := Validate(&cfg); err != nil {
		t.Errorf("disabled rate limit should skip threshold checks, got %v", err)
	}
}

func TestApplyDefaultsIdempotent(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)
	before := cfg
	ApplyDefaults(&cfg)

	if cfg.Server != before.Server || cfg.Storage != before.Storage {
		t.Error("ApplyDefaults is not idempotent")
	}
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()

	fired := make(chan struct{}, 10)
	for i := 0; i < 5; i++ {
		d.trigger(func() { fired <- struct{}{} })
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}

	select {
	case <-fired:
		t.Error("burst of 5 triggers fired more than once")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.trigger(func() { fired <- struct{}{} })
	d.stop()

	select {
	case <-fired:
		t.Error("callback fired after stop")
	case <-time.After(100 * time.Millisecond):
	}
}
