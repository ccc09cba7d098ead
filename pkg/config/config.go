package config

import (
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/security/headers"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/metrics"
)

// Config is the root configuration structure for the gateway. It contains
// all configuration sections for the HTTP server, the security pipeline,
// rate-limit persistence, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server"`

	// Security contains the security pipeline configuration: response
	// headers and rate limiting.
	Security SecurityConfig `yaml:"security"`

	// Storage contains rate-limit persistence configuration.
	Storage StorageConfig `yaml:"storage"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful
	// shutdown before in-flight requests are abandoned.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// RequestTimeout is the per-request handler timeout enforced by the
	// timeout middleware. Zero disables it.
	// Default: 15s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// MaxBodyBytes limits the size of JSON request bodies accepted by the
	// API handlers.
	// Default: 1048576 (1MB)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// SecurityConfig contains the security pipeline configuration.
type SecurityConfig struct {
	// Headers configures the security response headers applied to every
	// response.
	Headers headers.Config `yaml:"headers"`

	// RateLimit configures per-client request rate limiting.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Window is the duration of one counting window.
	// Default: 1m
	Window time.Duration `yaml:"window"`

	// MaxRequests is the number of requests allowed per client per window.
	// Default: 100
	MaxRequests int `yaml:"max_requests"`

	// SweepSchedule is a cron expression for the background sweep that
	// removes expired windows and snapshots live ones to storage.
	// Empty disables the sweeper; expired windows are then only removed
	// by the per-request probabilistic cleanup.
	// Default: "* * * * *" (every minute)
	SweepSchedule string `yaml:"sweep_schedule"`
}

// StorageConfig contains rate-limit persistence configuration.
type StorageConfig struct {
	// Backend specifies the snapshot storage backend.
	// Options: "memory", "sqlite"
	// Default: "memory"
	Backend string `yaml:"backend"`

	// SQLite contains SQLite-specific configuration.
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// SQLiteConfig contains SQLite-specific configuration.
type SQLiteConfig struct {
	// Path is the file path for the SQLite database.
	// Default: "data/ratelimit.db"
	Path string `yaml:"path"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics metrics.Config `yaml:"metrics"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// RedactPII enables automatic redaction of emails, IP addresses, and
	// bearer tokens in log attribute values.
	// Default: true
	RedactPII bool `yaml:"redact_pii"`
}
