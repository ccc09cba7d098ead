package config

import (
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/security/headers"
	"github.com/SwineFeather/nordics-gateway/pkg/telemetry/metrics"
)

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRequestTimeout  = 15 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB
	DefaultMaxBodyBytes    = int64(1048576)

	// Rate limit defaults
	DefaultRateLimitEnabled     = true
	DefaultRateLimitWindow      = time.Minute
	DefaultRateLimitMaxRequests = 100
	DefaultSweepSchedule        = "* * * * *"

	// Storage defaults
	DefaultStorageBackend    = "memory"
	DefaultSQLitePath        = "data/ratelimit.db"
	DefaultSQLiteBusyTimeout = 5 * time.Second

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultLoggingRedactPII = true
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "nordics"
	DefaultMetricsSubsystem = "gateway"
)

// DefaultConfig returns a fully populated configuration with all defaults
// applied. Loading unmarshals the YAML file over this value, so fields the
// file omits keep their defaults, including booleans that default to true.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddress:   DefaultListenAddress,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			RequestTimeout:  DefaultRequestTimeout,
			MaxHeaderBytes:  DefaultMaxHeaderBytes,
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		Security: SecurityConfig{
			Headers: headers.DefaultConfig(),
			RateLimit: RateLimitConfig{
				Enabled:       DefaultRateLimitEnabled,
				Window:        DefaultRateLimitWindow,
				MaxRequests:   DefaultRateLimitMaxRequests,
				SweepSchedule: DefaultSweepSchedule,
			},
		},
		Storage: StorageConfig{
			Backend: DefaultStorageBackend,
			SQLite: SQLiteConfig{
				Path:        DefaultSQLitePath,
				BusyTimeout: DefaultSQLiteBusyTimeout,
			},
		},
		Telemetry: TelemetryConfig{
			Logging: LoggingConfig{
				Level:     DefaultLoggingLevel,
				Format:    DefaultLoggingFormat,
				RedactPII: DefaultLoggingRedactPII,
			},
			Metrics: metrics.Config{
				Enabled:   DefaultMetricsEnabled,
				Path:      DefaultMetricsPath,
				Namespace: DefaultMetricsNamespace,
				Subsystem: DefaultMetricsSubsystem,
			},
		},
	}
}

// ApplyDefaults fills zero-valued fields with defaults. It is idempotent
// and safe to call multiple times. Boolean fields are not touched; use
// DefaultConfig as the unmarshal base to preserve true defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if cfg.Security.RateLimit.Window == 0 {
		cfg.Security.RateLimit.Window = DefaultRateLimitWindow
	}
	if cfg.Security.RateLimit.MaxRequests == 0 {
		cfg.Security.RateLimit.MaxRequests = DefaultRateLimitMaxRequests
	}
	if cfg.Security.Headers.HSTSMaxAge == 0 {
		cfg.Security.Headers.HSTSMaxAge = headers.DefaultHSTSMaxAge
	}
	if len(cfg.Security.Headers.CSPDirectives) == 0 {
		cfg.Security.Headers.CSPDirectives = headers.DefaultCSPDirectives()
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultStorageBackend
	}
	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = DefaultSQLitePath
	}
	if cfg.Storage.SQLite.BusyTimeout == 0 {
		cfg.Storage.SQLite.BusyTimeout = DefaultSQLiteBusyTimeout
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
}
