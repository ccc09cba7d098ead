package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a YAML file at the specified path. The file
// is unmarshaled over DefaultConfig, so omitted fields keep their defaults.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention NORDICS_SECTION_FIELD (e.g., NORDICS_SERVER_LISTEN_ADDRESS)
// and always take precedence over file-based configuration.
func LoadWithEnvOverrides(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("NORDICS_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("NORDICS_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("NORDICS_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("NORDICS_SERVER_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.RequestTimeout = d
		}
	}

	// Rate limit overrides
	if val := os.Getenv("NORDICS_RATE_LIMIT_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Security.RateLimit.Enabled = b
		}
	}
	if val := os.Getenv("NORDICS_RATE_LIMIT_WINDOW"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Security.RateLimit.Window = d
		}
	}
	if val := os.Getenv("NORDICS_RATE_LIMIT_MAX_REQUESTS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Security.RateLimit.MaxRequests = i
		}
	}
	if val := os.Getenv("NORDICS_RATE_LIMIT_SWEEP_SCHEDULE"); val != "" {
		cfg.Security.RateLimit.SweepSchedule = val
	}

	// Header overrides
	if val := os.Getenv("NORDICS_HEADERS_HSTS_MAX_AGE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Security.Headers.HSTSMaxAge = i
		}
	}
	if val := os.Getenv("NORDICS_HEADERS_HSTS_PRELOAD"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Security.Headers.HSTSPreload = b
		}
	}

	// Storage overrides
	if val := os.Getenv("NORDICS_STORAGE_BACKEND"); val != "" {
		cfg.Storage.Backend = val
	}
	if val := os.Getenv("NORDICS_STORAGE_SQLITE_PATH"); val != "" {
		cfg.Storage.SQLite.Path = val
	}

	// Telemetry overrides
	if val := os.Getenv("NORDICS_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("NORDICS_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("NORDICS_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("NORDICS_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
}
