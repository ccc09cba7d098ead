// Package telemetry groups the gateway's observability components.
//
// # Components
//
//   - logging: structured logging (log/slog) with PII redaction
//   - metrics: Prometheus metrics collection
//
// Both are constructed from the telemetry section of the configuration and
// injected into the server; nothing here is a process-wide singleton, so
// tests can build isolated instances.
package telemetry
