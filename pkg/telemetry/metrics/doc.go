// Package metrics exposes Prometheus metrics for the gateway's security
// pipeline: request throughput and latency, rate-limit denials, and schema
// validation outcomes.
//
// The Collector owns a private registry so tests can instantiate isolated
// collectors without global-registry collisions. Mount Collector.Handler()
// at the configured metrics path (typically "/metrics") to expose them.
package metrics
