// Package server assembles the gateway: the HTTP server, the middleware
// chain, the API endpoints, rate-limit persistence, and the background
// sweeper.
//
// # Request pipeline
//
// Every request passes through the chain
//
//	Recovery -> Logging -> RequestID -> SecurityHeaders -> RateLimit -> Timeout -> mux
//
// so that even rate-limited responses carry the full security header set
// and appear in logs and metrics.
//
// # Lifecycle
//
// [New] wires the components from a validated configuration. [Server.Start]
// restores rate-limit windows from the storage backend, starts the sweeper,
// and serves until the context is cancelled or SIGINT/SIGTERM arrives.
// Shutdown drains in-flight requests within the configured timeout and
// snapshots live rate-limit windows back to storage so counters survive a
// restart.
//
// # Hot reload
//
// [Server.ApplyConfig] swaps the runtime-safe parts of the configuration:
// security header policy and rate-limit thresholds. Listen addresses,
// storage backends, and telemetry wiring require a restart.
package server
