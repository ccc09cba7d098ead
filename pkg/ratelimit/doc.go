// Package ratelimit bounds the request rate per client identifier over a
// recurring fixed window.
//
// # Overview
//
// Each identifier owns one window entry: a counter and a reset deadline.
// The first request from an identifier (or the first after the deadline)
// opens a fresh window with count 1. Requests inside the window increment
// the counter until the configured maximum, after which they are denied
// without incrementing.
//
// Expired entries are removed two ways: opportunistically (the middleware
// triggers a cleanup on roughly 1% of requests) and on a cron schedule via
// the Sweeper, so a flood of spoofed identifiers cannot grow the table
// unboundedly between requests.
//
// # Persistence
//
// The limiter itself is in-memory. The storage subpackage provides optional
// snapshot persistence so counters survive a restart; without it a restart
// resets all windows. This is best-effort, single-process protection, not a
// substitute for an edge-level limiter under adversarial load.
//
// # Thread Safety
//
// Requests are served on OS threads, so the increment-and-compare step is
// guarded by a mutex. All methods are safe for concurrent use.
package ratelimit
