// Package storage provides persistence backends for rate-limit window state.
//
// # Overview
//
// The limiter counts in memory; a Backend lets the gateway snapshot those
// counters and restore them after a restart so throttled clients cannot
// reset their windows by waiting for a redeploy. Two implementations are
// provided:
//
//   - Memory: keeps snapshots in-process. Used in tests and as the default
//     when persistence is not configured.
//   - SQLite: durable single-file persistence via modernc.org/sqlite.
//
// # Usage
//
//	backend, err := storage.NewSQLiteBackend("data/ratelimit.db")
//	...
//	err = backend.SaveAll(ctx, limiter.Snapshot())
//	entries, err := backend.LoadAll(ctx)
//	limiter.Restore(entries)
//
// # Thread Safety
//
// All backends are safe for concurrent use; locking is internal to each
// implementation.
package storage
