package storage

import (
	"context"
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/ratelimit"
)

// Backend persists rate-limit window snapshots. Implementations must be
// safe for concurrent use.
type Backend interface {
	// SaveAll replaces the stored snapshot with the given entries.
	SaveAll(ctx context.Context, entries []ratelimit.Entry) error

	// LoadAll returns the stored snapshot. A missing or empty snapshot
	// returns an empty slice, not an error.
	LoadAll(ctx context.Context) ([]ratelimit.Entry, error)

	// Purge removes stored entries whose window expired before the given
	// time and returns the number removed.
	Purge(ctx context.Context, before time.Time) (int, error)

	// Close releases backend resources. The backend must not be used
	// after Close.
	Close() error
}
