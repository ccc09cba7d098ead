package ratelimit

import (
	"sync"
	"time"
)

// Config contains configuration for the fixed-window limiter.
type Config struct {
	// Enabled turns rate limiting on. When false the limiter is a pure
	// bypass: every request is allowed and no entries are created.
	Enabled bool

	// Window is the duration of one counting window.
	Window time.Duration

	// MaxRequests is the number of requests allowed per identifier per
	// window.
	MaxRequests int
}

// DefaultConfig returns the default limiter configuration: 100 requests per
// identifier per minute.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Window:      time.Minute,
		MaxRequests: 100,
	}
}

// Entry is the persisted form of one identifier's window state.
type Entry struct {
	// Identifier is the client identifier the window belongs to.
	Identifier string

	// Count is the number of requests allowed so far in the window.
	Count int

	// ResetTime is when the window expires.
	ResetTime time.Time
}

// window is the in-memory per-identifier state.
type window struct {
	count     int
	resetTime time.Time
}

// Limiter is a fixed-window request counter keyed by client identifier.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	entries map[string]*window

	// now is replaceable for tests.
	now func() time.Time
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		entries: make(map[string]*window),
		now:     time.Now,
	}
}

// IsRateLimited records one request attempt for the identifier and reports
// whether it must be denied. Denied requests do not increment the counter,
// so a throttled client does not push its own window further out.
func (l *Limiter) IsRateLimited(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cfg.Enabled {
		return false
	}

	now := l.now()
	e, ok := l.entries[id]
	if !ok || now.After(e.resetTime) {
		l.entries[id] = &window{count: 1, resetTime: now.Add(l.cfg.Window)}
		return false
	}
	if e.count < l.cfg.MaxRequests {
		e.count++
		return false
	}
	return true
}

// Remaining returns how many requests the identifier has left in its current
// window. Identifiers without an active window get the full allowance.
func (l *Limiter) Remaining(id string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.cfg.Enabled {
		return l.cfg.MaxRequests
	}

	e, ok := l.entries[id]
	if !ok || l.now().After(e.resetTime) {
		return l.cfg.MaxRequests
	}
	if remaining := l.cfg.MaxRequests - e.count; remaining > 0 {
		return remaining
	}
	return 0
}

// ResetTime returns when the identifier's current window expires, or the
// zero time if the identifier has no active window.
func (l *Limiter) ResetTime(id string) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[id]; ok {
		return e.resetTime
	}
	return time.Time{}
}

// MaxRequests returns the configured per-window allowance.
func (l *Limiter) MaxRequests() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.MaxRequests
}

// UpdateConfig swaps the limiter thresholds at runtime. Existing windows
// keep their reset times; counts are compared against the new maximum
// from the next request on.
func (l *Limiter) UpdateConfig(cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cfg = cfg
}

// Cleanup removes every entry whose window has elapsed and returns the
// number removed.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for id, e := range l.entries {
		if now.After(e.resetTime) {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked identifiers, expired or not.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Snapshot returns a copy of all live window entries for persistence.
// Expired entries are skipped; they would be discarded on restore anyway.
func (l *Limiter) Snapshot() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entries := make([]Entry, 0, len(l.entries))
	for id, e := range l.entries {
		if now.After(e.resetTime) {
			continue
		}
		entries = append(entries, Entry{Identifier: id, Count: e.count, ResetTime: e.resetTime})
	}
	return entries
}

// Restore loads previously snapshotted entries, dropping any whose window
// has already expired. Existing in-memory state for the same identifier is
// overwritten.
func (l *Limiter) Restore(entries []Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for _, e := range entries {
		if now.After(e.ResetTime) {
			continue
		}
		l.entries[e.Identifier] = &window{count: e.Count, resetTime: e.ResetTime}
	}
}
