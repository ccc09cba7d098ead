package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/SwineFeather/nordics-gateway/pkg/ratelimit"
)

// SQLiteBackend implements Backend using a single-file SQLite database.
// Suitable for single-instance deployments where throttle state should
// survive restarts. Uses WAL mode for concurrent read performance.
type SQLiteBackend struct {
	db *sql.DB
	mu sync.Mutex

	closeOnce sync.Once

	upsertStmt *sql.Stmt
	loadStmt   *sql.Stmt
	purgeStmt  *sql.Stmt
}

// SQLiteBackendConfig configures the SQLite backend.
type SQLiteBackendConfig struct {
	// DBPath is the path to the database file.
	DBPath string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds.
	BusyTimeout time.Duration
}

// NewSQLiteBackend creates a SQLite backend with default settings.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	return NewSQLiteBackendWithConfig(SQLiteBackendConfig{DBPath: dbPath})
}

// NewSQLiteBackendWithConfig creates a SQLite backend with custom settings.
func NewSQLiteBackendWithConfig(cfg SQLiteBackendConfig) (*SQLiteBackend, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.DBPath, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	backend := &SQLiteBackend{db: db}

	if err := backend.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := backend.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	return backend, nil
}

func (s *SQLiteBackend) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS rate_limit_windows (
		identifier TEXT NOT NULL PRIMARY KEY,
		count INTEGER NOT NULL,
		reset_time INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reset_time ON rate_limit_windows(reset_time);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteBackend) prepareStatements() error {
	var err error

	s.upsertStmt, err = s.db.Prepare(`
		INSERT INTO rate_limit_windows (identifier, count, reset_time)
		VALUES (?, ?, ?)
		ON CONFLICT(identifier) DO UPDATE SET count = excluded.count, reset_time = excluded.reset_time`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}

	s.loadStmt, err = s.db.Prepare(`SELECT identifier, count, reset_time FROM rate_limit_windows`)
	if err != nil {
		return fmt.Errorf("prepare load: %w", err)
	}

	s.purgeStmt, err = s.db.Prepare(`DELETE FROM rate_limit_windows WHERE reset_time < ?`)
	if err != nil {
		return fmt.Errorf("prepare purge: %w", err)
	}

	return nil
}

// SaveAll replaces the stored snapshot with the given entries in a single
// transaction.
func (s *SQLiteBackend) SaveAll(ctx context.Context, entries []ratelimit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rate_limit_windows`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	upsert := tx.StmtContext(ctx, s.upsertStmt)
	for _, e := range entries {
		if _, err := upsert.ExecContext(ctx, e.Identifier, e.Count, e.ResetTime.UnixMilli()); err != nil {
			return fmt.Errorf("save entry %q: %w", e.Identifier, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns all stored window entries.
func (s *SQLiteBackend) LoadAll(ctx context.Context) ([]ratelimit.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.loadStmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer rows.Close()

	var entries []ratelimit.Entry
	for rows.Next() {
		var (
			e       ratelimit.Entry
			resetMs int64
		)
		if err := rows.Scan(&e.Identifier, &e.Count, &resetMs); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.ResetTime = time.UnixMilli(resetMs)
		entries = append(entries, e)
	}
	if entries == nil {
		entries = []ratelimit.Entry{}
	}
	return entries, rows.Err()
}

// Purge removes stored entries whose window expired before the given time.
func (s *SQLiteBackend) Purge(ctx context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.purgeStmt.ExecContext(ctx, before.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("purge expired entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(n), nil
}

// Close releases the database handle.
func (s *SQLiteBackend) Close() error {
	var closeErr error
	s.closeOnce.Do(func() {
		closeErr = s.db.Close()
	})
	return closeErr
}
