// Package sqlite implements the pipeline store on SQLite through the pure-Go
// modernc.org/sqlite driver. Every multi-row mutation runs in a single
// transaction; a move and its timeline entry are committed together.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/kanban-pipeline/internal/ports"
)

var (
	_ ports.PipelineStore = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	defaultBusyTimeout = 5 * time.Second
	memoryPath         = ":memory:"
)

// Store is the SQLite-backed pipeline store.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*options)

type options struct {
	busyTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// WithBusyTimeout sets how long SQLite waits on a locked database.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *options) { o.busyTimeout = d }
}

// WithLogger sets the logger used for transaction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides the time source used for store-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	o := options{busyTimeout: defaultBusyTimeout, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", dsn(path, o.busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection serializes writers and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db, o.logger)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		closeQuietly(db, o.logger)
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db, logger: o.logger, now: o.now}, nil
}

func dsn(path string, busy time.Duration) string {
	pragmas := []string{
		"_pragma=foreign_keys(1)",
		fmt.Sprintf("_pragma=busy_timeout(%d)", busy.Milliseconds()),
	}
	if path != memoryPath {
		pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}

func closeQuietly(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("error closing database", slog.Any("error", err))
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return wrapErr("pinging database", err)
	}
	return nil
}
