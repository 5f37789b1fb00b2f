/*
Package sqlite provides a SQLite-backed implementation of roster.Store.

PURPOSE:
  Persists canonical schedule states as JSON blobs keyed by storage key,
  matching the "host key-value store" persistence contract. The same
  pattern applies to any other key-value backend - only the SQL differs.

KEY TABLE:
  schedules: one row per storage key, holding the serialized state and
  the last write time.

CONCURRENCY:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers
  don't block and a single writer at a time matches the engine's
  single-writer model.

USAGE:
  store, err := sqlite.New("./data/roster.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). Legacy *data* migration is not done
  here - blobs are stored as given; roster.Migrate runs at load time in
  the host.

SEE ALSO:
  - roster/store.go: Interface definition
  - roster/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/roster-engine/roster"
)

// Store implements roster.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schedules (
		key        TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load returns the state stored under key, or (nil, nil) when absent.
func (s *Store) Load(ctx context.Context, key string) (*roster.State, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM schedules WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule %q: %w", key, err)
	}
	return roster.Deserialize([]byte(raw))
}

// Save writes the state under key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string, state *roster.State) error {
	raw, err := roster.Serialize(state)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedules (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save schedule %q: %w", key, err)
	}
	return nil
}

// Exists reports whether a state is stored under key.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM schedules WHERE key = ?", key).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
