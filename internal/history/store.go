// Package history provides durable storage for conversions performed by the
// front-ends. The conversion core itself is pure and never touches it.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Conversion is one recorded conversion.
type Conversion struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Input     string    `json:"input"`
	FromBase  int       `json:"from_base"`
	ToBase    int       `json:"to_base"`
	Precision int       `json:"precision"`
	Output    string    `json:"output"`
	Exact     bool      `json:"exact"`
}

// Store provides durable storage for conversion history.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
// Should be called when the store is no longer needed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends a conversion to the history. A zero ID or CreatedAt is
// filled in with a fresh UUID and the current time.
func (s *Store) Record(ctx context.Context, c Conversion) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, created_at, input, from_base, to_base, precision, output, exact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.Format(time.RFC3339Nano), c.Input, c.FromBase, c.ToBase,
		c.Precision, c.Output, boolToInt(c.Exact),
	)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	return nil
}

// Recent returns up to limit conversions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, input, from_base, to_base, precision, output, exact
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Conversion
	for rows.Next() {
		var (
			c       Conversion
			created string
			exact   int
		)
		if err := rows.Scan(&c.ID, &created, &c.Input, &c.FromBase, &c.ToBase,
			&c.Precision, &c.Output, &exact); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		c.Exact = exact != 0
		entries = append(entries, c)
	}
	return entries, rows.Err()
}

// Clear deletes all recorded conversions and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM conversions")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
