// Package sqlite provides a document store backed by a single SQLite file.
//
// All collections share one "documents" table. Bodies are stored as JSON
// text and returned in insertion order.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file and its directory if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Store is a ports.DocumentStore on top of database/sql and modernc.org/sqlite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string, opts Options) (*Store, error) {
	if opts.CreateIfNotExists {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("checking database path: %w", err)
	}

	mode := "rw"
	if opts.CreateIfNotExists {
		mode = "rwc"
	}

	db, err := sql.Open("sqlite", path+"?mode="+mode)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if opts.EnableWAL {
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enabling WAL mode: %w", err)
		}
	}

	s := &Store{db: db, path: path}

	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS documents (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		collection TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
	`

	_, err := s.db.ExecContext(ctx, schema)

	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// InsertOne stores body in collection and returns a new UUID.
func (s *Store) InsertOne(ctx context.Context, collection string, body []byte) (string, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, body) VALUES (?, ?, ?)`,
		id, collection, string(body),
	)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	return id, nil
}

// FindAll returns every document in collection in insertion order.
func (s *Store) FindAll(ctx context.Context, collection string) ([]ports.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY seq`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]ports.Document, 0)

	for rows.Next() {
		var (
			id   string
			body string
		)

		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", collection, err)
		}

		docs = append(docs, ports.Document{ID: id, Body: []byte(body)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", collection, err)
	}

	return docs, nil
}

// Count returns the number of documents in collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	var n int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`,
		collection,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}

	return n, nil
}

// Collections lists non-empty collections in name order.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT collection FROM documents ORDER BY collection`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning collection name: %w", err)
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "docstore"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
