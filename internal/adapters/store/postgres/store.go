// Package postgres provides a document store backed by PostgreSQL JSONB.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Options configures the connection pool.
type Options struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

// DefaultOptions returns the default pool options.
func DefaultOptions() Options {
	return Options{
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: time.Hour,
	}
}

// Store is a ports.DocumentStore on top of a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to dsn, verifies the connection, and ensures the schema exists.
func Open(ctx context.Context, dsn string, opts Options) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}

	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}

	if opts.MinConns > 0 {
		cfg.MinConns = opts.MinConns
	}

	if opts.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = opts.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	s := &Store{pool: pool}

	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS documents (
			seq BIGSERIAL PRIMARY KEY,
			id UUID UNIQUE NOT NULL,
			collection VARCHAR(64) NOT NULL,
			body JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
	`

	_, err := s.pool.Exec(ctx, schema)

	return err
}

// InsertOne stores body in collection and returns a new UUID.
func (s *Store) InsertOne(ctx context.Context, collection string, body []byte) (string, error) {
	id := uuid.NewString()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3::jsonb)`,
		id, collection, string(body),
	)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	return id, nil
}

// FindAll returns every document in collection in insertion order.
func (s *Store) FindAll(ctx context.Context, collection string) ([]ports.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, body::text FROM documents WHERE collection = $1 ORDER BY seq`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]ports.Document, 0)

	for rows.Next() {
		var id, body string
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

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = $1`,
		collection,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", collection, err)
	}

	return n, nil
}

// Collections lists non-empty collections in name order.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
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

// Truncate removes every document. Used by tests against a shared database.
func (s *Store) Truncate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `TRUNCATE documents`)
	return err
}

// Close closes the pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "docstore"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
