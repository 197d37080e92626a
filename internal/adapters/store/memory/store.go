// Package memory provides an in-process document store.
// Data lives only as long as the process; it is the default backend for
// local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Store keeps documents in per-collection slices guarded by a RWMutex.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]ports.Document
}

// New creates an empty store.
func New() *Store {
	return &Store{
		collections: make(map[string][]ports.Document),
	}
}

// InsertOne stores a copy of body and returns a new UUID.
func (s *Store) InsertOne(ctx context.Context, collection string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := uuid.NewString()

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], ports.Document{
		ID:   id,
		Body: slices.Clone(body),
	})
	s.mu.Unlock()

	return id, nil
}

// FindAll returns copies of every document in collection.
func (s *Store) FindAll(ctx context.Context, collection string) ([]ports.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.collections[collection]
	docs := make([]ports.Document, len(stored))

	for i, d := range stored {
		docs[i] = ports.Document{ID: d.ID, Body: slices.Clone(d.Body)}
	}

	return docs, nil
}

// Count returns the number of documents in collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.collections[collection]), nil
}

// Collections lists non-empty collections in name order.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name, docs := range s.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "docstore"
}

// Check implements ports.HealthChecker. The in-memory store is always healthy.
func (s *Store) Check(ctx context.Context) error {
	return ctx.Err()
}
