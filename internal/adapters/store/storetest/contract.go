// Package storetest holds a contract test suite shared by every
// ports.DocumentStore implementation.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) ports.DocumentStore

// Run executes the contract suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("insert assigns unique ids", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		first, err := store.InsertOne(ctx, "quote", []byte(`{"n":1}`))
		require.NoError(t, err)

		second, err := store.InsertOne(ctx, "quote", []byte(`{"n":2}`))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		_, err = uuid.Parse(first)
		assert.NoError(t, err, "ids should be UUIDs")
	})

	t.Run("find all preserves insertion order", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		ids := make([]string, 0, 5)
		for i := range 5 {
			id, err := store.InsertOne(ctx, "plan", fmt.Appendf(nil, `{"n":%d}`, i))
			require.NoError(t, err)
			ids = append(ids, id)
		}

		docs, err := store.FindAll(ctx, "plan")
		require.NoError(t, err)
		require.Len(t, docs, 5)

		for i, d := range docs {
			assert.Equal(t, ids[i], d.ID)
			assert.JSONEq(t, fmt.Sprintf(`{"n":%d}`, i), string(d.Body))
		}
	})

	t.Run("collections are isolated", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, err := store.InsertOne(ctx, "insurer", []byte(`{"name":"Acme Life"}`))
		require.NoError(t, err)

		insurers, err := store.Count(ctx, "insurer")
		require.NoError(t, err)
		assert.Equal(t, 1, insurers)

		plans, err := store.Count(ctx, "plan")
		require.NoError(t, err)
		assert.Zero(t, plans)

		docs, err := store.FindAll(ctx, "plan")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("collections lists non-empty collections", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		_, err := store.InsertOne(ctx, "quoterequest", []byte(`{}`))
		require.NoError(t, err)
		_, err = store.InsertOne(ctx, "insurer", []byte(`{}`))
		require.NoError(t, err)

		names, err := store.Collections(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"insurer", "quoterequest"}, names)
	})

	t.Run("concurrent inserts are all kept", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		const writers = 8

		var wg sync.WaitGroup
		for range writers {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := store.InsertOne(ctx, "quote", []byte(`{}`))
				assert.NoError(t, err)
			}()
		}

		wg.Wait()

		count, err := store.Count(ctx, "quote")
		require.NoError(t, err)
		assert.Equal(t, writers, count)
	})
}
