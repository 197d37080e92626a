package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/lifequote/internal/adapters/store/storetest"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// dsnEnv names the variable holding a disposable database for these tests.
const dsnEnv = "LIFEQUOTE_POSTGRES_DSN"

func openTest(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set", dsnEnv)
	}

	ctx := context.Background()

	store, err := Open(ctx, dsn, DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, store.Truncate(ctx))

	t.Cleanup(func() {
		_ = store.Truncate(context.Background())
		_ = store.Close()
	})

	return store
}

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.DocumentStore {
		t.Helper()
		return openTest(t)
	})
}

func TestStore_HealthChecker(t *testing.T) {
	store := openTest(t)

	assert.Equal(t, "docstore", store.Name())
	assert.NoError(t, store.Check(context.Background()))
}

func TestOpen_InvalidDSN(t *testing.T) {
	_, err := Open(context.Background(), "postgres://%zz", DefaultOptions())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing postgres dsn")
}
