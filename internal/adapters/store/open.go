package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/lifequote/internal/adapters/store/memory"
	"github.com/jsamuelsen/lifequote/internal/adapters/store/postgres"
	"github.com/jsamuelsen/lifequote/internal/adapters/store/sqlite"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Backend is a document store that can report its own health.
type Backend interface {
	ports.DocumentStore
	ports.HealthChecker
}

// Open creates the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Backend, error) {
	switch cfg.Driver {
	case "", config.DriverMemory:
		logger.Info("using in-memory document store")
		return memory.New(), nil

	case config.DriverSQLite:
		opts := sqlite.DefaultOptions()
		opts.EnableWAL = cfg.SQLite.WAL

		s, err := sqlite.Open(ctx, cfg.SQLite.Path, opts)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}

		logger.Info("using sqlite document store", slog.String("path", s.Path()))

		return s, nil

	case config.DriverPostgres:
		opts := postgres.DefaultOptions()
		opts.MaxConns = cfg.Postgres.MaxConns
		opts.MinConns = cfg.Postgres.MinConns

		s, err := postgres.Open(ctx, cfg.Postgres.DSN, opts)
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}

		logger.Info("using postgres document store")

		return s, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
