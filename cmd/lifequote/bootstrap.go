package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/lifequote/internal/adapters/flags"
	"github.com/jsamuelsen/lifequote/internal/adapters/store"
	"github.com/jsamuelsen/lifequote/internal/app"
	"github.com/jsamuelsen/lifequote/internal/app/seeddata"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
	"github.com/jsamuelsen/lifequote/internal/platform/logging"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
)

// loadConfig loads and validates configuration for cmd, applying the
// persistent flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	profile, err := cmd.Flags().GetString(flagProfile)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}

	if level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// newLogger builds the process logger and installs it as the default.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, w)
	logging.SetDefault(logger)

	return logger
}

// services is the local application graph over the configured store.
type services struct {
	backend store.Backend
	catalog *app.CatalogService
	quotes  *app.QuoteService
	flags   *flags.Static
}

// openServices opens the configured store and wires the application
// services. metrics may be nil. Callers must call close.
func openServices(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.QuoteMetrics) (*services, error) {
	var source *seeddata.Catalog

	if cfg.Seed.File != "" {
		var err error

		source, err = seeddata.Load(cfg.Seed.File)
		if err != nil {
			return nil, fmt.Errorf("loading seed file: %w", err)
		}
	}

	backend, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	repo := store.NewRepository(backend)

	catalog, err := app.NewCatalogService(app.CatalogServiceConfig{
		Catalog: repo,
		Source:  source,
		Metrics: metrics,
		Logger:  logger,
	})
	if err != nil {
		return nil, errors.Join(err, backend.Close())
	}

	featureFlags := flags.NewStatic(cfg.FeatureFlags())

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Catalog: repo,
		Quotes:  repo,
		Seeder:  catalog,
		Flags:   featureFlags,
		Metrics: metrics,
		Logger:  logger,
	})

	return &services{
		backend: backend,
		catalog: catalog,
		quotes:  quotes,
		flags:   featureFlags,
	}, nil
}

func (s *services) close(logger *slog.Logger) {
	if err := s.backend.Close(); err != nil {
		logger.Error("closing document store", slog.Any("error", err))
	}
}
