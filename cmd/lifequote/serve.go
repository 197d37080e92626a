package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/lifequote/internal/adapters/http"
	"github.com/jsamuelsen/lifequote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the quote API",
		Long: `Run the HTTP API: GET /, POST /quote, POST /seed and the /-/ probes.

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1. Load and validate configuration (fail fast)
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// 2. Initialize logging
	logger := newLogger(cfg, os.Stdout)

	logger.Info("starting service",
		slog.String("version", getVersion()),
		slog.String("commit", getCommit()),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Store.Driver),
	)

	// 3. Initialize telemetry (noop export if disabled)
	telProvider, err := telemetry.New(ctx, telemetry.ConfigFrom(cfg))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Open the store and wire the application services
	svc, err := openServices(ctx, cfg, logger, telemetry.NewQuoteMetrics(prometheus.DefaultRegisterer))
	if err != nil {
		return err
	}
	defer svc.close(logger)

	// 5. Health checks
	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(svc.backend); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 6. Handlers, server and router
	healthHandler := handlers.NewHealthHandler(healthRegistry,
		handlers.NewBuildInfo(getVersion(), getCommit(), getBuildTime()), prometheus.DefaultGatherer)
	quoteHandler := handlers.NewQuoteHandler(svc.quotes, svc.catalog)

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:             logger,
		ServiceName:        telemetry.ConfigFrom(cfg).ServiceName,
		CORS:               cfg.CORS,
		HealthHandler:      healthHandler,
		QuoteHandler:       quoteHandler,
		DiagnosticsHandler: handlers.NewDiagnosticsHandler(svc.backend),
		Timeout:            cfg.Server.RequestTimeout,
	})

	// 7. Start server (non-blocking) and wait for a signal
	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-sigCtx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
