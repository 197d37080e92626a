package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/lifequote/internal/adapters/store"
	"github.com/jsamuelsen/lifequote/internal/adapters/store/memory"
	"github.com/jsamuelsen/lifequote/internal/app"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAPI is a fully wired router over an in-memory store.
type testAPI struct {
	engine   *gin.Engine
	docs     ports.DocumentStore
	registry *prometheus.Registry
}

type apiOptions struct {
	docs    ports.DocumentStore
	timeout time.Duration
	flags   ports.FeatureFlags
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           8080,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		RequestTimeout: 5 * time.Second,
		MaxRequestSize: 1 << 20,
	}
}

func newTestAPI(tb testing.TB, opts apiOptions) *testAPI {
	tb.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	docs := opts.docs
	if docs == nil {
		docs = memory.New()
	}

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewQuoteMetrics(reg)
	repo := store.NewRepository(docs)

	catalog, err := app.NewCatalogService(app.CatalogServiceConfig{
		Catalog: repo,
		Metrics: metrics,
		Logger:  logger,
	})
	require.NoError(tb, err)

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Catalog: repo,
		Quotes:  repo,
		Seeder:  catalog,
		Flags:   opts.flags,
		Metrics: metrics,
		Logger:  logger,
	})

	health := ports.NewHealthRegistry()
	if checker, ok := docs.(ports.HealthChecker); ok {
		require.NoError(tb, health.Register(checker))
	}

	var diagnostics *handlers.DiagnosticsHandler
	if inspector, ok := docs.(ports.StoreInspector); ok {
		diagnostics = handlers.NewDiagnosticsHandler(inspector)
	}

	srv := New(testServerConfig(), logger)
	gin.SetMode(gin.TestMode)

	SetupRouter(srv.Engine(), RouterConfig{
		Logger:             logger,
		ServiceName:        "lifequote-test",
		CORS:               config.CORSConfig{AllowOrigins: []string{"*"}},
		HealthHandler:      handlers.NewHealthHandler(health, handlers.NewBuildInfo("test", "abc", "now"), reg),
		QuoteHandler:       handlers.NewQuoteHandler(quotes, catalog),
		DiagnosticsHandler: diagnostics,
		Timeout:            opts.timeout,
	})

	return &testAPI{engine: srv.Engine(), docs: docs, registry: reg}
}

// slowStore blocks catalog reads until the request context ends.
type slowStore struct {
	*memory.Store
}

func (s slowStore) FindAll(ctx context.Context, _ string) ([]ports.Document, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
