package http

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/dto"
	"github.com/jsamuelsen/lifequote/internal/adapters/http/handlers"
	"github.com/jsamuelsen/lifequote/internal/adapters/http/middleware"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
)

// DefaultRequestTimeout is used when RouterConfig.Timeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// CORS configures cross-origin access for browser clients.
	CORS config.CORSConfig

	// HealthHandler serves /-/ probes, build info and metrics.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler serves /, /quote and /seed.
	QuoteHandler *handlers.QuoteHandler

	// DiagnosticsHandler serves /test.
	DiagnosticsHandler *handlers.DiagnosticsHandler

	// Timeout bounds every public request.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. CORS - answer preflight before anything else runs
//  3. Context logger, request ID, correlation ID
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips /-/)
//  6. Deadline - request timeout (skips /-/)
//
// Route groups:
//   - /-/ (internal): probes, build info and metrics
//   - / (public): root message, quote, seed and the /test store report
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		cors.New(corsConfig(cfg.CORS)),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName, middleware.InternalPrefix)...)
	engine.Use(
		middleware.Logging(cfg.Logger),
		middleware.Deadline(timeout, middleware.InternalPrefix),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(engine)
	}

	if cfg.DiagnosticsHandler != nil {
		cfg.DiagnosticsHandler.RegisterRoutes(engine)
	}

	engine.NoRoute(func(c *gin.Context) {
		handlers.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
	})
}

// corsConfig maps the configured lists onto gin-contrib/cors. An empty
// origin list or "*" allows every origin.
func corsConfig(cfg config.CORSConfig) cors.Config {
	cc := cors.DefaultConfig()

	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowOrigins
	}

	if len(cfg.AllowMethods) > 0 {
		cc.AllowMethods = cfg.AllowMethods
	}

	if len(cfg.AllowHeaders) > 0 {
		cc.AllowHeaders = cfg.AllowHeaders
	}

	if cfg.MaxAge > 0 {
		cc.MaxAge = cfg.MaxAge
	}

	cc.ExposeHeaders = []string{
		middleware.HeaderRequestID,
		middleware.HeaderCorrelationID,
		telemetry.HeaderTraceID,
	}

	return cc
}
