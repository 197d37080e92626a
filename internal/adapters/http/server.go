// Package http serves the quote API over gin: the server lifecycle, the
// middleware chain and the route table.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/lifequote/internal/platform/config"
)

// Server owns the gin engine and the listener it is served on.
type Server struct {
	engine *gin.Engine
	http   *http.Server
	cfg    *config.ServerConfig
	logger *slog.Logger

	mu       sync.Mutex
	listener net.Listener
}

// New builds a server for cfg. Request bodies larger than
// cfg.MaxRequestSize are cut off before any handler reads them.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	if cfg.MaxRequestSize > 0 {
		engine.Use(limitBody(cfg.MaxRequestSize))
	}

	return &Server{
		engine: engine,
		cfg:    cfg,
		logger: logger,
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Engine is the gin engine routes are registered on.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Config is the configuration the server was built from.
func (s *Server) Config() *config.ServerConfig { return s.cfg }

// Addr is the bound address once Start succeeded, and the configured one
// before that. Port 0 therefore resolves to the real port after Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.http.Addr
}

// Start binds the listener and serves in the background. A bind failure is
// returned at once. Later serve failures arrive on the channel, which is
// closed when the server stops.
func (s *Server) Start() (<-chan error, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.http.Addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("http server listening",
		slog.String("addr", ln.Addr().String()),
		slog.Duration("request_timeout", s.cfg.RequestTimeout),
	)

	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)

		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serving http: %w", err)
		}
	}()

	return errCh, nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server draining")

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("draining http server: %w", err)
	}

	s.logger.Info("http server stopped")

	return nil
}

func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
