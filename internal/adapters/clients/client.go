package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/middleware"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
	"github.com/jsamuelsen/lifequote/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/lifequote/internal/adapters/clients"

	// defaultTimeout applies when Config.Timeout is unset.
	defaultTimeout = 10 * time.Second

	// jitterFactor spreads each backoff by ±25%.
	jitterFactor = 0.25
)

// Config configures a Client.
type Config struct {
	// BaseURL is the service root, for example "http://localhost:8080".
	BaseURL string

	// Name identifies the remote service in logs, spans and errors.
	Name string

	// Timeout bounds a single attempt. Retries and backoff come on top.
	Timeout time.Duration

	Retry   config.RetryConfig
	Circuit config.CircuitBreakerConfig

	// Logger defaults to slog.Default.
	Logger *slog.Logger

	// Transport overrides the HTTP transport, mostly for tests.
	Transport http.RoundTripper
}

// Client is an HTTP client with retry, a circuit breaker, tracing and
// request id propagation.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	retry   config.RetryConfig
	breaker *Breaker
	logger  *slog.Logger

	tracer   trace.Tracer
	duration metric.Float64Histogram
}

// New builds a Client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.Name == "" {
		return nil, errors.New("client name is required")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry.MaxAttempts = 1
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("remote", cfg.Name),
	)

	breaker := NewBreaker(BreakerConfig{
		MaxFailures: cfg.Circuit.MaxFailures,
		Cooldown:    cfg.Circuit.Timeout,
		Probes:      cfg.Circuit.HalfOpenLimit,
	})
	breaker.OnStateChange(func(from, to State) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	duration, err := otel.Meter(instrumentationName).Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of remote lifequote calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout, Transport: transport},
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		name:     cfg.Name,
		retry:    cfg.Retry,
		breaker:  breaker,
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		duration: duration,
	}, nil
}

// Name returns the remote service name.
func (c *Client) Name() string {
	return c.name
}

// State returns the circuit breaker state.
func (c *Client) State() State {
	return c.breaker.State()
}

// Get issues a GET to path.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post issues a JSON POST to path.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Do sends the request, retrying transport errors and 5xx responses with
// exponential backoff. The caller owns the returned body. Responses below
// 500 are returned as-is, whatever their status.
func (c *Client) Do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContextOr(ctx, c.logger).With(
		slog.String("method", method),
		slog.String("path", path),
	)

	if !c.breaker.Allow() {
		logger.WarnContext(ctx, "request blocked by circuit breaker")
		c.record(ctx, method, "circuit_open", start)

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("HTTP %s %s", method, path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	requestID := middleware.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	var lastErr error

	for attempt := range c.retry.MaxAttempts {
		if attempt > 0 {
			if err := c.wait(ctx, attempt); err != nil {
				lastErr = err
				break
			}

			logger.DebugContext(ctx, "retrying request", slog.Int("attempt", attempt+1))
		}

		resp, err := c.attempt(ctx, method, path, body, requestID)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			c.breaker.Success()
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
			c.record(ctx, method, fmt.Sprintf("%dxx", resp.StatusCode/100), start)

			return resp, nil
		}

		if err == nil {
			_ = resp.Body.Close()
			err = fmt.Errorf("server error: %d", resp.StatusCode)
		} else if !retryable(err) {
			lastErr = err
			break
		}

		lastErr = err
	}

	c.breaker.Failure()
	span.RecordError(lastErr)
	span.SetStatus(codes.Error, lastErr.Error())
	c.record(ctx, method, "error", start)

	logger.ErrorContext(ctx, "request failed",
		slog.Duration("duration", time.Since(start)),
		slog.Any("error", lastErr),
	)

	return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
}

func (c *Client) attempt(ctx context.Context, method, path string, body []byte, requestID string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(middleware.HeaderRequestID, requestID)

	if correlationID := middleware.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.HeaderCorrelationID, correlationID)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return c.http.Do(req)
}

func (c *Client) wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.backoff(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff is InitialInterval * Multiplier^(attempt-1), capped at
// MaxInterval, with jitter.
func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(attempt-1))
	if ceiling := float64(c.retry.MaxInterval); ceiling > 0 && d > ceiling {
		d = ceiling
	}

	d += d * jitterFactor * (rand.Float64()*2 - 1) //nolint:gosec // jitter only

	return time.Duration(d)
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

func (c *Client) record(ctx context.Context, method, result string, start time.Time) {
	c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("peer.service", c.name),
		attribute.String("result", result),
	))
}

// retryable reports whether a transport error is worth another attempt.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
