// Package telemetry wires OpenTelemetry tracing and HTTP metrics, plus the
// Prometheus counters the quote service reports.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/jsamuelsen/lifequote/internal/platform/config"
)

const flushTimeout = 5 * time.Second

// Config selects whether and where spans and metrics are exported.
type Config struct {
	Enabled      bool
	Endpoint     string
	ServiceName  string
	Version      string
	Environment  string
	SamplingRate float64
}

// ConfigFrom reads the telemetry section. The service name defaults to the
// application name.
func ConfigFrom(cfg *config.Config) *Config {
	tc := &Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	}

	if tc.ServiceName == "" {
		tc.ServiceName = cfg.App.Name
	}

	return tc
}

// Provider owns the installed SDK providers until Shutdown.
type Provider struct {
	stops []func(context.Context) error
}

// New installs the W3C trace context propagator and, when enabled, OTLP/gRPC
// trace and metric pipelines as the global providers. The propagator is
// installed even when export is off so that ids still flow to the remote
// quote client.
func New(ctx context.Context, cfg *Config) (*Provider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	p := &Provider{}
	if !cfg.Enabled {
		return p, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("building otel resource: %w", err)
	}

	plaintext := !strings.HasPrefix(cfg.Endpoint, "https://")

	spanOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpointURL(cfg.Endpoint)}
	if plaintext {
		spanOpts = append(spanOpts, otlptracegrpc.WithInsecure())
	}

	spans, err := otlptracegrpc.New(ctx, spanOpts...)
	if err != nil {
		return nil, fmt.Errorf("dialing span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(spans),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))),
	)
	p.stops = append(p.stops, tp.Shutdown)

	metricOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpointURL(cfg.Endpoint)}
	if plaintext {
		metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
	}

	readings, err := otlpmetricgrpc.New(ctx, metricOpts...)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("dialing metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
	)
	p.stops = append(p.stops, mp.Shutdown)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	return p, nil
}

// Shutdown flushes pending spans and metrics. It is a no-op when export was
// never enabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if len(p.stops) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()

	var errs []error
	for _, stop := range p.stops {
		errs = append(errs, stop(ctx))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("flushing telemetry: %w", err)
	}

	return nil
}
