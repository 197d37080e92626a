package telemetry

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	scopeName = "github.com/jsamuelsen/lifequote/telemetry"

	// HeaderTraceID echoes the trace id on traced responses.
	HeaderTraceID = "X-Trace-ID"
)

type httpInstruments struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	duration, durErr := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent serving a request"), metric.WithUnit("s"))
	requests, reqErr := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Requests served"))
	inFlight, flightErr := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Requests being served"))

	if err := errors.Join(durErr, reqErr, flightErr); err != nil {
		return nil, err
	}

	return &httpInstruments{duration: duration, requests: requests, inFlight: inFlight}, nil
}

// Middleware returns the otelgin tracer followed by the request metrics
// recorder. Paths under any of skipPrefixes bypass both.
func Middleware(serviceName string, skipPrefixes ...string) []gin.HandlerFunc {
	skip := func(path string) bool {
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}

		return false
	}

	tracer := otelgin.Middleware(serviceName, otelgin.WithFilter(func(r *http.Request) bool {
		return !skip(r.URL.Path)
	}))

	return []gin.HandlerFunc{tracer, measure(skip)}
}

// measure sets X-Trace-ID and records duration, count and in-flight gauges
// per route. Instrument errors are reported to otel and turn recording off.
func measure(skip func(string) bool) gin.HandlerFunc {
	inst, err := newHTTPInstruments(otel.Meter(scopeName))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		if skip(c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Header(HeaderTraceID, sc.TraceID().String())
		}

		if inst == nil {
			c.Next()
			return
		}

		started := time.Now()
		base := []attribute.KeyValue{
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
		}

		inst.inFlight.Add(ctx, 1, metric.WithAttributes(base...))
		defer inst.inFlight.Add(ctx, -1, metric.WithAttributes(base...))

		c.Next()

		done := metric.WithAttributes(append(base, attribute.Int("http.status_code", c.Writer.Status()))...)
		inst.duration.Record(ctx, time.Since(started).Seconds(), done)
		inst.requests.Add(ctx, 1, done)
	}
}
