// Package middleware provides HTTP middleware for the Gin server.
package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/lifequote/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single HTTP exchange.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID groups the exchanges of one caller-side operation.
	HeaderCorrelationID = "X-Correlation-ID"
)

type ctxKey string

const (
	ctxKeyRequestID     ctxKey = "request_id"
	ctxKeyCorrelationID ctxKey = "correlation_id"
)

// RequestID reads X-Request-ID or generates a UUID. The id is echoed in the
// response, stored on the request context and added to the context logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, func(ctx context.Context, id string) context.Context {
		return logging.WithAttrs(ContextWithRequestID(ctx, id), slog.String("request_id", id))
	})
}

// CorrelationID does for X-Correlation-ID what RequestID does for X-Request-ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, func(ctx context.Context, id string) context.Context {
		return logging.WithAttrs(ContextWithCorrelationID(ctx, id), slog.String("correlation_id", id))
	})
}

func idMiddleware(header string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

// RequestIDFromContext returns the request id, or "" when unset.
func RequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyRequestID)
}

// CorrelationIDFromContext returns the correlation id, or "" when unset.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringValue(ctx, ctxKeyCorrelationID)
}

// ContextWithRequestID stores a request id for outbound propagation.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// ContextWithCorrelationID stores a correlation id for outbound propagation.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyCorrelationID, id)
}

func stringValue(ctx context.Context, key ctxKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
