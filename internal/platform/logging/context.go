package logging

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

var fallbackLogger = slog.Default()

// FromContext returns the request-scoped logger, or the process default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, fallbackLogger)
}

// FromContextOr returns the request-scoped logger, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}

	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return fallback
}

// WithContext returns ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithAttrs returns ctx whose logger carries attrs on every record.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

// SetDefault installs logger as both the package fallback and slog's default.
func SetDefault(logger *slog.Logger) {
	fallbackLogger = logger
	slog.SetDefault(logger)
}
