package logging

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler duplicates each record to a set of sinks, typically the
// terminal handler and the rolling JSON file. Each sink keeps its own level.
type teeHandler struct {
	sinks []slog.Handler
}

func newTeeHandler(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}

	return &teeHandler{sinks: sinks}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range t.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

//nolint:gocritic // slog.Handler passes records by value
func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, s := range t.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}

		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return t.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (t *teeHandler) derive(fn func(slog.Handler) slog.Handler) slog.Handler {
	sinks := make([]slog.Handler, len(t.sinks))
	for i, s := range t.sinks {
		sinks[i] = fn(s)
	}

	return &teeHandler{sinks: sinks}
}
