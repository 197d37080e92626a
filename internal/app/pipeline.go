package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/lifequote/internal/platform/logging"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
)

// Stage names one phase of a Pipeline run.
type Stage string

// A run moves through the stages in this order. Nothing is written before
// Verify accepts the result, and the caller sees nothing before Archive
// returns.
const (
	StageValidate Stage = "validate"
	StagePerform  Stage = "perform"
	StageVerify   Stage = "verify"
	StageArchive  Stage = "archive"
	StageRespond  Stage = "respond"
)

// StageError records which stage of a run failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FailedStage reports the stage a Run error came from.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}

	return "", false
}

// Pipeline is a named use case split into stages. I is the input, P what
// Perform loads, V what Verify accepts and O what the caller receives.
// A nil stage is skipped.
type Pipeline[I, P, V, O any] struct {
	Name     string
	Validate func(ctx context.Context, in I) error
	Perform  func(ctx context.Context, in I) (P, error)
	Verify   func(ctx context.Context, in I, performed P) (V, error)
	Archive  func(ctx context.Context, in I, verified V) error
	Respond  func(ctx context.Context, in I, verified V) (O, error)
}

// Runner executes pipelines with a span and structured logs per run.
type Runner struct {
	logger *slog.Logger
}

// NewRunner returns a Runner logging to logger, or slog's default when nil.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{logger: logger}
}

// Run executes p for in. Stage failures come back as *StageError, except
// Respond failures which are returned as is.
func Run[I, P, V, O any](ctx context.Context, r *Runner, p Pipeline[I, P, V, O], in I) (O, error) {
	logger := logging.FromContextOr(ctx, r.logger).With(slog.String("operation", p.Name))

	ctx, span := telemetry.StartSpan(ctx, p.Name)
	defer span.End()

	start := time.Now()

	out, err := p.run(ctx, logger, in)
	if err != nil {
		if stage, ok := FailedStage(err); ok {
			span.SetAttributes(attribute.String("pipeline.stage", string(stage)))
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return out, err
	}

	logger.InfoContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}

func (p Pipeline[I, P, V, O]) run(ctx context.Context, logger *slog.Logger, in I) (O, error) {
	var (
		zero      O
		performed P
		verified  V
	)

	stages := []struct {
		name Stage
		fn   func() error
	}{
		{StageValidate, func() error {
			if p.Validate == nil {
				return nil
			}

			return p.Validate(ctx, in)
		}},
		{StagePerform, func() (err error) {
			if p.Perform != nil {
				performed, err = p.Perform(ctx, in)
			}

			return err
		}},
		{StageVerify, func() (err error) {
			if p.Verify != nil {
				verified, err = p.Verify(ctx, in, performed)
			}

			return err
		}},
		{StageArchive, func() error {
			if p.Archive == nil {
				return nil
			}

			return p.Archive(ctx, in, verified)
		}},
	}

	for _, s := range stages {
		if err := s.fn(); err != nil {
			level := slog.LevelError
			if s.name == StageValidate {
				level = slog.LevelWarn
			}

			logger.Log(ctx, level, "stage failed", slog.String("stage", string(s.name)), slog.Any("error", err))

			return zero, &StageError{Stage: s.name, Err: err}
		}

		logger.DebugContext(ctx, "stage done", slog.String("stage", string(s.name)))
	}

	if p.Respond == nil {
		return zero, nil
	}

	return p.Respond(ctx, in, verified)
}
