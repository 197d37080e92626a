// Package flags provides feature flag providers for ports.FeatureFlags.
package flags

import (
	"context"
	"log/slog"
	"maps"
	"sync"

	"github.com/jsamuelsen/lifequote/internal/platform/logging"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Static serves flags from a fixed map, normally Config.FeatureFlags().
// Set allows tests and operators to flip a flag at runtime.
type Static struct {
	mu    sync.RWMutex
	flags map[string]bool
}

var _ ports.FeatureFlags = (*Static)(nil)

// NewStatic copies flags into a new provider.
func NewStatic(flags map[string]bool) *Static {
	s := &Static{flags: make(map[string]bool, len(flags))}
	maps.Copy(s.flags, flags)

	return s
}

// IsEnabled returns the configured value, or defaultValue for unknown flags.
func (s *Static) IsEnabled(ctx context.Context, flag string, defaultValue bool) bool {
	s.mu.RLock()
	enabled, ok := s.flags[flag]
	s.mu.RUnlock()

	if !ok {
		logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "unknown feature flag, using default",
			slog.String("flag", flag),
			slog.Bool("default", defaultValue),
		)

		return defaultValue
	}

	return enabled
}

// Set overrides a flag.
func (s *Static) Set(flag string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flags[flag] = enabled
}

// Snapshot returns a copy of every known flag.
func (s *Static) Snapshot() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.flags)
}
