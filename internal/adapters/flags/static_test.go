package flags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen/lifequote/internal/platform/config"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

func TestStatic_IsEnabled(t *testing.T) {
	ctx := context.Background()
	s := NewStatic(map[string]bool{
		ports.FlagAutoSeed:      false,
		ports.FlagPersistQuotes: true,
	})

	assert.False(t, s.IsEnabled(ctx, ports.FlagAutoSeed, true))
	assert.True(t, s.IsEnabled(ctx, ports.FlagPersistQuotes, false))
	assert.True(t, s.IsEnabled(ctx, "unknown", true))
	assert.False(t, s.IsEnabled(ctx, "unknown", false))
}

func TestStatic_CopiesInput(t *testing.T) {
	input := map[string]bool{"a": true}
	s := NewStatic(input)

	input["a"] = false

	assert.True(t, s.IsEnabled(context.Background(), "a", false))
}

func TestStatic_Set(t *testing.T) {
	s := NewStatic(nil)

	s.Set(ports.FlagPersistQuotes, false)

	assert.False(t, s.IsEnabled(context.Background(), ports.FlagPersistQuotes, true))
	assert.Equal(t, map[string]bool{ports.FlagPersistQuotes: false}, s.Snapshot())
}

func TestStatic_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Quote:    config.QuoteConfig{AutoSeed: true, Persist: true},
		Features: map[string]bool{ports.FlagPersistQuotes: false},
	}

	s := NewStatic(cfg.FeatureFlags())

	assert.True(t, s.IsEnabled(context.Background(), ports.FlagAutoSeed, false))
	assert.False(t, s.IsEnabled(context.Background(), ports.FlagPersistQuotes, true))
}
