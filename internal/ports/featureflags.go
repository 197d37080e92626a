package ports

import "context"

// FeatureFlags answers the quote engine's runtime switches. Unknown flags
// evaluate to defaultValue.
type FeatureFlags interface {
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}

const (
	// FlagAutoSeed seeds the catalog before quoting when it is empty.
	FlagAutoSeed = "quote.auto_seed"

	// FlagPersistQuotes writes each ranked quote to the audit trail.
	FlagPersistQuotes = "quote.persist"
)
