// Package clients provides the instrumented HTTP client the CLI uses to
// talk to a running lifequote service.
package clients

import "errors"

// Client errors are transport failures. Callers translate them into domain
// errors; see package acl.
var (
	// ErrCircuitOpen is returned without a network call while the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRetriesExhausted wraps the last failure once every attempt has been used.
	ErrRetriesExhausted = errors.New("retries exhausted")
)
