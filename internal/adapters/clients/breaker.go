package clients

import (
	"sync"
	"time"
)

// State is a circuit breaker state.
type State int

const (
	// StateClosed lets every call through.
	StateClosed State = iota

	// StateOpen rejects calls until the cool-down has elapsed.
	StateOpen

	// StateHalfOpen lets a limited number of probe calls through.
	StateHalfOpen
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a Breaker.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures int

	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration

	// Probes is the number of consecutive half-open successes that close the
	// circuit. It also caps concurrent probes.
	Probes int
}

// Breaker guards a remote service.
//
//	closed --MaxFailures--> open --Cooldown--> half-open --Probes ok--> closed
//	                                           half-open --any failure--> open
type Breaker struct {
	mu sync.Mutex

	cfg      BreakerConfig
	state    State
	failures int
	probes   int
	inFlight int
	openedAt time.Time

	onChange func(from, to State)
	now      func() time.Time
}

// NewBreaker returns a closed breaker. Zero limits are raised to one.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	if cfg.Probes < 1 {
		cfg.Probes = 1
	}

	return &Breaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to be called after each transition.
// fn runs on its own goroutine.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.onChange = fn
}

// Allow reports whether a call may proceed. Every allowed call must be
// followed by Success or Failure.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true

	case StateOpen:
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			return false
		}

		b.moveTo(StateHalfOpen)
		b.inFlight = 1

		return true

	case StateHalfOpen:
		if b.inFlight >= b.cfg.Probes {
			return false
		}

		b.inFlight++

		return true
	}

	return false
}

// Success records a completed call.
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures = 0

	case StateHalfOpen:
		b.inFlight--
		b.probes++

		if b.probes >= b.cfg.Probes {
			b.moveTo(StateClosed)
		}

	case StateOpen:
	}
}

// Failure records a failed call.
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++

		if b.failures >= b.cfg.MaxFailures {
			b.open()
		}

	case StateHalfOpen:
		b.inFlight--
		b.open()

	case StateOpen:
	}
}

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// open must be called with mu held.
func (b *Breaker) open() {
	b.openedAt = b.now()
	b.moveTo(StateOpen)
}

// moveTo must be called with mu held.
func (b *Breaker) moveTo(to State) {
	if b.state == to {
		return
	}

	from := b.state
	b.state = to
	b.failures = 0
	b.probes = 0

	if to != StateHalfOpen {
		b.inFlight = 0
	}

	if b.onChange != nil {
		go b.onChange(from, to)
	}
}
