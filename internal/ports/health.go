package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a dependency readiness depends on, such as the document
// store. Check must honor ctx and return nil when healthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and evaluates them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is "healthy" or "unhealthy".
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the outcome of one CheckAll. Status is unhealthy when
// any single check failed.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// CheckRegistry is the in-process HealthRegistry. Checks run concurrently
// and a panicking checker is reported unhealthy.
type CheckRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry() *CheckRegistry {
	return &CheckRegistry{}
}

// Register adds checker unless its name is taken.
func (r *CheckRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.checkers {
		if existing.Name() == checker.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every registered checker and waits for all of them.
func (r *CheckRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := append([]HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	outcomes := make([]*CheckResult, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			outcomes[i] = runCheck(ctx, c)
			return nil
		})
	}

	_ = g.Wait()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, c := range checkers {
		result.Checks[c.Name()] = outcomes[i]
		if outcomes[i].Status == HealthStatusUnhealthy {
			result.Status = HealthStatusUnhealthy
		}
	}

	return result
}

func runCheck(ctx context.Context, c HealthChecker) (res *CheckResult) {
	start := time.Now()
	res = &CheckResult{Status: HealthStatusHealthy}

	defer func() {
		if rec := recover(); rec != nil {
			res.Status = HealthStatusUnhealthy
			res.Message = fmt.Sprintf("check panicked: %v", rec)
		}

		res.Duration = time.Since(start)
	}()

	if err := c.Check(ctx); err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
