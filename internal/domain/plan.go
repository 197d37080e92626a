package domain

import (
	"slices"
	"strings"
)

// Plan defaults and bounds.
const (
	DefaultSmokerMultiplier = 1.5
	DefaultMaleFactor       = 1.0

	MinPlanCoverage = 10000
	MinTermYears    = 5
	MaxTermYears    = 40

	MinSmokerMultiplier = 1.0
	MaxSmokerMultiplier = 3.0
	MinMaleFactor       = 0.8
	MaxMaleFactor       = 1.5
)

// DefaultAgeBand returns the age thresholds used when a plan does not define its own.
func DefaultAgeBand() []int {
	return []int{25, 35, 45, 55}
}

// Plan is a product offered by an insurer.
//
// AgeBand and BaseRates are parallel: BaseRates[i] is the monthly rate per
// $100k of coverage for requesters whose age reaches AgeBand[i]. A length
// mismatch is tolerated; the calculator clamps to the last available rate.
type Plan struct {
	// ID is the opaque identifier assigned by the store on insert.
	ID string

	InsurerID        string
	Name             string
	CoverageAmount   int
	TermYears        int
	SmokerMultiplier float64
	MaleFactor       float64
	AgeBand          []int
	BaseRates        []float64
	Features         []string
}

// ApplyDefaults fills unset optional fields with their documented defaults.
func (p *Plan) ApplyDefaults() {
	if p.SmokerMultiplier == 0 {
		p.SmokerMultiplier = DefaultSmokerMultiplier
	}

	if p.MaleFactor == 0 {
		p.MaleFactor = DefaultMaleFactor
	}

	if p.AgeBand == nil {
		p.AgeBand = DefaultAgeBand()
	}

	if p.Features == nil {
		p.Features = []string{}
	}
}

// Validate checks the plan's field constraints.
// A plan without base rates cannot be priced and is rejected here so it
// never reaches the calculator.
func (p *Plan) Validate() error {
	switch {
	case strings.TrimSpace(p.InsurerID) == "":
		return NewValidationError("insurer_id", "must not be empty")
	case strings.TrimSpace(p.Name) == "":
		return NewValidationError("name", "must not be empty")
	case p.CoverageAmount < MinPlanCoverage:
		return invalidValue("coverage_amount", "must be at least 10000", p.CoverageAmount)
	case p.TermYears < MinTermYears || p.TermYears > MaxTermYears:
		return invalidValue("term_years", "must be between 5 and 40", p.TermYears)
	case p.SmokerMultiplier < MinSmokerMultiplier || p.SmokerMultiplier > MaxSmokerMultiplier:
		return invalidValue("smoker_multiplier", "must be between 1.0 and 3.0", p.SmokerMultiplier)
	case p.MaleFactor < MinMaleFactor || p.MaleFactor > MaxMaleFactor:
		return invalidValue("male_factor", "must be between 0.8 and 1.5", p.MaleFactor)
	case len(p.BaseRates) == 0:
		return NewValidationError("base_rates", ErrNoBaseRates.Error())
	case !slices.IsSorted(p.AgeBand):
		return invalidValue("age_band", "must be in ascending order", p.AgeBand)
	}

	return nil
}
