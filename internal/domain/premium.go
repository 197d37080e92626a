package domain

import "math"

// Pricing constants.
const (
	// CoverageUnit is the coverage amount that one base rate prices.
	CoverageUnit = 100000

	// TermSurchargePerYear is added for every requested year beyond the plan's term.
	TermSurchargePerYear = 0.01
)

// ComputePremium returns the approximate monthly premium for a plan and a
// request that has already been validated. The result is rounded to cents.
//
// The only failure is a plan without base rates, reported as ErrNoBaseRates.
func ComputePremium(plan *Plan, req *QuoteRequest) (float64, error) {
	if len(plan.BaseRates) == 0 {
		return 0, ErrNoBaseRates
	}

	per100k := plan.BaseRates[BandIndex(plan.AgeBand, len(plan.BaseRates), req.Age)]

	if req.Gender == GenderMale {
		per100k *= plan.MaleFactor
	}

	if req.Smoker {
		per100k *= plan.SmokerMultiplier
	}

	monthly := per100k * float64(CoverageUnits(req.CoverageAmount))
	monthly *= TermAdjustment(req.TermYears, plan.TermYears)

	return RoundCents(monthly), nil
}

// BandIndex returns the index of the last threshold in bands that age has
// reached. Ages below every threshold use the first band. The index is
// clamped to rateCount-1 when there are more bands than rates.
func BandIndex(bands []int, rateCount, age int) int {
	idx := 0

	for i, threshold := range bands {
		if age >= threshold {
			idx = i
		}
	}

	return min(idx, rateCount-1)
}

// CoverageUnits returns the number of $100k units a coverage amount buys,
// rounding half up and never returning less than one unit.
func CoverageUnits(coverage int) int {
	units := (coverage + CoverageUnit/2) / CoverageUnit

	return max(1, units)
}

// TermAdjustment returns the multiplier applied when the requested term
// exceeds the plan's native term. Shorter terms are not discounted.
func TermAdjustment(requestedYears, planYears int) float64 {
	excess := max(0, requestedYears-planYears)

	return 1 + TermSurchargePerYear*float64(excess)
}

// RoundCents rounds an amount to two decimal places, halves away from zero.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
