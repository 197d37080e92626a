package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// BuildQuotes prices every plan for the request and returns the quotes
// cheapest first. Plans are visited in catalog order and equal premiums keep
// that order. Plans whose insurer is missing from insurersByID are skipped.
//
// requestID is stamped on every quote. Nothing is persisted here.
func BuildQuotes(requestID string, req *QuoteRequest, plans []Plan, insurersByID map[string]Insurer) ([]Quote, error) {
	quotes := make([]Quote, 0, len(plans))

	for i := range plans {
		plan := &plans[i]

		insurer, ok := insurersByID[plan.InsurerID]
		if !ok {
			continue
		}

		premium, err := ComputePremium(plan, req)
		if err != nil {
			return nil, fmt.Errorf("pricing plan %q: %w", plan.Name, err)
		}

		quotes = append(quotes, Quote{
			RequestID:      requestID,
			InsurerName:    insurer.Name,
			PlanName:       plan.Name,
			MonthlyPremium: premium,
			CoverageAmount: req.CoverageAmount,
			TermYears:      req.TermYears,
			Features:       append([]string{}, plan.Features...),
		})
	}

	SortQuotes(quotes)

	return quotes, nil
}

// SortQuotes orders quotes by ascending monthly premium, keeping the
// relative order of equal premiums.
func SortQuotes(quotes []Quote) {
	slices.SortStableFunc(quotes, func(a, b Quote) int {
		return cmp.Compare(a.MonthlyPremium, b.MonthlyPremium)
	})
}

// QuotesSorted reports whether quotes are in ascending premium order.
func QuotesSorted(quotes []Quote) bool {
	return slices.IsSortedFunc(quotes, func(a, b Quote) int {
		return cmp.Compare(a.MonthlyPremium, b.MonthlyPremium)
	})
}
