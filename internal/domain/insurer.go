package domain

import "strings"

// DefaultInsurerRating is applied when an insurer is created without a rating.
const DefaultInsurerRating = 4.5

// Insurer is a company offering one or more plans.
// Insurers are created by the seed routine and never modified afterward.
type Insurer struct {
	// ID is the opaque identifier assigned by the store on insert.
	ID string

	Name    string
	LogoURL string
	Rating  float64
	Tagline string
}

// Validate checks the insurer's field constraints.
func (i *Insurer) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return NewValidationError("name", "must not be empty")
	}

	if i.Rating < 0 || i.Rating > 5 {
		return invalidValue("rating", "must be between 0 and 5", i.Rating)
	}

	return nil
}

// IndexInsurers returns insurers keyed by ID.
func IndexInsurers(insurers []Insurer) map[string]Insurer {
	byID := make(map[string]Insurer, len(insurers))
	for _, ins := range insurers {
		byID[ins.ID] = ins
	}

	return byID
}
