package domain

// Gender of the person being quoted.
type Gender string

// Supported genders. Only GenderMale changes the premium.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Valid reports whether g is one of the supported genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Quote request bounds.
const (
	MinAge = 18
	MaxAge = 70

	MinRequestCoverage = 50000
	MaxRequestCoverage = 2000000
)

// QuoteRequest is what a prospective customer submits to get quotes.
// It is persisted verbatim for analytics and never mutated afterward.
type QuoteRequest struct {
	// ID is assigned by the store when the request is persisted.
	ID string

	FirstName      string
	Age            int
	Gender         Gender
	Smoker         bool
	CoverageAmount int
	TermYears      int
}

// ApplyDefaults fills unset optional fields with their documented defaults.
func (r *QuoteRequest) ApplyDefaults() {
	if r.Gender == "" {
		r.Gender = GenderMale
	}
}

// Validate checks the request against the accepted ranges.
func (r *QuoteRequest) Validate() error {
	switch {
	case r.Age < MinAge || r.Age > MaxAge:
		return invalidValue("age", "must be between 18 and 70", r.Age)
	case !r.Gender.Valid():
		return invalidValue("gender", "must be one of: male female other", r.Gender)
	case r.CoverageAmount < MinRequestCoverage || r.CoverageAmount > MaxRequestCoverage:
		return invalidValue("coverage_amount", "must be between 50000 and 2000000", r.CoverageAmount)
	case r.TermYears < MinTermYears || r.TermYears > MaxTermYears:
		return invalidValue("term_years", "must be between 5 and 40", r.TermYears)
	}

	return nil
}

// Quote is one priced plan offered in response to a QuoteRequest.
type Quote struct {
	// ID is assigned by the store when the quote is persisted.
	ID string

	RequestID      string
	InsurerName    string
	PlanName       string
	MonthlyPremium float64

	// CoverageAmount and TermYears echo the request, not the plan.
	CoverageAmount int
	TermYears      int

	Features []string
}
