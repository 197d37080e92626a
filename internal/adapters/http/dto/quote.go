package dto

import (
	"github.com/jsamuelsen/lifequote/internal/app"
	"github.com/jsamuelsen/lifequote/internal/domain"
)

// QuoteRequest is the POST /quote body. Gender is a pointer so an absent
// field (defaulted to male) can be told apart from an explicit "".
type QuoteRequest struct {
	FirstName      string  `json:"first_name"      validate:"omitempty,notempty"`
	Age            int     `json:"age"             validate:"required,gte=18,lte=70"`
	Gender         *string `json:"gender"          validate:"omitnil,oneof=male female other"`
	Smoker         bool    `json:"smoker"`
	CoverageAmount int     `json:"coverage_amount" validate:"required,gte=50000,lte=2000000"`
	TermYears      int     `json:"term_years"      validate:"required,gte=5,lte=40"`
}

// ToDomain converts the body to a domain request. Defaults are applied by
// the service.
func (r *QuoteRequest) ToDomain() domain.QuoteRequest {
	var gender domain.Gender
	if r.Gender != nil {
		gender = domain.Gender(*r.Gender)
	}

	return domain.QuoteRequest{
		FirstName:      r.FirstName,
		Age:            r.Age,
		Gender:         gender,
		Smoker:         r.Smoker,
		CoverageAmount: r.CoverageAmount,
		TermYears:      r.TermYears,
	}
}

// QuoteResponse is one ranked quote.
type QuoteResponse struct {
	RequestID      string   `json:"request_id"`
	InsurerName    string   `json:"insurer_name"`
	PlanName       string   `json:"plan_name"`
	MonthlyPremium float64  `json:"monthly_premium"`
	CoverageAmount int      `json:"coverage_amount"`
	TermYears      int      `json:"term_years"`
	Features       []string `json:"features"`
}

// NewQuoteResponses converts ranked domain quotes, keeping their order.
// An empty ranking encodes as [].
func NewQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))

	for i := range quotes {
		q := &quotes[i]

		features := q.Features
		if features == nil {
			features = []string{}
		}

		out = append(out, QuoteResponse{
			RequestID:      q.RequestID,
			InsurerName:    q.InsurerName,
			PlanName:       q.PlanName,
			MonthlyPremium: q.MonthlyPremium,
			CoverageAmount: q.CoverageAmount,
			TermYears:      q.TermYears,
			Features:       features,
		})
	}

	return out
}

// SeedResponse is the POST /seed body.
type SeedResponse struct {
	Insurers int `json:"insurers"`
	Plans    int `json:"plans"`
}

// NewSeedResponse converts a seed result.
func NewSeedResponse(r app.SeedResult) SeedResponse {
	return SeedResponse{Insurers: r.Insurers, Plans: r.Plans}
}

// MessageResponse carries a single status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// StoreStatusResponse is the GET /test body. Collections holds at most ten
// names.
type StoreStatusResponse struct {
	Backend     string   `json:"backend"`
	Store       string   `json:"store"`
	Connected   bool     `json:"connected"`
	Collections []string `json:"collections"`
	Error       string   `json:"error,omitempty"`
}
