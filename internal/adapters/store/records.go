package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Collection names, re-exported for callers that only import this package.
const (
	CollectionInsurer      = ports.CollectionInsurer
	CollectionPlan         = ports.CollectionPlan
	CollectionQuoteRequest = ports.CollectionQuoteRequest
	CollectionQuote        = ports.CollectionQuote
)

// recordValidate checks the load contract of stored documents.
// Pointer fields distinguish "missing" from a zero value.
var recordValidate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	recordValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
}

type insurerRecord struct {
	Name    *string  `json:"name" validate:"required"`
	LogoURL string   `json:"logo_url,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
	Tagline string   `json:"tagline,omitempty"`
}

type planRecord struct {
	InsurerID        *string   `json:"insurer_id" validate:"required"`
	Name             *string   `json:"name" validate:"required"`
	CoverageAmount   *int      `json:"coverage_amount" validate:"required"`
	TermYears        *int      `json:"term_years" validate:"required"`
	SmokerMultiplier float64   `json:"smoker_multiplier,omitempty"`
	MaleFactor       float64   `json:"male_factor,omitempty"`
	AgeBand          []int     `json:"age_band,omitempty"`
	BaseRates        []float64 `json:"base_rates" validate:"required,min=1"`
	Features         []string  `json:"features"`
}

type quoteRequestRecord struct {
	FirstName      string `json:"first_name,omitempty"`
	Age            *int   `json:"age" validate:"required"`
	Gender         string `json:"gender"`
	Smoker         bool   `json:"smoker"`
	CoverageAmount *int   `json:"coverage_amount" validate:"required"`
	TermYears      *int   `json:"term_years" validate:"required"`
}

type quoteRecord struct {
	RequestID      string   `json:"request_id"`
	InsurerName    string   `json:"insurer_name"`
	PlanName       string   `json:"plan_name"`
	MonthlyPremium float64  `json:"monthly_premium"`
	CoverageAmount int      `json:"coverage_amount"`
	TermYears      int      `json:"term_years"`
	Features       []string `json:"features"`
}

func encodeInsurer(ins *domain.Insurer) ([]byte, error) {
	rating := ins.Rating

	return json.Marshal(insurerRecord{
		Name:    &ins.Name,
		LogoURL: ins.LogoURL,
		Rating:  &rating,
		Tagline: ins.Tagline,
	})
}

func encodePlan(p *domain.Plan) ([]byte, error) {
	return json.Marshal(planRecord{
		InsurerID:        &p.InsurerID,
		Name:             &p.Name,
		CoverageAmount:   &p.CoverageAmount,
		TermYears:        &p.TermYears,
		SmokerMultiplier: p.SmokerMultiplier,
		MaleFactor:       p.MaleFactor,
		AgeBand:          p.AgeBand,
		BaseRates:        p.BaseRates,
		Features:         p.Features,
	})
}

func encodeQuoteRequest(r *domain.QuoteRequest) ([]byte, error) {
	return json.Marshal(quoteRequestRecord{
		FirstName:      r.FirstName,
		Age:            &r.Age,
		Gender:         string(r.Gender),
		Smoker:         r.Smoker,
		CoverageAmount: &r.CoverageAmount,
		TermYears:      &r.TermYears,
	})
}

func encodeQuote(q *domain.Quote) ([]byte, error) {
	features := q.Features
	if features == nil {
		features = []string{}
	}

	return json.Marshal(quoteRecord{
		RequestID:      q.RequestID,
		InsurerName:    q.InsurerName,
		PlanName:       q.PlanName,
		MonthlyPremium: q.MonthlyPremium,
		CoverageAmount: q.CoverageAmount,
		TermYears:      q.TermYears,
		Features:       features,
	})
}

// decodeInsurer applies the insurer load contract: name is required and a
// missing rating defaults to domain.DefaultInsurerRating.
func decodeInsurer(id string, body []byte) (domain.Insurer, error) {
	var rec insurerRecord
	if err := decodeRecord(CollectionInsurer, id, body, &rec); err != nil {
		return domain.Insurer{}, err
	}

	ins := domain.Insurer{
		ID:      id,
		Name:    *rec.Name,
		LogoURL: rec.LogoURL,
		Rating:  domain.DefaultInsurerRating,
		Tagline: rec.Tagline,
	}

	if rec.Rating != nil {
		ins.Rating = *rec.Rating
	}

	if err := ins.Validate(); err != nil {
		return domain.Insurer{}, domain.NewRecordError(CollectionInsurer, id, err.Error())
	}

	return ins, nil
}

// decodePlan applies the plan load contract. Optional pricing fields take
// their domain defaults and the result must pass Plan.Validate.
func decodePlan(id string, body []byte) (domain.Plan, error) {
	var rec planRecord
	if err := decodeRecord(CollectionPlan, id, body, &rec); err != nil {
		return domain.Plan{}, err
	}

	plan := domain.Plan{
		ID:               id,
		InsurerID:        *rec.InsurerID,
		Name:             *rec.Name,
		CoverageAmount:   *rec.CoverageAmount,
		TermYears:        *rec.TermYears,
		SmokerMultiplier: rec.SmokerMultiplier,
		MaleFactor:       rec.MaleFactor,
		AgeBand:          rec.AgeBand,
		BaseRates:        rec.BaseRates,
		Features:         rec.Features,
	}
	plan.ApplyDefaults()

	if err := plan.Validate(); err != nil {
		return domain.Plan{}, domain.NewRecordError(CollectionPlan, id, err.Error())
	}

	return plan, nil
}

func decodeRecord(collection, id string, body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewRecordError(collection, id, fmt.Sprintf("malformed JSON: %v", err))
	}

	if err := recordValidate.Struct(dst); err != nil {
		return domain.NewRecordError(collection, id, describeRecordError(err))
	}

	return nil
}

func describeRecordError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}

	fe := fieldErrs[0]
	if fe.Tag() == "min" {
		return fmt.Sprintf("field %s must have at least %s element(s)", fe.Field(), fe.Param())
	}

	return "missing field " + fe.Field()
}
