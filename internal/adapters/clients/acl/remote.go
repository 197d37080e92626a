package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/lifequote/internal/adapters/clients"
	"github.com/jsamuelsen/lifequote/internal/app"
	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/platform/logging"
)

// quoteRequestBody is the API's POST /quote body.
type quoteRequestBody struct {
	FirstName      string `json:"first_name,omitempty"`
	Age            int    `json:"age"`
	Gender         string `json:"gender,omitempty"`
	Smoker         bool   `json:"smoker"`
	CoverageAmount int    `json:"coverage_amount"`
	TermYears      int    `json:"term_years"`
}

// quoteBody is one element of the POST /quote response.
type quoteBody struct {
	RequestID      string   `json:"request_id"`
	InsurerName    string   `json:"insurer_name"`
	PlanName       string   `json:"plan_name"`
	MonthlyPremium float64  `json:"monthly_premium"`
	CoverageAmount int      `json:"coverage_amount"`
	TermYears      int      `json:"term_years"`
	Features       []string `json:"features"`
}

// seedBody is the POST /seed response.
type seedBody struct {
	Insurers int `json:"insurers"`
	Plans    int `json:"plans"`
}

// Remote quotes and seeds through a running lifequote service.
type Remote struct {
	client *clients.Client
	logger *slog.Logger
}

// NewRemote wraps client. It panics if client is nil.
func NewRemote(client *clients.Client, logger *slog.Logger) *Remote {
	if client == nil {
		panic("acl: Remote requires a client")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Remote{client: client, logger: logger}
}

// Quote posts req and returns the ranked quotes.
func (r *Remote) Quote(ctx context.Context, req domain.QuoteRequest) ([]domain.Quote, error) {
	payload, err := json.Marshal(quoteRequestBody{
		FirstName:      req.FirstName,
		Age:            req.Age,
		Gender:         string(req.Gender),
		Smoker:         req.Smoker,
		CoverageAmount: req.CoverageAmount,
		TermYears:      req.TermYears,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding quote request: %w", err)
	}

	var body []quoteBody
	if err := r.call(ctx, "/quote", payload, "quote", &body); err != nil {
		return nil, err
	}

	quotes := make([]domain.Quote, 0, len(body))
	for i := range body {
		quotes = append(quotes, toDomainQuote(&body[i]))
	}

	logging.FromContextOr(ctx, r.logger).Log(ctx, logging.LevelTrace, "translated remote quotes",
		slog.Int("count", len(quotes)))

	return quotes, nil
}

// Seed asks the service to seed its catalog.
func (r *Remote) Seed(ctx context.Context) (app.SeedResult, error) {
	var body seedBody
	if err := r.call(ctx, "/seed", []byte("{}"), "seed", &body); err != nil {
		return app.SeedResult{}, err
	}

	return app.SeedResult{Insurers: body.Insurers, Plans: body.Plans}, nil
}

func (r *Remote) call(ctx context.Context, path string, payload []byte, operation string, out any) error {
	resp, err := r.client.Post(ctx, path, payload)
	if err != nil {
		return MapTransportError(err, r.client.Name(), operation)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "remote call rejected",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode),
		)

		return MapHTTPError(resp.StatusCode, resp.Body, r.client.Name(), operation)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", operation, err)
	}

	return nil
}

func toDomainQuote(b *quoteBody) domain.Quote {
	features := b.Features
	if features == nil {
		features = []string{}
	}

	return domain.Quote{
		RequestID:      b.RequestID,
		InsurerName:    b.InsurerName,
		PlanName:       b.PlanName,
		MonthlyPremium: b.MonthlyPremium,
		CoverageAmount: b.CoverageAmount,
		TermYears:      b.TermYears,
		Features:       features,
	}
}
