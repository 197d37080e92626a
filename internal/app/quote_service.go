// Package app runs the lifequote use cases, seeding the catalog and quoting
// a request, over the ports. Pricing rules live in domain; HTTP and storage
// details live in the adapters.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/platform/logging"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// Quote request outcomes recorded in metrics.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Seeder populates an empty catalog.
type Seeder interface {
	Seed(ctx context.Context) (SeedResult, error)
}

// QuoteService prices a request against every plan in the catalog.
type QuoteService struct {
	catalog ports.CatalogRepository
	quotes  ports.QuoteRepository
	seeder  Seeder
	flags   ports.FeatureFlags
	metrics *telemetry.QuoteMetrics
	runner  *Runner
	logger  *slog.Logger
}

// QuoteServiceConfig contains dependencies for the quote service.
// Catalog and Quotes are required; everything else is optional.
type QuoteServiceConfig struct {
	Catalog ports.CatalogRepository
	Quotes  ports.QuoteRepository

	// Seeder runs before quoting when the auto-seed flag is on.
	Seeder Seeder

	Flags   ports.FeatureFlags
	Metrics *telemetry.QuoteMetrics
	Logger  *slog.Logger
}

// NewQuoteService creates a quote service. It panics if a required
// repository is missing, since that is a wiring bug.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Catalog == nil || cfg.Quotes == nil {
		panic("app: QuoteService requires Catalog and Quotes repositories")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		catalog: cfg.Catalog,
		quotes:  cfg.Quotes,
		seeder:  cfg.Seeder,
		flags:   cfg.Flags,
		metrics: cfg.Metrics,
		runner:  NewRunner(logger),
		logger:  logger.With(slog.String("component", "app.QuoteService")),
	}
}

// catalogSnapshot is what the perform stage hands to verify.
type catalogSnapshot struct {
	requestID string
	plans     []domain.Plan
	insurers  []domain.Insurer
}

// Quote validates req, prices it against every plan whose insurer exists,
// and returns the quotes cheapest first. The request is always recorded;
// each quote is recorded when quote persistence is enabled. Recording
// failures are logged and counted but never fail the call.
func (s *QuoteService) Quote(ctx context.Context, req domain.QuoteRequest) ([]domain.Quote, error) {
	req.ApplyDefaults()

	p := Pipeline[*domain.QuoteRequest, catalogSnapshot, []domain.Quote, []domain.Quote]{
		Name:     "quote",
		Validate: s.validate,
		Perform:  s.perform,
		Verify:   s.verify,
		Archive:  s.archive,
		Respond: func(_ context.Context, _ *domain.QuoteRequest, quotes []domain.Quote) ([]domain.Quote, error) {
			return quotes, nil
		},
	}

	quotes, err := Run(ctx, s.runner, p, &req)
	if err != nil {
		outcome := OutcomeError
		if domain.IsValidation(err) {
			outcome = OutcomeInvalid
		}

		s.metrics.ObserveRequest(outcome, nil)

		return nil, fmt.Errorf("quoting: %w", err)
	}

	premiums := make([]float64, len(quotes))
	for i := range quotes {
		premiums[i] = quotes[i].MonthlyPremium
	}

	s.metrics.ObserveRequest(OutcomeOK, premiums)

	return quotes, nil
}

func (s *QuoteService) validate(_ context.Context, req *domain.QuoteRequest) error {
	return req.Validate()
}

func (s *QuoteService) perform(ctx context.Context, req *domain.QuoteRequest) (catalogSnapshot, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	if s.seeder != nil && s.flagEnabled(ctx, ports.FlagAutoSeed, true) {
		if _, err := s.seeder.Seed(ctx); err != nil {
			return catalogSnapshot{}, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	plans, insurers, err := Parallel2(ctx, s.catalog.ListPlans, s.catalog.ListInsurers)
	if err != nil {
		return catalogSnapshot{}, fmt.Errorf("loading catalog: %w", err)
	}

	requestID, err := s.quotes.SaveRequest(ctx, req)
	if err != nil {
		requestID = uuid.NewString()

		logger.WarnContext(ctx, "failed to record quote request, using local id",
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		s.metrics.PersistFailed(ports.CollectionQuoteRequest)
	}

	req.ID = requestID

	return catalogSnapshot{requestID: requestID, plans: plans, insurers: insurers}, nil
}

func (s *QuoteService) verify(ctx context.Context, req *domain.QuoteRequest, snap catalogSnapshot) ([]domain.Quote, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	quotes, err := domain.BuildQuotes(snap.requestID, req, snap.plans, domain.IndexInsurers(snap.insurers))
	if err != nil {
		return nil, err
	}

	if !domain.QuotesSorted(quotes) {
		return nil, fmt.Errorf("quotes for request %s are not in premium order", snap.requestID)
	}

	if skipped := len(snap.plans) - len(quotes); skipped > 0 {
		logger.DebugContext(ctx, "skipped plans with unknown insurer", slog.Int("skipped", skipped))
	}

	for i := range quotes {
		logger.Log(ctx, logging.LevelTrace, "priced plan",
			slog.String("plan", quotes[i].PlanName),
			slog.String("insurer", quotes[i].InsurerName),
			slog.Float64("monthly_premium", quotes[i].MonthlyPremium),
		)
	}

	return quotes, nil
}

// archive writes each quote. Failures are logged and counted, then dropped.
func (s *QuoteService) archive(ctx context.Context, _ *domain.QuoteRequest, quotes []domain.Quote) error {
	if !s.flagEnabled(ctx, ports.FlagPersistQuotes, true) {
		return nil
	}

	logger := logging.FromContextOr(ctx, s.logger)

	// Written one at a time so the quote collection keeps ranked order.
	for i := range quotes {
		id, err := s.quotes.SaveQuote(ctx, &quotes[i])
		if err != nil {
			logger.WarnContext(ctx, "failed to record quote",
				slog.String("plan", quotes[i].PlanName),
				slog.Any("error", err),
			)
			s.metrics.PersistFailed(ports.CollectionQuote)

			continue
		}

		quotes[i].ID = id
	}

	return nil
}

func (s *QuoteService) flagEnabled(ctx context.Context, flag string, defaultValue bool) bool {
	if s.flags == nil {
		return defaultValue
	}

	return s.flags.IsEnabled(ctx, flag, defaultValue)
}
