package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/lifequote/internal/app/seeddata"
	"github.com/jsamuelsen/lifequote/internal/platform/logging"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// SeedResult reports catalog counts after a seed run.
type SeedResult struct {
	Insurers int `json:"insurers"`
	Plans    int `json:"plans"`

	// Seeded is true when this run inserted records.
	Seeded bool `json:"-"`
}

// CatalogService bootstraps the insurer and plan catalog.
type CatalogService struct {
	catalog ports.CatalogRepository
	source  *seeddata.Catalog
	metrics *telemetry.QuoteMetrics
	logger  *slog.Logger
}

// CatalogServiceConfig contains dependencies for the catalog service.
type CatalogServiceConfig struct {
	Catalog ports.CatalogRepository

	// Source is the catalog inserted into an empty store.
	// The embedded demo catalog is used when nil.
	Source *seeddata.Catalog

	Metrics *telemetry.QuoteMetrics
	Logger  *slog.Logger
}

// NewCatalogService validates the seed source and returns the service.
func NewCatalogService(cfg CatalogServiceConfig) (*CatalogService, error) {
	source := cfg.Source
	if source == nil {
		var err error

		source, err = seeddata.Default()
		if err != nil {
			return nil, fmt.Errorf("loading default catalog: %w", err)
		}
	}

	if err := source.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogService{
		catalog: cfg.Catalog,
		source:  source,
		metrics: cfg.Metrics,
		logger:  logger,
	}, nil
}

// Seed inserts the demo catalog unless the store already holds at least one
// insurer and one plan, and returns the resulting counts.
//
// Concurrent callers that both observe an empty catalog may both insert.
func (s *CatalogService) Seed(ctx context.Context) (SeedResult, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	insurers, plans, err := s.counts(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	if insurers > 0 && plans > 0 {
		logger.DebugContext(ctx, "catalog already seeded",
			slog.Int("insurers", insurers),
			slog.Int("plans", plans),
		)

		return SeedResult{Insurers: insurers, Plans: plans}, nil
	}

	addedInsurers, addedPlans, err := s.insert(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	s.metrics.Seeded(addedInsurers, addedPlans)

	insurers, plans, err = s.counts(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	logger.InfoContext(ctx, "catalog seeded",
		slog.Int("insurers", insurers),
		slog.Int("plans", plans),
	)

	return SeedResult{Insurers: insurers, Plans: plans, Seeded: true}, nil
}

func (s *CatalogService) insert(ctx context.Context) (insurers, plans int, err error) {
	for i := range s.source.Insurers {
		entry := &s.source.Insurers[i]
		ins := entry.DomainInsurer()

		insurerID, err := s.catalog.AddInsurer(ctx, &ins)
		if err != nil {
			return insurers, plans, fmt.Errorf("adding insurer %q: %w", ins.Name, err)
		}

		insurers++

		for j := range entry.Plans {
			plan := entry.Plans[j].DomainPlan(insurerID)

			if _, err := s.catalog.AddPlan(ctx, &plan); err != nil {
				return insurers, plans, fmt.Errorf("adding plan %q: %w", plan.Name, err)
			}

			plans++
		}
	}

	return insurers, plans, nil
}

func (s *CatalogService) counts(ctx context.Context) (insurers, plans int, err error) {
	return Parallel2(ctx,
		s.catalog.CountInsurers,
		s.catalog.CountPlans,
	)
}
