// Package store adapts a ports.DocumentStore into the typed catalog and
// quote repositories used by the application layer.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// storeService names the store in UnavailableError values.
const storeService = "docstore"

// Repository implements ports.CatalogRepository and ports.QuoteRepository.
type Repository struct {
	docs ports.DocumentStore
}

// Compile-time interface checks.
var (
	_ ports.CatalogRepository = (*Repository)(nil)
	_ ports.QuoteRepository   = (*Repository)(nil)
)

// NewRepository wraps docs.
func NewRepository(docs ports.DocumentStore) *Repository {
	return &Repository{docs: docs}
}

// CountInsurers implements ports.CatalogRepository.
func (r *Repository) CountInsurers(ctx context.Context) (int, error) {
	return r.count(ctx, CollectionInsurer)
}

// CountPlans implements ports.CatalogRepository.
func (r *Repository) CountPlans(ctx context.Context) (int, error) {
	return r.count(ctx, CollectionPlan)
}

// ListInsurers implements ports.CatalogRepository.
func (r *Repository) ListInsurers(ctx context.Context) ([]domain.Insurer, error) {
	docs, err := r.docs.FindAll(ctx, CollectionInsurer)
	if err != nil {
		return nil, unavailable(err)
	}

	insurers := make([]domain.Insurer, 0, len(docs))

	for _, doc := range docs {
		ins, err := decodeInsurer(doc.ID, doc.Body)
		if err != nil {
			return nil, err
		}

		insurers = append(insurers, ins)
	}

	return insurers, nil
}

// ListPlans implements ports.CatalogRepository.
func (r *Repository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	docs, err := r.docs.FindAll(ctx, CollectionPlan)
	if err != nil {
		return nil, unavailable(err)
	}

	plans := make([]domain.Plan, 0, len(docs))

	for _, doc := range docs {
		plan, err := decodePlan(doc.ID, doc.Body)
		if err != nil {
			return nil, err
		}

		plans = append(plans, plan)
	}

	return plans, nil
}

// AddInsurer implements ports.CatalogRepository.
func (r *Repository) AddInsurer(ctx context.Context, insurer *domain.Insurer) (string, error) {
	if err := insurer.Validate(); err != nil {
		return "", err
	}

	body, err := encodeInsurer(insurer)
	if err != nil {
		return "", fmt.Errorf("encoding insurer: %w", err)
	}

	return r.insert(ctx, CollectionInsurer, body)
}

// AddPlan implements ports.CatalogRepository.
func (r *Repository) AddPlan(ctx context.Context, plan *domain.Plan) (string, error) {
	if err := plan.Validate(); err != nil {
		return "", err
	}

	body, err := encodePlan(plan)
	if err != nil {
		return "", fmt.Errorf("encoding plan: %w", err)
	}

	return r.insert(ctx, CollectionPlan, body)
}

// SaveRequest implements ports.QuoteRepository.
func (r *Repository) SaveRequest(ctx context.Context, req *domain.QuoteRequest) (string, error) {
	body, err := encodeQuoteRequest(req)
	if err != nil {
		return "", fmt.Errorf("encoding quote request: %w", err)
	}

	return r.insert(ctx, CollectionQuoteRequest, body)
}

// SaveQuote implements ports.QuoteRepository.
func (r *Repository) SaveQuote(ctx context.Context, quote *domain.Quote) (string, error) {
	body, err := encodeQuote(quote)
	if err != nil {
		return "", fmt.Errorf("encoding quote: %w", err)
	}

	return r.insert(ctx, CollectionQuote, body)
}

func (r *Repository) insert(ctx context.Context, collection string, body []byte) (string, error) {
	id, err := r.docs.InsertOne(ctx, collection, body)
	if err != nil {
		return "", unavailable(err)
	}

	return id, nil
}

func (r *Repository) count(ctx context.Context, collection string) (int, error) {
	n, err := r.docs.Count(ctx, collection)
	if err != nil {
		return 0, unavailable(err)
	}

	return n, nil
}

// unavailable maps a store failure to UnavailableError. Context errors stay
// in the chain so callers can tell an expired deadline from an outage.
func unavailable(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", domain.NewUnavailableError(storeService, "request aborted"), err)
	}

	return domain.NewUnavailableError(storeService, err.Error())
}
