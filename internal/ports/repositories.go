// Package ports holds the interfaces the quote engine needs from the outside
// world: the document store, the repositories built on it, feature flags
// and health checks. Methods take a context first and speak domain types.
package ports

import (
	"context"

	"github.com/jsamuelsen/lifequote/internal/domain"
)

// Document collections.
const (
	CollectionInsurer      = "insurer"
	CollectionPlan         = "plan"
	CollectionQuoteRequest = "quoterequest"
	CollectionQuote        = "quote"
)

// CatalogRepository stores the read-mostly insurer and plan catalog.
//
// List methods return records in insertion order. Implementations must
// reject records that do not satisfy the domain load contract with
// domain.ErrInvalidRecord rather than returning partially filled values.
type CatalogRepository interface {
	// CountInsurers returns the number of stored insurers.
	CountInsurers(ctx context.Context) (int, error)

	// CountPlans returns the number of stored plans.
	CountPlans(ctx context.Context) (int, error)

	// ListInsurers returns every stored insurer.
	ListInsurers(ctx context.Context) ([]domain.Insurer, error)

	// ListPlans returns every stored plan.
	ListPlans(ctx context.Context) ([]domain.Plan, error)

	// AddInsurer persists an insurer and returns its assigned ID.
	AddInsurer(ctx context.Context, insurer *domain.Insurer) (string, error)

	// AddPlan persists a plan and returns its assigned ID.
	AddPlan(ctx context.Context, plan *domain.Plan) (string, error)
}

// QuoteRepository is the append-only audit trail of requests and quotes.
type QuoteRepository interface {
	// SaveRequest persists a quote request and returns its assigned ID.
	SaveRequest(ctx context.Context, req *domain.QuoteRequest) (string, error)

	// SaveQuote persists a single quote and returns its assigned ID.
	SaveQuote(ctx context.Context, quote *domain.Quote) (string, error)
}

// DocumentStore is the minimal persistence contract the repositories are
// built on: a set of named collections holding opaque JSON documents.
// Each inserted document receives a unique identifier.
type DocumentStore interface {
	// InsertOne stores body in collection and returns the new document ID.
	InsertOne(ctx context.Context, collection string, body []byte) (string, error)

	// FindAll returns every document in collection in insertion order.
	FindAll(ctx context.Context, collection string) ([]Document, error)

	// Count returns the number of documents in collection.
	Count(ctx context.Context, collection string) (int, error)

	CollectionLister

	// Close releases resources held by the store.
	Close() error
}

// CollectionLister lists the names of non-empty collections.
type CollectionLister interface {
	Collections(ctx context.Context) ([]string, error)
}

// StoreInspector is a store that can be pinged and asked for its
// collections. GET /test reports through it.
type StoreInspector interface {
	HealthChecker
	CollectionLister
}

// Document is a stored JSON body with its assigned identifier.
type Document struct {
	ID   string
	Body []byte
}
