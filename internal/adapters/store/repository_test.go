package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/lifequote/internal/adapters/store/memory"
	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/mocks"
	"github.com/jsamuelsen/lifequote/internal/platform/config"
)

func newRepo(t *testing.T) (*Repository, *memory.Store) {
	t.Helper()

	docs := memory.New()

	return NewRepository(docs), docs
}

func acmeLife() *domain.Insurer {
	return &domain.Insurer{
		Name:    "Acme Life",
		LogoURL: "https://dummyimage.com/80x80/0a74da/ffffff&text=A",
		Rating:  4.6,
		Tagline: "Protecting what matters.",
	}
}

func termSecure(insurerID string) *domain.Plan {
	return &domain.Plan{
		InsurerID:        insurerID,
		Name:             "Term Secure",
		CoverageAmount:   250000,
		TermYears:        20,
		SmokerMultiplier: 1.7,
		MaleFactor:       1.05,
		AgeBand:          []int{25, 35, 45, 55},
		BaseRates:        []float64{12, 18, 29, 48},
		Features:         []string{"Accelerated benefits", "Level premiums", "Convertible"},
	}
}

func TestRepository_CatalogRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	insurerID, err := repo.AddInsurer(ctx, acmeLife())
	require.NoError(t, err)

	planID, err := repo.AddPlan(ctx, termSecure(insurerID))
	require.NoError(t, err)

	insurers, err := repo.ListInsurers(ctx)
	require.NoError(t, err)
	require.Len(t, insurers, 1)
	assert.Equal(t, insurerID, insurers[0].ID)
	assert.Equal(t, "Acme Life", insurers[0].Name)
	assert.Equal(t, 4.6, insurers[0].Rating)

	plans, err := repo.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, planID, plans[0].ID)
	assert.Equal(t, insurerID, plans[0].InsurerID)
	assert.Equal(t, []float64{12, 18, 29, 48}, plans[0].BaseRates)
	assert.Equal(t, 1.7, plans[0].SmokerMultiplier)

	nInsurers, err := repo.CountInsurers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nInsurers)

	nPlans, err := repo.CountPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nPlans)
}

func TestRepository_AddRejectsInvalidRecords(t *testing.T) {
	repo, docs := newRepo(t)
	ctx := context.Background()

	plan := termSecure("ins-1")
	plan.BaseRates = nil

	_, err := repo.AddPlan(ctx, plan)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = repo.AddInsurer(ctx, &domain.Insurer{Name: ""})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	collections, err := docs.Collections(ctx)
	require.NoError(t, err)
	assert.Empty(t, collections, "nothing should be written")
}

func TestRepository_AuditTrail(t *testing.T) {
	repo, docs := newRepo(t)
	ctx := context.Background()

	req := &domain.QuoteRequest{
		FirstName:      "Ada",
		Age:            40,
		Gender:         domain.GenderMale,
		CoverageAmount: 250000,
		TermYears:      20,
	}

	requestID, err := repo.SaveRequest(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, requestID)

	_, err = repo.SaveQuote(ctx, &domain.Quote{
		RequestID:      requestID,
		InsurerName:    "Acme Life",
		PlanName:       "Term Secure",
		MonthlyPremium: 56.7,
		CoverageAmount: 250000,
		TermYears:      20,
	})
	require.NoError(t, err)

	stored, err := docs.FindAll(ctx, CollectionQuote)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.JSONEq(t, `{
		"request_id": "`+requestID+`",
		"insurer_name": "Acme Life",
		"plan_name": "Term Secure",
		"monthly_premium": 56.7,
		"coverage_amount": 250000,
		"term_years": 20,
		"features": []
	}`, string(stored[0].Body))

	requests, err := docs.FindAll(ctx, CollectionQuoteRequest)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{
		"first_name": "Ada",
		"age": 40,
		"gender": "male",
		"smoker": false,
		"coverage_amount": 250000,
		"term_years": 20
	}`, string(requests[0].Body))
}

func TestRepository_ListRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		body       string
		list       func(*Repository) error
		reason     string
	}{
		{
			name:       "plan missing base rates",
			collection: CollectionPlan,
			body:       `{"insurer_id":"i","name":"p","coverage_amount":100000,"term_years":10}`,
			list:       listPlans,
			reason:     "missing field base_rates",
		},
		{
			name:       "plan with empty base rates",
			collection: CollectionPlan,
			body:       `{"insurer_id":"i","name":"p","coverage_amount":100000,"term_years":10,"base_rates":[]}`,
			list:       listPlans,
			reason:     "base_rates must have at least 1",
		},
		{
			name:       "plan missing insurer",
			collection: CollectionPlan,
			body:       `{"name":"p","coverage_amount":100000,"term_years":10,"base_rates":[1]}`,
			list:       listPlans,
			reason:     "missing field insurer_id",
		},
		{
			name:       "plan out of range",
			collection: CollectionPlan,
			body:       `{"insurer_id":"i","name":"p","coverage_amount":100000,"term_years":50,"base_rates":[1]}`,
			list:       listPlans,
			reason:     "term_years",
		},
		{
			name:       "insurer missing name",
			collection: CollectionInsurer,
			body:       `{"rating":4}`,
			list:       listInsurers,
			reason:     "missing field name",
		},
		{
			name:       "insurer malformed JSON",
			collection: CollectionInsurer,
			body:       `{"name":`,
			list:       listInsurers,
			reason:     "malformed JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, docs := newRepo(t)

			_, err := docs.InsertOne(context.Background(), tt.collection, []byte(tt.body))
			require.NoError(t, err)

			err = tt.list(repo)

			require.Error(t, err)
			assert.True(t, domain.IsInvalidRecord(err))
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestRepository_DecodeAppliesDefaults(t *testing.T) {
	repo, docs := newRepo(t)
	ctx := context.Background()

	_, err := docs.InsertOne(ctx, CollectionInsurer, []byte(`{"name":"Plain Life"}`))
	require.NoError(t, err)

	_, err = docs.InsertOne(ctx, CollectionPlan,
		[]byte(`{"insurer_id":"i","name":"Basic","coverage_amount":100000,"term_years":10,"base_rates":[9.5]}`))
	require.NoError(t, err)

	insurers, err := repo.ListInsurers(ctx)
	require.NoError(t, err)
	require.Len(t, insurers, 1)
	assert.Equal(t, domain.DefaultInsurerRating, insurers[0].Rating)

	plans, err := repo.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, domain.DefaultSmokerMultiplier, plans[0].SmokerMultiplier)
	assert.Equal(t, domain.DefaultMaleFactor, plans[0].MaleFactor)
	assert.Equal(t, domain.DefaultAgeBand(), plans[0].AgeBand)
	assert.NotNil(t, plans[0].Features)
}

func TestRepository_ExplicitZeroRatingIsKept(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.AddInsurer(ctx, &domain.Insurer{Name: "Unrated", Rating: 0})
	require.NoError(t, err)

	insurers, err := repo.ListInsurers(ctx)
	require.NoError(t, err)
	require.Len(t, insurers, 1)
	assert.Zero(t, insurers[0].Rating)
}

func TestRepository_StoreFailuresAreUnavailable(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("disk full")

	tests := []struct {
		name  string
		setup func(*mocks.MockDocumentStore)
		call  func(*Repository) error
	}{
		{
			name:  "CountInsurers",
			setup: func(m *mocks.MockDocumentStore) { m.EXPECT().Count(mock.Anything, CollectionInsurer).Return(0, storeErr) },
			call:  func(r *Repository) error { _, err := r.CountInsurers(ctx); return err },
		},
		{
			name:  "CountPlans",
			setup: func(m *mocks.MockDocumentStore) { m.EXPECT().Count(mock.Anything, CollectionPlan).Return(0, storeErr) },
			call:  func(r *Repository) error { _, err := r.CountPlans(ctx); return err },
		},
		{
			name:  "ListInsurers",
			setup: func(m *mocks.MockDocumentStore) { m.EXPECT().FindAll(mock.Anything, CollectionInsurer).Return(nil, storeErr) },
			call:  func(r *Repository) error { _, err := r.ListInsurers(ctx); return err },
		},
		{
			name:  "ListPlans",
			setup: func(m *mocks.MockDocumentStore) { m.EXPECT().FindAll(mock.Anything, CollectionPlan).Return(nil, storeErr) },
			call:  func(r *Repository) error { _, err := r.ListPlans(ctx); return err },
		},
		{
			name: "AddInsurer",
			setup: func(m *mocks.MockDocumentStore) {
				m.EXPECT().InsertOne(mock.Anything, CollectionInsurer, mock.Anything).Return("", storeErr)
			},
			call: func(r *Repository) error { _, err := r.AddInsurer(ctx, acmeLife()); return err },
		},
		{
			name: "AddPlan",
			setup: func(m *mocks.MockDocumentStore) {
				m.EXPECT().InsertOne(mock.Anything, CollectionPlan, mock.Anything).Return("", storeErr)
			},
			call: func(r *Repository) error { _, err := r.AddPlan(ctx, termSecure("i")); return err },
		},
		{
			name: "SaveRequest",
			setup: func(m *mocks.MockDocumentStore) {
				m.EXPECT().InsertOne(mock.Anything, CollectionQuoteRequest, mock.Anything).Return("", storeErr)
			},
			call: func(r *Repository) error { _, err := r.SaveRequest(ctx, &domain.QuoteRequest{}); return err },
		},
		{
			name: "SaveQuote",
			setup: func(m *mocks.MockDocumentStore) {
				m.EXPECT().InsertOne(mock.Anything, CollectionQuote, mock.Anything).Return("", storeErr)
			},
			call: func(r *Repository) error { _, err := r.SaveQuote(ctx, &domain.Quote{}); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := mocks.NewMockDocumentStore(t)
			tt.setup(docs)

			err := tt.call(NewRepository(docs))

			require.Error(t, err)
			assert.True(t, domain.IsUnavailable(err))
			assert.Contains(t, err.Error(), "disk full")
		})
	}
}

func TestRepository_DeadlineStaysInChain(t *testing.T) {
	docs := mocks.NewMockDocumentStore(t)
	docs.EXPECT().FindAll(mock.Anything, CollectionPlan).
		Return(nil, fmt.Errorf("query: %w", context.DeadlineExceeded))

	_, err := NewRepository(docs).ListPlans(context.Background())

	assert.True(t, domain.IsUnavailable(err))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		backend, err := Open(ctx, config.StoreConfig{Driver: config.DriverMemory}, logger)
		require.NoError(t, err)
		defer backend.Close()

		assert.IsType(t, &memory.Store{}, backend)
		assert.Equal(t, "docstore", backend.Name())
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.StoreConfig{
			Driver: config.DriverSQLite,
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "q.db"), WAL: true},
		}

		backend, err := Open(ctx, cfg, logger)
		require.NoError(t, err)
		defer backend.Close()

		require.NoError(t, backend.Check(ctx))
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(ctx, config.StoreConfig{Driver: "mongo"}, logger)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo")
	})
}

func listPlans(r *Repository) error {
	_, err := r.ListPlans(context.Background())
	return err
}

func listInsurers(r *Repository) error {
	_, err := r.ListInsurers(context.Background())
	return err
}
