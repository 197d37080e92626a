package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/lifequote/internal/domain"
	"github.com/jsamuelsen/lifequote/internal/mocks"
	"github.com/jsamuelsen/lifequote/internal/platform/telemetry"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seederFunc adapts a function to the Seeder interface.
type seederFunc func(ctx context.Context) (SeedResult, error)

func (f seederFunc) Seed(ctx context.Context) (SeedResult, error) { return f(ctx) }

func demoInsurers() []domain.Insurer {
	return []domain.Insurer{
		{ID: "acme", Name: "Acme Life", Rating: 4.6},
		{ID: "shield", Name: "ShieldGuard", Rating: 4.4},
		{ID: "family", Name: "FamilyFirst", Rating: 4.7},
	}
}

func demoPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID: "p1", InsurerID: "acme", Name: "Term Secure", CoverageAmount: 250000, TermYears: 20,
			SmokerMultiplier: 1.7, MaleFactor: 1.05,
			AgeBand: []int{25, 35, 45, 55}, BaseRates: []float64{12, 18, 29, 48},
			Features: []string{"Accelerated benefits", "Level premiums", "Convertible"},
		},
		{
			ID: "p2", InsurerID: "shield", Name: "Guardian Term", CoverageAmount: 500000, TermYears: 30,
			SmokerMultiplier: 1.8, MaleFactor: 1.03,
			AgeBand: []int{25, 35, 45, 55}, BaseRates: []float64{15, 22, 36, 60},
			Features: []string{"Online application", "Living benefits", "Critical illness rider"},
		},
		{
			ID: "p3", InsurerID: "family", Name: "Family Promise", CoverageAmount: 300000, TermYears: 20,
			SmokerMultiplier: 1.6, MaleFactor: 1.02,
			AgeBand: []int{25, 35, 45, 55}, BaseRates: []float64{13, 19.5, 31, 50},
			Features: []string{"Child rider", "Waiver of premium", "No exam up to $250k"},
		},
	}
}

func demoRequest() domain.QuoteRequest {
	return domain.QuoteRequest{
		FirstName:      "Ada",
		Age:            40,
		Gender:         domain.GenderMale,
		CoverageAmount: 250000,
		TermYears:      20,
	}
}

type quoteFixture struct {
	catalog  *mocks.MockCatalogRepository
	quotes   *mocks.MockQuoteRepository
	flags    *mocks.MockFeatureFlags
	registry *prometheus.Registry
	metrics  *telemetry.QuoteMetrics
}

func newQuoteFixture(t *testing.T) *quoteFixture {
	t.Helper()

	reg := prometheus.NewRegistry()

	return &quoteFixture{
		catalog:  mocks.NewMockCatalogRepository(t),
		quotes:   mocks.NewMockQuoteRepository(t),
		flags:    mocks.NewMockFeatureFlags(t),
		registry: reg,
		metrics:  telemetry.NewQuoteMetrics(reg),
	}
}

func (f *quoteFixture) service(seeder Seeder) *QuoteService {
	return NewQuoteService(QuoteServiceConfig{
		Catalog: f.catalog,
		Quotes:  f.quotes,
		Seeder:  seeder,
		Flags:   f.flags,
		Metrics: f.metrics,
		Logger:  discardLogger(),
	})
}

func (f *quoteFixture) expectCatalog() {
	f.catalog.EXPECT().ListPlans(mock.Anything).Return(demoPlans(), nil)
	f.catalog.EXPECT().ListInsurers(mock.Anything).Return(demoInsurers(), nil)
}

func TestNewQuoteService_PanicsWithoutRepositories(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})

	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Catalog: mocks.NewMockCatalogRepository(t)})
	})
}

func TestNewQuoteService_Defaults(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{
		Catalog: mocks.NewMockCatalogRepository(t),
		Quotes:  mocks.NewMockQuoteRepository(t),
	})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.runner)
	assert.NotNil(t, svc.logger)
}

func TestQuoteService_Quote_RanksAndPersists(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoSeed, true).Return(false)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagPersistQuotes, true).Return(true)
	f.expectCatalog()

	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.MatchedBy(func(r *domain.QuoteRequest) bool {
		return r.Age == 40 && r.FirstName == "Ada"
	})).Return("req-1", nil)

	var saved []string

	f.quotes.EXPECT().SaveQuote(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, q *domain.Quote) (string, error) {
			saved = append(saved, q.PlanName)

			return "quote-" + q.PlanName, nil
		}).Times(3)

	quotes, err := f.service(nil).Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	require.Len(t, quotes, 3)

	assert.Equal(t, "Term Secure", quotes[0].PlanName)
	assert.Equal(t, 56.70, quotes[0].MonthlyPremium)
	assert.Equal(t, "Family Promise", quotes[1].PlanName)
	assert.Equal(t, 59.67, quotes[1].MonthlyPremium)
	assert.Equal(t, "Guardian Term", quotes[2].PlanName)
	assert.Equal(t, 67.98, quotes[2].MonthlyPremium)

	for _, q := range quotes {
		assert.Equal(t, "req-1", q.RequestID)
		assert.Equal(t, "quote-"+q.PlanName, q.ID)
	}

	assert.Equal(t, []string{"Term Secure", "Family Promise", "Guardian Term"}, saved)
}

func TestQuoteService_Quote_AutoSeedsBeforeReading(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoSeed, true).Return(true)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagPersistQuotes, true).Return(false)

	seeded := false
	seeder := seederFunc(func(context.Context) (SeedResult, error) {
		seeded = true
		return SeedResult{Insurers: 3, Plans: 3}, nil
	})

	f.catalog.EXPECT().ListPlans(mock.Anything).RunAndReturn(func(context.Context) ([]domain.Plan, error) {
		assert.True(t, seeded, "catalog read before seeding")
		return demoPlans(), nil
	})
	f.catalog.EXPECT().ListInsurers(mock.Anything).Return(demoInsurers(), nil)
	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.Anything).Return("req-1", nil)

	quotes, err := f.service(seeder).Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	assert.Len(t, quotes, 3)
	assert.True(t, seeded)
}

func TestQuoteService_Quote_SeedFailure(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoSeed, true).Return(true)

	seeder := seederFunc(func(context.Context) (SeedResult, error) {
		return SeedResult{}, domain.NewUnavailableError("docstore", "connection refused")
	})

	quotes, err := f.service(seeder).Quote(context.Background(), demoRequest())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Nil(t, quotes)
}

func TestQuoteService_Quote_ValidationFailsBeforeAnyIO(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.QuoteRequest)
		field  string
	}{
		{name: "too young", modify: func(r *domain.QuoteRequest) { r.Age = 17 }, field: "age"},
		{name: "coverage too high", modify: func(r *domain.QuoteRequest) { r.CoverageAmount = 3000000 }, field: "coverage_amount"},
		{name: "bad gender", modify: func(r *domain.QuoteRequest) { r.Gender = "robot" }, field: "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuoteFixture(t)

			req := demoRequest()
			tt.modify(&req)

			quotes, err := f.service(nil).Quote(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, quotes)

			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)

			step, ok := FailedStage(err)
			require.True(t, ok)
			assert.Equal(t, StageValidate, step)
		})
	}
}

func TestQuoteService_Quote_DefaultsGender(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, mock.Anything, true).Return(false)
	f.expectCatalog()
	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.MatchedBy(func(r *domain.QuoteRequest) bool {
		return r.Gender == domain.GenderMale
	})).Return("req-1", nil)

	req := demoRequest()
	req.Gender = ""

	quotes, err := f.service(nil).Quote(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 56.70, quotes[0].MonthlyPremium, "male factor applied")
}

func TestQuoteService_Quote_CatalogUnavailable(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoSeed, true).Return(false)
	f.catalog.EXPECT().ListPlans(mock.Anything).Return(nil, domain.NewUnavailableError("docstore", "timeout"))
	f.catalog.EXPECT().ListInsurers(mock.Anything).Return(demoInsurers(), nil).Maybe()

	quotes, err := f.service(nil).Quote(context.Background(), demoRequest())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.Nil(t, quotes)

	step, ok := FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, StagePerform, step)
}

func TestQuoteService_Quote_RequestPersistFailureUsesLocalID(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoSeed, true).Return(false)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagPersistQuotes, true).Return(false)
	f.expectCatalog()
	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	quotes, err := f.service(nil).Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	require.Len(t, quotes, 3)

	_, parseErr := uuid.Parse(quotes[0].RequestID)
	require.NoError(t, parseErr, "fallback request id should be a UUID")

	for _, q := range quotes {
		assert.Equal(t, quotes[0].RequestID, q.RequestID)
	}
}

func TestQuoteService_Quote_QuotePersistFailureIsSwallowed(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagAutoSeed, true).Return(false)
	f.flags.EXPECT().IsEnabled(mock.Anything, ports.FlagPersistQuotes, true).Return(true)
	f.expectCatalog()
	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.Anything).Return("req-1", nil)
	f.quotes.EXPECT().SaveQuote(mock.Anything, mock.Anything).Return("", errors.New("disk full")).Times(3)

	quotes, err := f.service(nil).Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	require.Len(t, quotes, 3)

	for _, q := range quotes {
		assert.Empty(t, q.ID)
	}

	expected := `
# HELP lifequote_persist_failures_total Audit records that could not be written, by collection.
# TYPE lifequote_persist_failures_total counter
lifequote_persist_failures_total{collection="quote"} 3
`
	require.NoError(t, testutil.GatherAndCompare(f.registry, strings.NewReader(expected),
		"lifequote_persist_failures_total"))
}

func TestQuoteService_Quote_SkipsDanglingInsurer(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, mock.Anything, true).Return(false)
	f.catalog.EXPECT().ListPlans(mock.Anything).Return(demoPlans(), nil)
	f.catalog.EXPECT().ListInsurers(mock.Anything).Return(demoInsurers()[:1], nil)
	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.Anything).Return("req-1", nil)

	quotes, err := f.service(nil).Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Acme Life", quotes[0].InsurerName)
}

func TestQuoteService_Quote_EmptyCatalog(t *testing.T) {
	f := newQuoteFixture(t)
	f.flags.EXPECT().IsEnabled(mock.Anything, mock.Anything, true).Return(false)
	f.catalog.EXPECT().ListPlans(mock.Anything).Return([]domain.Plan{}, nil)
	f.catalog.EXPECT().ListInsurers(mock.Anything).Return([]domain.Insurer{}, nil)
	f.quotes.EXPECT().SaveRequest(mock.Anything, mock.Anything).Return("req-1", nil)

	quotes, err := f.service(nil).Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func TestQuoteService_Quote_NilFlagsUseDefaults(t *testing.T) {
	catalog := mocks.NewMockCatalogRepository(t)
	quotes := mocks.NewMockQuoteRepository(t)

	catalog.EXPECT().ListPlans(mock.Anything).Return(demoPlans(), nil)
	catalog.EXPECT().ListInsurers(mock.Anything).Return(demoInsurers(), nil)
	quotes.EXPECT().SaveRequest(mock.Anything, mock.Anything).Return("req-1", nil)
	quotes.EXPECT().SaveQuote(mock.Anything, mock.Anything).Return("q", nil).Times(3)

	seedCalls := 0
	svc := NewQuoteService(QuoteServiceConfig{
		Catalog: catalog,
		Quotes:  quotes,
		Seeder: seederFunc(func(context.Context) (SeedResult, error) {
			seedCalls++
			return SeedResult{}, nil
		}),
		Logger: discardLogger(),
	})

	result, err := svc.Quote(context.Background(), demoRequest())

	require.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, 1, seedCalls, "auto seed defaults on")
}
