package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen/lifequote/internal/adapters/flags"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

const benchQuoteBody = `{"age":40,"gender":"male","coverage_amount":250000,"term_years":20}`

func benchmarkQuote(b *testing.B, persist bool) {
	api := newTestAPI(b, apiOptions{
		flags: flags.NewStatic(map[string]bool{ports.FlagPersistQuotes: persist}),
	})

	b.ReportAllocs()

	for b.Loop() {
		req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(benchQuoteBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
		}
	}
}

// BenchmarkQuote_Persisted measures the full chain including audit writes.
func BenchmarkQuote_Persisted(b *testing.B) {
	benchmarkQuote(b, true)
}

// BenchmarkQuote_NotPersisted measures the full chain with only the request recorded.
func BenchmarkQuote_NotPersisted(b *testing.B) {
	benchmarkQuote(b, false)
}

// BenchmarkLiveness measures the probe path, which skips tracing and logging.
func BenchmarkLiveness(b *testing.B) {
	api := newTestAPI(b, apiOptions{})
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, req)
	}
}

// BenchmarkReadiness includes the document store ping.
func BenchmarkReadiness(b *testing.B) {
	api := newTestAPI(b, apiOptions{})
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ReportAllocs()

	for b.Loop() {
		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, req)
	}
}
