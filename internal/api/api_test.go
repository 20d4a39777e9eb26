package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"TradePulse/internal/cache"
	"TradePulse/internal/collector"
	"TradePulse/internal/marketrating"
	"TradePulse/internal/model"
	"TradePulse/internal/recorder"
)

func testServer(fetcher collector.Fetcher) *Server {
	log := zerolog.Nop()
	col := &collector.Collector{Fetcher: fetcher, Lookback: 60}
	rating := marketrating.New(fetcher, cache.NewMemoryStore(), log)
	rating.Lookback = 60
	return New(col, rating, recorder.NewNoopRecorder(), log)
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(&collector.MockFetcher{Price: 100})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected ok status, got %v", body["status"])
	}
}

func TestHandleScore(t *testing.T) {
	srv := testServer(&collector.MockFetcher{Price: 100})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/score/aapl", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res model.ScoreResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Symbol != "AAPL" {
		t.Errorf("expected the symbol upper-cased, got %q", res.Symbol)
	}
	if res.Score < 0 || res.Score > 100 {
		t.Errorf("score out of bounds: %d", res.Score)
	}
	if res.Recommendation == "" {
		t.Error("expected a recommendation tier")
	}
}

func TestHandleScore_UpstreamFailure(t *testing.T) {
	srv := testServer(&collector.MockFetcher{Err: errors.New("provider down")})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/score/aapl", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on upstream failure, got %d", rec.Code)
	}
}

func TestHandleForecast(t *testing.T) {
	srv := testServer(&collector.MockFetcher{Price: 100})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/forecast/msft", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res model.ForecastResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.MethodsUsed < 1 {
		t.Errorf("expected at least one ensemble member, got %d", res.MethodsUsed)
	}
	if res.CurrentPrice <= 0 {
		t.Errorf("expected a positive current price, got %.2f", res.CurrentPrice)
	}
}

func TestHandleRating_CachesSecondCall(t *testing.T) {
	srv := testServer(&collector.MockFetcher{Price: 100})

	first := httptest.NewRecorder()
	srv.Router().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/rating", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", first.Code, first.Body.String())
	}
	var a model.MarketRating
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatal(err)
	}
	if a.Cached {
		t.Error("first rating must be computed, not cached")
	}

	second := httptest.NewRecorder()
	srv.Router().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/rating", nil))
	var b model.MarketRating
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if !b.Cached {
		t.Error("second rating within the TTL must be cached")
	}
	if b.Rating != a.Rating {
		t.Errorf("cached rating %d must match computed %d", b.Rating, a.Rating)
	}
}

func TestMetricsEndpointExposed(t *testing.T) {
	srv := testServer(&collector.MockFetcher{Price: 100})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", rec.Code)
	}
}
