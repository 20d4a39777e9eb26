package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const chartPayload = `{
	"chart": {
		"result": [{
			"meta": {"regularMarketPrice": 103.5, "chartPreviousClose": 100},
			"timestamp": [1700000000, 1700086400, 1700172800],
			"indicators": {"quote": [{
				"open":   [100, 101, 102],
				"high":   [101, 102, 104],
				"low":    [99, 100, 101],
				"close":  [100.5, 101.5, 103],
				"volume": [1000, 1100, 1200]
			}]}
		}],
		"error": null
	}
}`

func chartTestServer(t *testing.T, payload string, status int) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f
}

func TestYahooFetchCandles(t *testing.T) {
	f := chartTestServer(t, chartPayload, http.StatusOK)

	quotes, err := f.FetchCandles(context.Background(), "AAPL", Daily,
		time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("fetch candles: %v", err)
	}
	if quotes.Len() != 3 {
		t.Fatalf("expected 3 bars, got %d", quotes.Len())
	}
	if quotes.Closes[2] != 103 {
		t.Errorf("expected last close 103, got %.2f", quotes.Closes[2])
	}
	if quotes.Volumes[0] != 1000 {
		t.Errorf("expected first volume 1000, got %.0f", quotes.Volumes[0])
	}
	if err := quotes.Validate(); err != nil {
		t.Errorf("fetched quotes must validate: %v", err)
	}
}

func TestYahooFetchSnapshot(t *testing.T) {
	f := chartTestServer(t, chartPayload, http.StatusOK)

	snap, err := f.FetchSnapshot(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("fetch snapshot: %v", err)
	}
	if snap.Price != 103.5 {
		t.Errorf("expected the meta market price 103.5, got %.2f", snap.Price)
	}
	if snap.PrevClose != 101.5 {
		t.Errorf("expected the prior bar close 101.5, got %.2f", snap.PrevClose)
	}
	if snap.ChangePct <= 0 {
		t.Errorf("expected a positive change, got %.2f", snap.ChangePct)
	}
}

func TestYahooFetchCandles_HTTPError(t *testing.T) {
	f := chartTestServer(t, "rate limited", http.StatusTooManyRequests)

	if _, err := f.FetchCandles(context.Background(), "AAPL", Daily,
		time.Now().AddDate(0, 0, -5), time.Now()); err == nil {
		t.Error("expected an error on a non-200 response")
	}
}

func TestYahooFetchCandles_NullBarsSkipped(t *testing.T) {
	payload := `{
		"chart": {
			"result": [{
				"meta": {},
				"timestamp": [1700000000, 1700086400],
				"indicators": {"quote": [{
					"open":   [100, null],
					"high":   [101, null],
					"low":    [99, null],
					"close":  [100.5, null],
					"volume": [1000, null]
				}]}
			}],
			"error": null
		}
	}`
	f := chartTestServer(t, payload, http.StatusOK)

	quotes, err := f.FetchCandles(context.Background(), "AAPL", Daily,
		time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("fetch candles: %v", err)
	}
	if quotes.Len() != 1 {
		t.Errorf("expected the null bar dropped, got %d bars", quotes.Len())
	}
}

func TestYahooFetchCandles_RaggedArraysGuarded(t *testing.T) {
	// Quote arrays shorter than the timestamp list must drop the
	// trailing bars, not panic.
	payload := `{
		"chart": {
			"result": [{
				"meta": {},
				"timestamp": [1700000000, 1700086400, 1700172800],
				"indicators": {"quote": [{
					"open":   [100, 101],
					"high":   [101, 102],
					"low":    [99, 100],
					"close":  [100.5, 101.5],
					"volume": [1000]
				}]}
			}],
			"error": null
		}
	}`
	f := chartTestServer(t, payload, http.StatusOK)

	quotes, err := f.FetchCandles(context.Background(), "AAPL", Daily,
		time.Now().AddDate(0, 0, -5), time.Now())
	if err != nil {
		t.Fatalf("fetch candles: %v", err)
	}
	if quotes.Len() != 2 {
		t.Errorf("expected 2 bars from a ragged payload, got %d", quotes.Len())
	}
	if quotes.Volumes[1] != 0 {
		t.Errorf("expected a zero volume where the array ran short, got %.0f", quotes.Volumes[1])
	}
}

func TestCollectorValidatesQuotes(t *testing.T) {
	c := New(&MockFetcher{Price: 100})
	snap, quotes, err := c.Collect(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if snap.Symbol != "AAPL" {
		t.Errorf("expected the snapshot symbol set, got %q", snap.Symbol)
	}
	if quotes.Len() == 0 {
		t.Error("expected history bars")
	}
}
