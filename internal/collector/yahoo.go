package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"TradePulse/internal/model"
)

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client    *http.Client
	BaseURL   string
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: "https://query1.finance.yahoo.com",
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				RegularMarketVolume float64 `json:"regularMarketVolume"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// at reads one slot of a quote array. Yahoo occasionally returns quote
// arrays shorter than the timestamp list, so out-of-range reads resolve
// to 0 and the bar is dropped by the null-bar check instead of panicking.
func at(arr []interface{}, i int) float64 {
	if i < 0 || i >= len(arr) {
		return 0
	}
	return toFloat(arr[i])
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol, interval string, from, to time.Time) (*yahooChart, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&period1=%d&period2=%d",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), interval, from.Unix(), to.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}
	return &chart, nil
}

// FetchCandles fetches OHLCV bars for symbol between from and to.
func (f *YahooFetcher) FetchCandles(ctx context.Context, symbol string, res Resolution, from, to time.Time) (model.Quotes, error) {
	interval := "1d"
	if res == Weekly {
		interval = "1wk"
	}
	chart, err := f.fetchChart(ctx, symbol, interval, from, to)
	if err != nil {
		return model.Quotes{}, err
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return model.Quotes{}, fmt.Errorf("yahoo: empty candle payload for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]model.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := at(quote.Open, i)
		h := at(quote.High, i)
		l := at(quote.Low, i)
		c := at(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(at(quote.Volume, i)),
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return model.QuotesFromBars(bars), nil
}

// FetchSnapshot fetches the current trading state of symbol from the
// most recent daily bar plus the chart metadata.
func (f *YahooFetcher) FetchSnapshot(ctx context.Context, symbol string) (model.Snapshot, error) {
	now := time.Now()
	chart, err := f.fetchChart(ctx, symbol, "1d", now.AddDate(0, 0, -7), now)
	if err != nil {
		return model.Snapshot{}, err
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return model.Snapshot{}, fmt.Errorf("yahoo: no snapshot data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	last := len(result.Timestamp) - 1

	snap := model.Snapshot{
		Symbol:    symbol,
		Price:     at(quote.Close, last),
		Open:      at(quote.Open, last),
		High:      at(quote.High, last),
		Low:       at(quote.Low, last),
		PrevClose: result.Meta.ChartPreviousClose,
		Volume:    at(quote.Volume, last),
	}
	if result.Meta.RegularMarketPrice > 0 {
		snap.Price = result.Meta.RegularMarketPrice
	}
	if last > 0 {
		if prev := at(quote.Close, last-1); prev > 0 {
			snap.PrevClose = prev
		}
	}
	if snap.PrevClose > 0 {
		snap.ChangePct = (snap.Price - snap.PrevClose) / snap.PrevClose * 100
	}
	return snap, nil
}
