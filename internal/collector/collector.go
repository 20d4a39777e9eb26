// Package collector fetches market data from an upstream provider and
// hands the analytical core its snapshot plus aligned history arrays.
package collector

import (
	"context"
	"fmt"
	"time"

	"TradePulse/internal/metrics"
	"TradePulse/internal/model"
)

// DefaultLookbackDays is the daily history window fetched per symbol.
const DefaultLookbackDays = 120

// Collector pairs a Fetcher with a lookback window.
type Collector struct {
	Fetcher  Fetcher
	Lookback int
}

// New creates a Collector with the default lookback.
func New(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher, Lookback: DefaultLookbackDays}
}

// Collect fetches the current snapshot and daily history for symbol.
// The returned quotes are validated before they reach any indicator.
func (c *Collector) Collect(ctx context.Context, symbol string) (model.Snapshot, model.Quotes, error) {
	snap, err := c.Fetcher.FetchSnapshot(ctx, symbol)
	if err != nil {
		return model.Snapshot{}, model.Quotes{}, fmt.Errorf("fetch snapshot %s: %w", symbol, err)
	}

	now := time.Now()
	start := time.Now()
	quotes, err := c.Fetcher.FetchCandles(ctx, symbol, Daily, now.AddDate(0, 0, -c.Lookback), now)
	metrics.FetchDuration.WithLabelValues(c.Fetcher.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		return model.Snapshot{}, model.Quotes{}, fmt.Errorf("fetch candles %s: %w", symbol, err)
	}
	if err := quotes.Validate(); err != nil {
		return model.Snapshot{}, model.Quotes{}, fmt.Errorf("candles %s: %w", symbol, err)
	}
	return snap, quotes, nil
}
