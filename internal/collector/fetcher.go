package collector

import (
	"context"
	"time"

	"TradePulse/internal/model"
)

// Resolution selects the bar interval of a candle fetch.
type Resolution string

const (
	Daily  Resolution = "D"
	Weekly Resolution = "W"
)

// Fetcher defines the interface for fetching market data. The
// analytical core only ever sees its output, so the whole engine stays
// offline-testable behind this boundary.
type Fetcher interface {
	FetchCandles(ctx context.Context, symbol string, res Resolution, from, to time.Time) (model.Quotes, error)
	FetchSnapshot(ctx context.Context, symbol string) (model.Snapshot, error)
	Name() string
}
