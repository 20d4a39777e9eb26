package collector

import (
	"context"
	"time"

	"TradePulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price    float64
	Bars     []model.Bar
	Snapshot *model.Snapshot
	Err      error
}

func (m *MockFetcher) Name() string { return "mock" }

// FetchCandles returns the configured bars, or a synthetic drifting
// series around Price.
func (m *MockFetcher) FetchCandles(_ context.Context, _ string, _ Resolution, from, to time.Time) (model.Quotes, error) {
	if m.Err != nil {
		return model.Quotes{}, m.Err
	}
	if m.Bars != nil {
		return model.QuotesFromBars(m.Bars), nil
	}
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		days = 60
	}
	return model.QuotesFromBars(GenerateBars(m.Price, days)), nil
}

// FetchSnapshot returns the configured snapshot, or one synthesized
// from Price.
func (m *MockFetcher) FetchSnapshot(_ context.Context, symbol string) (model.Snapshot, error) {
	if m.Err != nil {
		return model.Snapshot{}, m.Err
	}
	if m.Snapshot != nil {
		s := *m.Snapshot
		s.Symbol = symbol
		return s, nil
	}
	return model.Snapshot{
		Symbol:    symbol,
		Price:     m.Price,
		Open:      m.Price * 0.999,
		High:      m.Price * 1.005,
		Low:       m.Price * 0.995,
		PrevClose: m.Price,
		Volume:    1000000,
	}, nil
}

// GenerateBars builds a mildly drifting synthetic series around basePrice.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
