package indicator

import (
	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// Default MACD periods (fast, slow, signal).
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACD computes the moving average convergence/divergence for the most
// recent bar: fast EMA minus slow EMA, a true recursive EMA of the MACD
// line as the signal, and their difference as the histogram.
//
// Requires at least slow bars. With fewer than slow+signal bars the
// signal EMA runs over a short window; it is seeded with the first MACD
// value, so the result stays defined and converges as history grows.
func MACD(closes []float64, fast, slow, signal int) *model.MACD {
	if fast <= 0 || slow <= fast || signal <= 0 {
		return nil
	}
	if len(closes) < slow {
		return nil
	}

	fastEMA := series.EMASeries(closes, fast)
	slowEMA := series.EMASeries(closes, slow)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	// Signal line: EMA(signal) of the MACD line, started where the slow
	// EMA has a full window behind it.
	signalLine := series.EMASeries(macdLine[slow-1:], signal)

	m := macdLine[len(macdLine)-1]
	s := signalLine[len(signalLine)-1]
	return &model.MACD{MACD: m, Signal: s, Histogram: m - s}
}
