// Package indicator computes technical indicators from parallel OHLCV
// arrays. Every function is pure: identical inputs always yield
// identical outputs, and a series too short for the requested period
// reports ok=false (or a nil record) instead of an error, so callers
// can treat a missing indicator as "does not vote".
package indicator

import "TradePulse/internal/series"

// DefaultRSIPeriod is the conventional RSI lookback.
const DefaultRSIPeriod = 14

// RSI computes the Wilder-smoothed relative strength index.
//
// The seed averages are the simple mean gain/loss over the first period
// deltas; every later delta is folded in with the Wilder recursion
// avg = (avg*(period-1) + x) / period. A series with no losses returns
// 100; a perfectly flat series has no strength to measure and returns
// the neutral 50.
func RSI(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		if avgGain == 0 {
			return 50, true // flat series: neutral by definition
		}
		return 100, true
	}
	rs := avgGain / avgLoss
	return series.Clamp(100-100/(1+rs), 0, 100), true
}
