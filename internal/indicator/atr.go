package indicator

import "math"

// DefaultATRPeriod is the conventional ATR lookback.
const DefaultATRPeriod = 14

// trueRange returns the true range of bar i given the previous close.
func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if d := math.Abs(high - prevClose); d > tr {
		tr = d
	}
	if d := math.Abs(low - prevClose); d > tr {
		tr = d
	}
	return tr
}

// ATR computes the Wilder-smoothed average true range: a simple mean of
// the first period true ranges, then atr = (atr*(period-1) + tr)/period
// for each later bar.
func ATR(highs, lows, closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return 0, false
	}

	var atr float64
	for i := 1; i <= period; i++ {
		atr += trueRange(highs[i], lows[i], closes[i-1])
	}
	atr /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		tr := trueRange(highs[i], lows[i], closes[i-1])
		atr = (atr*float64(period-1) + tr) / float64(period)
	}
	return atr, true
}
