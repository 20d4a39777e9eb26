package indicator

import (
	"math"

	"TradePulse/internal/series"
)

// Default oscillator periods.
const (
	DefaultStochasticPeriod = 14
	DefaultWilliamsPeriod   = 14
	DefaultMFIPeriod        = 14
	DefaultCCIPeriod        = 20
)

// cciClampRange bounds the reported CCI; the ±200 extreme tier remains
// visible well inside the clamp.
const cciClampRange = 300

// StochasticK computes the fast %K: where the latest close sits within
// the highest-high/lowest-low window, scaled to [0,100]. A flat window
// reads 50.
func StochasticK(highs, lows, closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return 0, false
	}
	hh, _ := series.Highest(highs, period)
	ll, _ := series.Lowest(lows, period)
	if hh == ll {
		return 50, true
	}
	c := closes[len(closes)-1]
	return series.Clamp((c-ll)/(hh-ll)*100, 0, 100), true
}

// WilliamsR computes Williams %R over the window, in [-100, 0].
// A flat window reads the neutral -50.
func WilliamsR(highs, lows, closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return 0, false
	}
	hh, _ := series.Highest(highs, period)
	ll, _ := series.Lowest(lows, period)
	if hh == ll {
		return -50, true
	}
	c := closes[len(closes)-1]
	return series.Clamp((hh-c)/(hh-ll)*-100, -100, 0), true
}

// MFI computes the money flow index: an RSI-style ratio of positive to
// negative typical-price money flow over the window.
func MFI(highs, lows, closes, volumes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}
	if len(highs) != len(closes) || len(lows) != len(closes) || len(volumes) != len(closes) {
		return 0, false
	}

	var positive, negative float64
	start := len(closes) - period
	for i := start; i < len(closes); i++ {
		tp := (highs[i] + lows[i] + closes[i]) / 3
		prevTP := (highs[i-1] + lows[i-1] + closes[i-1]) / 3
		flow := tp * volumes[i]
		if tp > prevTP {
			positive += flow
		} else if tp < prevTP {
			negative += flow
		}
	}

	if negative == 0 {
		if positive == 0 {
			return 50, true
		}
		return 100, true
	}
	ratio := positive / negative
	return series.Clamp(100-100/(1+ratio), 0, 100), true
}

// CCI computes the commodity channel index of the typical price against
// its window mean, scaled by 0.015 of the mean absolute deviation.
// The result is clamped to ±300 so extreme prints stay comparable.
func CCI(highs, lows, closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return 0, false
	}

	tps := make([]float64, period)
	start := len(closes) - period
	for i := 0; i < period; i++ {
		idx := start + i
		tps[i] = (highs[idx] + lows[idx] + closes[idx]) / 3
	}

	mean := series.Mean(tps)
	meanDev := 0.0
	for _, tp := range tps {
		meanDev += math.Abs(tp - mean)
	}
	meanDev /= float64(period)
	if meanDev == 0 {
		return 0, true
	}

	cci := (tps[period-1] - mean) / (0.015 * meanDev)
	return series.Clamp(cci, -cciClampRange, cciClampRange), true
}
