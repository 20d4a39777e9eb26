package indicator

import (
	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// Default Bollinger parameters.
const (
	DefaultBollingerPeriod = 20
	DefaultBollingerMult   = 2.0
)

// squeezeWidthRatio flags a volatility squeeze when the band width falls
// below this fraction of the middle band.
const squeezeWidthRatio = 0.10

// Bollinger computes the bands for the most recent bar: SMA(period)
// ± mult standard deviations of the same window.
//
// PercentB is left unclamped so closes beyond the bands show up as
// values outside [0,1]. When the window is perfectly flat the bands
// collapse to a point and PercentB reports the neutral 0.5.
func Bollinger(closes []float64, period int, mult float64) *model.Bollinger {
	if period <= 0 || len(closes) < period {
		return nil
	}

	window := closes[len(closes)-period:]
	middle := series.Mean(window)
	sd := series.StdDev(window)

	upper := middle + mult*sd
	lower := middle - mult*sd

	price := closes[len(closes)-1]
	percentB := 0.5
	if upper != lower {
		percentB = (price - lower) / (upper - lower)
	}

	squeeze := false
	if middle != 0 {
		squeeze = (upper-lower)/middle < squeezeWidthRatio
	}

	return &model.Bollinger{
		Upper:    upper,
		Middle:   middle,
		Lower:    lower,
		PercentB: percentB,
		Squeeze:  squeeze,
	}
}
