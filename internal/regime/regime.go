// Package regime labels the recent window as trending, ranging, or
// choppy from slope and dispersion statistics.
package regime

import (
	"math"

	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// Classification thresholds, in percent.
const (
	strongTrendPct   = 5
	moderateTrendPct = 2
	calmDispersion   = 0.05
	rangingRangePct  = 5
	volatileRatio    = 0.08
)

// Classify computes the half-window trend and dispersion of the closes
// and maps them to a regime label. Rules are evaluated in priority
// order: strong trend, moderate trend, ranging, choppy.
func Classify(closes []float64) model.Regime {
	if len(closes) < 4 {
		return model.Regime{Type: model.Ranging}
	}

	mean := series.Mean(closes)
	sd := series.StdDev(closes)
	dispersion := 0.0
	if mean != 0 {
		dispersion = sd / mean
	}

	half := len(closes) / 2
	firstAvg := series.Mean(closes[:half])
	secondAvg := series.Mean(closes[half:])
	trendPct := 0.0
	if firstAvg != 0 {
		trendPct = (secondAvg - firstAvg) / firstAvg * 100
	}

	hi, _ := series.Highest(closes, len(closes))
	lo, _ := series.Lowest(closes, len(closes))
	rangePct := 0.0
	if mean != 0 {
		rangePct = (hi - lo) / mean * 100
	}

	r := model.Regime{
		TrendPct:   trendPct,
		Dispersion: dispersion,
		Volatile:   dispersion > volatileRatio,
	}

	switch {
	case math.Abs(trendPct) > strongTrendPct && dispersion < calmDispersion:
		if trendPct > 0 {
			r.Type = model.StrongUptrend
		} else {
			r.Type = model.StrongDowntrend
		}
	case math.Abs(trendPct) > moderateTrendPct:
		if trendPct > 0 {
			r.Type = model.ModerateUptrend
		} else {
			r.Type = model.ModerateDowntrend
		}
	case rangePct < rangingRangePct:
		r.Type = model.Ranging
	default:
		r.Type = model.Choppy
	}
	return r
}
