// Package level finds support/resistance price areas by clustering
// recent highs and lows, and computes Fibonacci retracement levels.
package level

import (
	"math"
	"sort"

	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// clusterToleranceRatio sets the cluster band width as a fraction of
// the pool's total price range.
const clusterToleranceRatio = 0.02

// minTouches is the formation invariant: a cluster qualifies as a level
// only when touched at least this many times.
const minTouches = 3

// maxReported caps the number of levels returned besides the nearest
// support/resistance pair.
const maxReported = 5

// FibRatios are the standard retracement ratios, in percent.
var FibRatios = []float64{0, 23.6, 38.2, 50, 61.8, 78.6, 100}

// Find pools the window's highs and lows and clusters points lying
// within 2% of the total range of each other.
//
// The clustering is single-link and order-dependent: the first
// unvisited point seeds a cluster and every unvisited point within
// tolerance joins it. This keeps level prices stable for a fixed input
// ordering, which the callers rely on; see DESIGN.md for the recorded
// trade-off against a sort-then-sweep scan.
func Find(highs, lows []float64, currentPrice float64) model.LevelSet {
	pool := make([]float64, 0, len(highs)+len(lows))
	pool = append(pool, highs...)
	pool = append(pool, lows...)
	if len(pool) == 0 {
		return model.LevelSet{}
	}

	lo, hi := pool[0], pool[0]
	for _, p := range pool {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	tolerance := (hi - lo) * clusterToleranceRatio
	if tolerance == 0 {
		// Degenerate flat pool: everything is one cluster.
		tolerance = math.SmallestNonzeroFloat64
	}

	visited := make([]bool, len(pool))
	var levels []model.Level
	for i, seed := range pool {
		if visited[i] {
			continue
		}
		visited[i] = true
		sum, count := seed, 1
		for j := i + 1; j < len(pool); j++ {
			if visited[j] {
				continue
			}
			if math.Abs(pool[j]-seed) <= tolerance {
				visited[j] = true
				sum += pool[j]
				count++
			}
		}
		if count < minTouches {
			continue
		}
		price := sum / float64(count)
		typ := model.Resistance
		if price < currentPrice {
			typ = model.Support
		}
		levels = append(levels, model.Level{
			Price:    price,
			Touches:  count,
			Type:     typ,
			Strength: series.Clamp(float64(count)*10, 0, 100),
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		return math.Abs(levels[i].Price-currentPrice) < math.Abs(levels[j].Price-currentPrice)
	})

	set := model.LevelSet{}
	for i := range levels {
		lv := levels[i]
		if lv.Type == model.Support && set.NearestSupport == nil {
			set.NearestSupport = &lv
		}
		if lv.Type == model.Resistance && set.NearestResistance == nil {
			set.NearestResistance = &lv
		}
	}
	if len(levels) > maxReported {
		levels = levels[:maxReported]
	}
	set.Levels = levels
	return set
}

// Fibonacci computes the seven standard retracement levels between the
// window's swing high and swing low, as swingHigh - range*ratio.
func Fibonacci(highs, lows []float64) []model.FibLevel {
	if len(highs) == 0 || len(lows) == 0 {
		return nil
	}
	swingHigh, _ := series.Highest(highs, len(highs))
	swingLow, _ := series.Lowest(lows, len(lows))
	rng := swingHigh - swingLow

	out := make([]model.FibLevel, 0, len(FibRatios))
	for _, r := range FibRatios {
		out = append(out, model.FibLevel{
			Ratio: r,
			Price: swingHigh - rng*r/100,
		})
	}
	return out
}
