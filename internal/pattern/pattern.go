// Package pattern detects chart formations over a trailing window of
// bars: head-and-shoulders, double top, flag, and triangle. Detectors
// return nil when the geometric test fails; a pattern is never forced.
package pattern

import (
	"math"

	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// Window is the trailing bar count the detectors inspect.
const Window = 30

// shoulderTolerance is the max relative difference between the two
// shoulder peaks of a head-and-shoulders formation.
const shoulderTolerance = 0.03

// doubleTopTolerance is the max relative difference between the two
// peaks of a double top.
const doubleTopTolerance = 0.02

// localMaxima returns indices whose value strictly exceeds both
// neighbors on each side.
func localMaxima(values []float64) []int {
	var peaks []int
	for i := 2; i < len(values)-2; i++ {
		v := values[i]
		if v > values[i-1] && v > values[i-2] && v > values[i+1] && v > values[i+2] {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// HeadAndShoulders looks for three peaks with a dominant head and
// shoulders of near-equal height. Bearish when it forms.
func HeadAndShoulders(highs, lows []float64) *model.PatternMatch {
	peaks := localMaxima(highs)
	if len(peaks) < 3 {
		return nil
	}

	// Most recent three peaks form the candidate.
	p := peaks[len(peaks)-3:]
	left, head, right := highs[p[0]], highs[p[1]], highs[p[2]]
	if head <= left || head <= right {
		return nil
	}

	shoulderDiff := math.Abs(left-right) / math.Max(left, right)
	if shoulderDiff > shoulderTolerance {
		return nil
	}

	neckline := (lowestBetween(lows, p[0], p[1]) + lowestBetween(lows, p[1], p[2])) / 2
	bearish := false
	return &model.PatternMatch{
		Type:       model.HeadAndShoulders,
		Detected:   true,
		Confidence: series.Clamp(85-shoulderDiff*1000, 0, 100),
		Bullish:    &bearish,
		Neckline:   neckline,
		Target:     neckline - (head - neckline),
	}
}

func lowestBetween(lows []float64, from, to int) float64 {
	l := math.Inf(1)
	for i := from; i <= to && i < len(lows); i++ {
		if lows[i] < l {
			l = lows[i]
		}
	}
	return l
}

// DoubleTop looks for the two most recent peaks of near-equal height.
// Bearish when it forms; Resistance is the mean of the two peaks.
func DoubleTop(highs []float64) *model.PatternMatch {
	peaks := localMaxima(highs)
	if len(peaks) < 2 {
		return nil
	}

	p1, p2 := highs[peaks[len(peaks)-2]], highs[peaks[len(peaks)-1]]
	diff := math.Abs(p1-p2) / math.Max(p1, p2)
	if diff > doubleTopTolerance {
		return nil
	}

	bearish := false
	return &model.PatternMatch{
		Type:       model.DoubleTop,
		Detected:   true,
		Confidence: series.Clamp(80-diff*2000, 0, 100),
		Bullish:    &bearish,
		Resistance: (p1 + p2) / 2,
	}
}

// Flag looks for a sharp pole (first half of the window moving more
// than 5%) followed by a tight consolidation (second half ranging less
// than 3% of its price). Direction follows the pole.
func Flag(closes []float64) *model.PatternMatch {
	if len(closes) < 10 {
		return nil
	}

	half := len(closes) / 2
	pole := closes[:half]
	flag := closes[half:]

	poleChange := series.ChangePct(pole)
	if math.Abs(poleChange) <= 5 {
		return nil
	}

	hi, _ := series.Highest(flag, len(flag))
	lo, _ := series.Lowest(flag, len(flag))
	avg := series.Mean(flag)
	if avg == 0 || (hi-lo)/avg >= 0.03 {
		return nil
	}

	bullish := poleChange > 0
	last := closes[len(closes)-1]
	height := math.Abs(pole[len(pole)-1] - pole[0])
	target := last + height
	if !bullish {
		target = last - height
	}
	return &model.PatternMatch{
		Type:       model.Flag,
		Detected:   true,
		Confidence: 75,
		Bullish:    &bullish,
		Target:     target,
	}
}

// slopePctPerBar normalizes a fitted slope by the series mean so
// thresholds hold across price scales.
func slopePctPerBar(values []float64) float64 {
	mean := series.Mean(values)
	if mean == 0 {
		return 0
	}
	return series.Slope(values) / mean * 100
}

// flatSlope is the %-per-bar band treated as "near flat" for triangle
// trendlines.
const flatSlope = 0.1

// Triangle compares the fitted slopes of the high and low sequences.
// Flat highs with rising lows form an ascending (bullish) triangle,
// flat lows with falling highs a descending (bearish) one, and
// converging opposite slopes a symmetrical triangle with no implied
// direction. Directional variants carry a measured-move target: the
// breakout line plus (or minus) the widest span of the formation.
func Triangle(highs, lows []float64) *model.PatternMatch {
	if len(highs) < 10 || len(highs) != len(lows) {
		return nil
	}

	hs := slopePctPerBar(highs)
	ls := slopePctPerBar(lows)

	res, _ := series.Highest(highs, len(highs))
	sup, _ := series.Lowest(lows, len(lows))
	height := res - sup

	switch {
	case math.Abs(hs) < flatSlope && ls > flatSlope:
		bullish := true
		return &model.PatternMatch{
			Type: model.Triangle, Detected: true, Confidence: 70,
			Bullish: &bullish, Variant: model.Ascending,
			Resistance: res, Target: res + height,
		}
	case math.Abs(ls) < flatSlope && hs < -flatSlope:
		bullish := false
		return &model.PatternMatch{
			Type: model.Triangle, Detected: true, Confidence: 70,
			Bullish: &bullish, Variant: model.Descending,
			Support: sup, Target: sup - height,
		}
	case hs < -flatSlope && ls > flatSlope:
		return &model.PatternMatch{
			Type: model.Triangle, Detected: true, Confidence: 65,
			Variant: model.Symmetrical,
		}
	}
	return nil
}

// DetectAll runs every detector over the trailing window and returns
// the formations that passed their geometric tests.
func DetectAll(q model.Quotes) []model.PatternMatch {
	q = q.Tail(Window)
	var out []model.PatternMatch
	if len(q.Highs) > 0 && len(q.Lows) > 0 {
		if m := HeadAndShoulders(q.Highs, q.Lows); m != nil {
			out = append(out, *m)
		}
		if m := DoubleTop(q.Highs); m != nil {
			out = append(out, *m)
		}
		if m := Triangle(q.Highs, q.Lows); m != nil {
			out = append(out, *m)
		}
	}
	if m := Flag(q.Closes); m != nil {
		out = append(out, *m)
	}
	return out
}
