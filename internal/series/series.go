// Package series provides the shared numeric helpers used by every
// indicator and analyzer: moving averages, dispersion, slope, extremes.
// All functions are pure and operate on plain float64 slices.
package series

import "math"

// SMA computes the simple moving average of the last period values.
// Returns ok=false when values is shorter than period.
func SMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), true
}

// EMA computes the exponential moving average over the whole slice,
// seeded with the first value.
func EMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) == 0 {
		return 0, false
	}
	k := 2.0 / (float64(period) + 1.0)
	ema := values[0]
	for i := 1; i < len(values); i++ {
		ema = values[i]*k + ema*(1.0-k)
	}
	return ema, true
}

// EMASeries returns the running EMA at every index, seeded with the
// first value.
func EMASeries(values []float64, period int) []float64 {
	if period <= 0 || len(values) == 0 {
		return nil
	}
	k := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1.0-k)
	}
	return out
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)))
}

// Slope fits a least-squares line through values (x = index) and
// returns its slope per bar.
func Slope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// Intercept returns the least-squares intercept matching Slope.
func Intercept(values []float64) float64 {
	n := float64(len(values))
	if n == 0 {
		return 0
	}
	slope := Slope(values)
	var sumX, sumY float64
	for i, v := range values {
		sumX += float64(i)
		sumY += v
	}
	return (sumY - slope*sumX) / n
}

// Highest returns the maximum over the last period values.
func Highest(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	h := math.Inf(-1)
	for i := len(values) - period; i < len(values); i++ {
		if values[i] > h {
			h = values[i]
		}
	}
	return h, true
}

// Lowest returns the minimum over the last period values.
func Lowest(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	l := math.Inf(1)
	for i := len(values) - period; i < len(values); i++ {
		if values[i] < l {
			l = values[i]
		}
	}
	return l, true
}

// ChangePct returns the percent change from first to last value.
func ChangePct(values []float64) float64 {
	if len(values) < 2 || values[0] == 0 {
		return 0
	}
	return (values[len(values)-1] - values[0]) / values[0] * 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
