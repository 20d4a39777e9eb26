package indicator

import (
	"math"

	"TradePulse/internal/model"
)

// DefaultADXPeriod is the conventional ADX lookback.
const DefaultADXPeriod = 14

// ADXDI computes the average directional index and both directional
// lines with Wilder smoothing throughout. Requires 2*period bars: one
// window to seed the smoothed TR/DM sums and another to seed the DX
// average that becomes the first ADX value.
func ADXDI(highs, lows, closes []float64, period int) *model.ADX {
	if period <= 0 || len(closes) < 2*period+1 {
		return nil
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return nil
	}

	n := len(closes)
	tr := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		tr[i] = trueRange(highs[i], lows[i], closes[i-1])
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
	}

	// Seed smoothed sums over the first window.
	var sTR, sPlus, sMinus float64
	for i := 1; i <= period; i++ {
		sTR += tr[i]
		sPlus += plusDM[i]
		sMinus += minusDM[i]
	}

	dx := func() float64 {
		if sTR == 0 {
			return 0
		}
		pDI := sPlus / sTR * 100
		mDI := sMinus / sTR * 100
		if pDI+mDI == 0 {
			return 0
		}
		return math.Abs(pDI-mDI) / (pDI + mDI) * 100
	}

	// First ADX seed: average DX over the second window.
	var adx float64
	count := 0
	for i := period + 1; i <= 2*period && i < n; i++ {
		sTR = sTR - sTR/float64(period) + tr[i]
		sPlus = sPlus - sPlus/float64(period) + plusDM[i]
		sMinus = sMinus - sMinus/float64(period) + minusDM[i]
		adx += dx()
		count++
	}
	adx /= float64(count)

	// Wilder-smooth ADX over the remainder.
	for i := 2*period + 1; i < n; i++ {
		sTR = sTR - sTR/float64(period) + tr[i]
		sPlus = sPlus - sPlus/float64(period) + plusDM[i]
		sMinus = sMinus - sMinus/float64(period) + minusDM[i]
		adx = (adx*float64(period-1) + dx()) / float64(period)
	}

	var pDI, mDI float64
	if sTR != 0 {
		pDI = sPlus / sTR * 100
		mDI = sMinus / sTR * 100
	}
	return &model.ADX{ADX: adx, PlusDI: pDI, MinusDI: mDI}
}
