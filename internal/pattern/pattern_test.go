package pattern

import (
	"testing"

	"TradePulse/internal/model"
)

// peakSeries builds a 30-bar high series around base with equal peaks
// at the given indices.
func peakSeries(base, peak float64, peakIdx ...int) []float64 {
	highs := make([]float64, 30)
	for i := range highs {
		highs[i] = base
	}
	for _, idx := range peakIdx {
		highs[idx] = peak
	}
	return highs
}

func TestDoubleTop_TwoEqualPeaks(t *testing.T) {
	highs := peakSeries(100, 110, 5, 25)
	m := DoubleTop(highs)
	if m == nil || !m.Detected {
		t.Fatal("expected a double top with two equal peaks")
	}
	if m.Resistance != 110 {
		t.Errorf("expected resistance at the peak mean 110, got %.2f", m.Resistance)
	}
	if m.Bullish == nil || *m.Bullish {
		t.Error("double top must be bearish")
	}
	if m.Confidence != 80 {
		t.Errorf("expected confidence 80 for identical peaks, got %.1f", m.Confidence)
	}
}

func TestDoubleTop_PeaksTooFarApart(t *testing.T) {
	highs := peakSeries(100, 110, 5)
	highs[25] = 120 // 9% above the first peak
	if m := DoubleTop(highs); m != nil {
		t.Errorf("expected no double top for peaks 9%% apart, got %+v", m)
	}
}

func TestHeadAndShoulders_DominantHead(t *testing.T) {
	highs := peakSeries(100, 110, 5, 25)
	highs[15] = 120 // the head
	lows := make([]float64, 30)
	for i := range lows {
		lows[i] = 95
	}
	m := HeadAndShoulders(highs, lows)
	if m == nil || !m.Detected {
		t.Fatal("expected a head and shoulders formation")
	}
	if m.Bullish == nil || *m.Bullish {
		t.Error("head and shoulders must be bearish")
	}
	if m.Neckline != 95 {
		t.Errorf("expected neckline at 95, got %.2f", m.Neckline)
	}
	if m.Target != 95-(120-95) {
		t.Errorf("expected measured-move target %.2f, got %.2f", 95.0-(120-95), m.Target)
	}
}

func TestFlag_PoleThenConsolidation(t *testing.T) {
	closes := make([]float64, 30)
	// Pole: +10% over the first half.
	for i := 0; i < 15; i++ {
		closes[i] = 100 + float64(i)*10.0/14
	}
	// Flag: tight drift around the pole top.
	for i := 15; i < 30; i++ {
		closes[i] = 110 + float64(i%2)*0.2
	}
	m := Flag(closes)
	if m == nil || !m.Detected {
		t.Fatal("expected a flag after a sharp pole and tight consolidation")
	}
	if m.Bullish == nil || !*m.Bullish {
		t.Error("expected a bullish flag for an up pole")
	}
	if m.Target <= closes[len(closes)-1] {
		t.Errorf("expected a measured-move target above the last close, got %.2f", m.Target)
	}
}

func TestTriangle_Ascending(t *testing.T) {
	highs := make([]float64, 20)
	lows := make([]float64, 20)
	for i := range highs {
		highs[i] = 110                    // flat ceiling
		lows[i] = 90 + float64(i)*0.5     // rising floor
	}
	m := Triangle(highs, lows)
	if m == nil || !m.Detected {
		t.Fatal("expected an ascending triangle")
	}
	if m.Variant != model.Ascending {
		t.Errorf("expected ascending variant, got %s", m.Variant)
	}
	if m.Bullish == nil || !*m.Bullish {
		t.Error("ascending triangle must be bullish")
	}
	if m.Resistance != 110 {
		t.Errorf("expected the flat ceiling as resistance, got %.2f", m.Resistance)
	}
	if m.Target <= m.Resistance {
		t.Errorf("expected a measured-move target above the breakout line, got %.2f", m.Target)
	}
}

func TestTriangle_DescendingTargetBelowSupport(t *testing.T) {
	highs := make([]float64, 20)
	lows := make([]float64, 20)
	for i := range highs {
		highs[i] = 110 - float64(i)*0.5 // falling ceiling
		lows[i] = 90                    // flat floor
	}
	m := Triangle(highs, lows)
	if m == nil || m.Variant != model.Descending {
		t.Fatal("expected a descending triangle")
	}
	if m.Target >= m.Support {
		t.Errorf("expected a measured-move target below support, got %.2f", m.Target)
	}
}

func TestDetectAll_FlatSeriesFindsNothing(t *testing.T) {
	flat := make([]float64, 30)
	for i := range flat {
		flat[i] = 100
	}
	q := model.Quotes{Highs: flat, Lows: flat, Closes: flat}
	if got := DetectAll(q); len(got) != 0 {
		t.Errorf("expected no patterns on a flat series, got %d", len(got))
	}
}
