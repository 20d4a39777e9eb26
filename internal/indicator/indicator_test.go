package indicator

import (
	"math"
	"testing"
)

func rising(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func flat(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestRSI_AllGains(t *testing.T) {
	rsi, ok := RSI(rising(30, 100, 1), DefaultRSIPeriod)
	if !ok {
		t.Fatal("expected RSI to be computable")
	}
	if rsi != 100 {
		t.Errorf("expected RSI 100 for monotonic gains, got %.2f", rsi)
	}
}

func TestRSI_FlatSeriesNeutral(t *testing.T) {
	rsi, ok := RSI(flat(30, 50), DefaultRSIPeriod)
	if !ok {
		t.Fatal("expected RSI to be computable")
	}
	if rsi != 50 {
		t.Errorf("expected neutral RSI 50 for a flat series, got %.2f", rsi)
	}
}

func TestRSI_Bounds(t *testing.T) {
	closes := []float64{44, 44.3, 44.1, 43.6, 44.3, 44.8, 45.1, 45.4, 45.8, 46.0,
		45.9, 46.3, 46.4, 46.2, 46.0, 46.6, 46.5, 46.2, 46.1, 45.6}
	rsi, ok := RSI(closes, DefaultRSIPeriod)
	if !ok {
		t.Fatal("expected RSI to be computable")
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI out of bounds: %.2f", rsi)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	if _, ok := RSI(rising(10, 100, 1), DefaultRSIPeriod); ok {
		t.Error("expected ok=false for a short series")
	}
}

func TestRSI_Idempotent(t *testing.T) {
	closes := rising(30, 100, 0.7)
	a, _ := RSI(closes, DefaultRSIPeriod)
	b, _ := RSI(closes, DefaultRSIPeriod)
	if a != b {
		t.Errorf("RSI not idempotent: %.6f vs %.6f", a, b)
	}
}

func TestMACD_RisingSeriesPositiveHistogram(t *testing.T) {
	m := MACD(rising(60, 100, 1), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	if m == nil {
		t.Fatal("expected MACD to be computable")
	}
	if m.Histogram <= 0 {
		t.Errorf("expected positive histogram in an uptrend, got %.4f", m.Histogram)
	}
	if got := m.MACD - m.Signal; math.Abs(got-m.Histogram) > 1e-9 {
		t.Errorf("histogram must equal macd-signal, got %.6f vs %.6f", got, m.Histogram)
	}
}

func TestMACD_ComputableAtSlowPeriod(t *testing.T) {
	// 30 rising bars clear the slow period but not slow+signal; the
	// short signal window must not suppress the result.
	m := MACD(rising(30, 200, 1), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal)
	if m == nil {
		t.Fatal("expected MACD to be computable at 30 bars")
	}
	if m.Histogram <= 0 {
		t.Errorf("expected positive histogram in an uptrend, got %.4f", m.Histogram)
	}

	if m := MACD(rising(DefaultMACDSlow, 200, 1), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal); m == nil {
		t.Error("expected MACD to be computable at exactly slow bars")
	}
}

func TestMACD_InsufficientData(t *testing.T) {
	if m := MACD(rising(DefaultMACDSlow-1, 100, 1), DefaultMACDFast, DefaultMACDSlow, DefaultMACDSignal); m != nil {
		t.Error("expected nil MACD for a series shorter than the slow period")
	}
}

func TestBollinger_Ordering(t *testing.T) {
	closes := []float64{100, 102, 101, 103, 105, 104, 106, 108, 107, 109,
		111, 110, 112, 114, 113, 115, 117, 116, 118, 120}
	b := Bollinger(closes, DefaultBollingerPeriod, DefaultBollingerMult)
	if b == nil {
		t.Fatal("expected bands to be computable")
	}
	if !(b.Lower <= b.Middle && b.Middle <= b.Upper) {
		t.Errorf("band ordering violated: lower %.2f middle %.2f upper %.2f", b.Lower, b.Middle, b.Upper)
	}
}

func TestBollinger_PercentBUnclamped(t *testing.T) {
	// A huge final spike puts the price well above the upper band.
	closes := flat(19, 100)
	closes = append(closes, 200)
	b := Bollinger(closes, DefaultBollingerPeriod, DefaultBollingerMult)
	if b == nil {
		t.Fatal("expected bands to be computable")
	}
	if b.PercentB <= 1 {
		t.Errorf("expected %%B above 1 for a price outside the bands, got %.3f", b.PercentB)
	}
}

func TestBollinger_FlatSeriesCollapsesAndSqueezes(t *testing.T) {
	b := Bollinger(flat(30, 100), DefaultBollingerPeriod, DefaultBollingerMult)
	if b == nil {
		t.Fatal("expected bands to be computable")
	}
	if b.Upper != b.Middle || b.Middle != b.Lower {
		t.Errorf("expected collapsed bands, got %.2f/%.2f/%.2f", b.Upper, b.Middle, b.Lower)
	}
	if !b.Squeeze {
		t.Error("expected squeeze=true for collapsed bands")
	}
	if b.PercentB != 0.5 {
		t.Errorf("expected %%B 0.5 when the bands collapse, got %.3f", b.PercentB)
	}
}

func TestATR_PositiveForMovingSeries(t *testing.T) {
	highs := rising(20, 101, 1)
	lows := rising(20, 99, 1)
	closes := rising(20, 100, 1)
	atr, ok := ATR(highs, lows, closes, DefaultATRPeriod)
	if !ok {
		t.Fatal("expected ATR to be computable")
	}
	if atr <= 0 {
		t.Errorf("expected positive ATR, got %.4f", atr)
	}
}

func TestStochasticK_Bounds(t *testing.T) {
	highs := rising(20, 101, 1)
	lows := rising(20, 99, 1)
	closes := rising(20, 100, 1)
	k, ok := StochasticK(highs, lows, closes, DefaultStochasticPeriod)
	if !ok {
		t.Fatal("expected %K to be computable")
	}
	if k < 0 || k > 100 {
		t.Errorf("%%K out of bounds: %.2f", k)
	}
}

func TestWilliamsR_Bounds(t *testing.T) {
	highs := rising(20, 101, 1)
	lows := rising(20, 99, 1)
	closes := rising(20, 100, 1)
	wr, ok := WilliamsR(highs, lows, closes, DefaultWilliamsPeriod)
	if !ok {
		t.Fatal("expected Williams %R to be computable")
	}
	if wr < -100 || wr > 0 {
		t.Errorf("Williams %%R out of bounds: %.2f", wr)
	}
}

func TestMFI_AllRisingIs100(t *testing.T) {
	highs := rising(20, 101, 1)
	lows := rising(20, 99, 1)
	closes := rising(20, 100, 1)
	volumes := flat(20, 1000)
	mfi, ok := MFI(highs, lows, closes, volumes, DefaultMFIPeriod)
	if !ok {
		t.Fatal("expected MFI to be computable")
	}
	if mfi != 100 {
		t.Errorf("expected MFI 100 when every flow is positive, got %.2f", mfi)
	}
}

func TestCCI_Clamped(t *testing.T) {
	highs := rising(25, 101, 1)
	lows := rising(25, 99, 1)
	closes := rising(25, 100, 1)
	cci, ok := CCI(highs, lows, closes, DefaultCCIPeriod)
	if !ok {
		t.Fatal("expected CCI to be computable")
	}
	if cci < -300 || cci > 300 {
		t.Errorf("CCI outside clamp range: %.2f", cci)
	}
}

func TestOBV_SignedAccumulation(t *testing.T) {
	closes := []float64{100, 101, 100, 102}
	volumes := []float64{0, 500, 200, 300}
	obv, ok := OBV(closes, volumes)
	if !ok {
		t.Fatal("expected OBV to be computable")
	}
	if obv != 500-200+300 {
		t.Errorf("expected OBV 600, got %.0f", obv)
	}
}

func TestADXDI_UptrendFavorsPlusDI(t *testing.T) {
	n := 2*DefaultADXPeriod + 5
	highs := rising(n, 101, 1)
	lows := rising(n, 99, 1)
	closes := rising(n, 100, 1)
	adx := ADXDI(highs, lows, closes, DefaultADXPeriod)
	if adx == nil {
		t.Fatal("expected ADX to be computable")
	}
	if adx.PlusDI <= adx.MinusDI {
		t.Errorf("expected +DI > -DI in an uptrend, got %.2f vs %.2f", adx.PlusDI, adx.MinusDI)
	}
}

func TestIchimoku_RequiresSpanBBars(t *testing.T) {
	if c := IchimokuCloud(rising(40, 101, 1), rising(40, 99, 1),
		DefaultIchimokuConversion, DefaultIchimokuBase, DefaultIchimokuSpanB); c != nil {
		t.Error("expected nil cloud with fewer than 52 bars")
	}
	c := IchimokuCloud(rising(60, 101, 1), rising(60, 99, 1),
		DefaultIchimokuConversion, DefaultIchimokuBase, DefaultIchimokuSpanB)
	if c == nil {
		t.Fatal("expected cloud with 60 bars")
	}
	if c.Conversion <= c.Base {
		t.Errorf("expected conversion above base in an uptrend, got %.2f vs %.2f", c.Conversion, c.Base)
	}
}
