package model

import (
	"fmt"
	"math"
	"time"
)

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Quotes holds parallel price/volume arrays sliced from a bar series.
// All slices share the same length and aligned indices.
type Quotes struct {
	Opens   []float64
	Highs   []float64
	Lows    []float64
	Closes  []float64
	Volumes []float64
	Times   []time.Time
}

// QuotesFromBars converts a chronological bar series into parallel arrays.
func QuotesFromBars(bars []Bar) Quotes {
	q := Quotes{
		Opens:   make([]float64, len(bars)),
		Highs:   make([]float64, len(bars)),
		Lows:    make([]float64, len(bars)),
		Closes:  make([]float64, len(bars)),
		Volumes: make([]float64, len(bars)),
		Times:   make([]time.Time, len(bars)),
	}
	for i, b := range bars {
		q.Opens[i] = b.Open
		q.Highs[i] = b.High
		q.Lows[i] = b.Low
		q.Closes[i] = b.Close
		q.Volumes[i] = float64(b.Volume)
		q.Times[i] = b.Time
	}
	return q
}

// Len returns the number of bars represented.
func (q Quotes) Len() int { return len(q.Closes) }

// Tail returns the most recent n bars, or q unchanged when it holds fewer.
func (q Quotes) Tail(n int) Quotes {
	if q.Len() <= n {
		return q
	}
	start := q.Len() - n
	out := Quotes{Closes: q.Closes[start:]}
	if len(q.Opens) == q.Len() {
		out.Opens = q.Opens[start:]
	}
	if len(q.Highs) == q.Len() {
		out.Highs = q.Highs[start:]
	}
	if len(q.Lows) == q.Len() {
		out.Lows = q.Lows[start:]
	}
	if len(q.Volumes) == q.Len() {
		out.Volumes = q.Volumes[start:]
	}
	if len(q.Times) == q.Len() {
		out.Times = q.Times[start:]
	}
	return out
}

// Validate rejects mismatched array lengths and non-finite numbers.
// A malformed Quotes is a programming error in the caller; it is reported
// explicitly instead of poisoning downstream math with NaN.
func (q Quotes) Validate() error {
	n := len(q.Closes)
	named := []struct {
		name string
		s    []float64
	}{
		{"opens", q.Opens},
		{"highs", q.Highs},
		{"lows", q.Lows},
		{"volumes", q.Volumes},
	}
	for _, f := range named {
		if len(f.s) != 0 && len(f.s) != n {
			return fmt.Errorf("quotes: %s length %d does not match closes length %d", f.name, len(f.s), n)
		}
		for i, v := range f.s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("quotes: non-finite %s value at index %d", f.name, i)
			}
			if f.name == "volumes" && v < 0 {
				return fmt.Errorf("quotes: negative volume at index %d", i)
			}
		}
	}
	for i, v := range q.Closes {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("quotes: non-finite close value at index %d", i)
		}
	}
	return nil
}

// Snapshot captures the current trading state of one symbol, the input to
// the composite scorer alongside the historical quotes.
type Snapshot struct {
	Symbol    string
	Price     float64
	Open      float64
	High      float64
	Low       float64
	PrevClose float64
	ChangePct float64
	Volume    float64

	// MarketChangePct is the basket-average daily change, used by the
	// relative-strength check. Nil when unavailable; the check is skipped.
	MarketChangePct *float64
}
