package indicator

import (
	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// Default Ichimoku periods (conversion, base, span B).
const (
	DefaultIchimokuConversion = 9
	DefaultIchimokuBase       = 26
	DefaultIchimokuSpanB      = 52
)

// midpoint returns the middle of the highest high and lowest low over
// the last period bars.
func midpoint(highs, lows []float64, period int) (float64, bool) {
	hh, ok := series.Highest(highs, period)
	if !ok {
		return 0, false
	}
	ll, ok := series.Lowest(lows, period)
	if !ok {
		return 0, false
	}
	return (hh + ll) / 2, true
}

// IchimokuCloud computes the conversion line, base line, and both
// leading spans for the most recent bar. Requires at least spanB
// (52 by default) bars.
func IchimokuCloud(highs, lows []float64, conversion, base, spanB int) *model.Ichimoku {
	if conversion <= 0 || base <= 0 || spanB <= 0 {
		return nil
	}
	if len(highs) < spanB || len(highs) != len(lows) {
		return nil
	}

	conv, _ := midpoint(highs, lows, conversion)
	baseLine, _ := midpoint(highs, lows, base)
	spanBVal, _ := midpoint(highs, lows, spanB)

	return &model.Ichimoku{
		Conversion: conv,
		Base:       baseLine,
		SpanA:      (conv + baseLine) / 2,
		SpanB:      spanBVal,
	}
}

// CloudTop returns the upper edge of the cloud.
func CloudTop(ich *model.Ichimoku) float64 {
	if ich.SpanA > ich.SpanB {
		return ich.SpanA
	}
	return ich.SpanB
}

// CloudBottom returns the lower edge of the cloud.
func CloudBottom(ich *model.Ichimoku) float64 {
	if ich.SpanA < ich.SpanB {
		return ich.SpanA
	}
	return ich.SpanB
}
