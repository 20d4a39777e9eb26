package model

// MACD holds the MACD line, its signal line, and their difference.
type MACD struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// Bollinger holds the band values for the most recent bar.
// PercentB is deliberately unclamped: values outside [0,1] indicate the
// price has closed beyond the bands.
type Bollinger struct {
	Upper    float64
	Middle   float64
	Lower    float64
	PercentB float64
	Squeeze  bool
}

// ADX holds the average directional index and both directional lines.
type ADX struct {
	ADX     float64
	PlusDI  float64
	MinusDI float64
}

// Ichimoku holds the cloud components for the most recent bar.
type Ichimoku struct {
	Conversion float64 // Tenkan-sen, 9-period midpoint
	Base       float64 // Kijun-sen, 26-period midpoint
	SpanA      float64 // leading span A
	SpanB      float64 // leading span B
}

// Stochastic holds the fast %K value.
type Stochastic struct {
	K float64
}
