package model

// Direction classifies a signal's lean.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
	Neutral Direction = "neutral"
)

// Signal is a human-readable explanation of one scoring check that fired.
// Signals are created during scoring and discarded after consumption.
type Signal struct {
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
	Source    string    `json:"source"`
}

// Recommendation is the 6-tier action mapping of a composite score.
type Recommendation string

const (
	StrongBuy   Recommendation = "STRONG BUY"
	Buy         Recommendation = "BUY"
	ModerateBuy Recommendation = "MODERATE BUY"
	Hold        Recommendation = "HOLD"
	WeakHold    Recommendation = "WEAK HOLD"
	Avoid       Recommendation = "AVOID"
)

// ScoreResult is the composite scorer's output for one symbol.
// It is created fresh per invocation and never mutated afterward.
type ScoreResult struct {
	Symbol         string             `json:"symbol"`
	Score          int                `json:"score"`
	Confidence     int                `json:"confidence"`
	Recommendation Recommendation     `json:"recommendation"`
	Reasoning      string             `json:"reasoning"`
	Signals        []Signal           `json:"signals"`
	Warnings       []string           `json:"warnings"`
	Patterns       []PatternMatch     `json:"patterns"`
	Indicators     map[string]float64 `json:"technicalIndicators"`
}
