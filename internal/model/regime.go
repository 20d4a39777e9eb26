package model

// RegimeType labels recent price behavior.
type RegimeType string

const (
	StrongUptrend     RegimeType = "strong_uptrend"
	StrongDowntrend   RegimeType = "strong_downtrend"
	ModerateUptrend   RegimeType = "moderate_uptrend"
	ModerateDowntrend RegimeType = "moderate_downtrend"
	Ranging           RegimeType = "ranging"
	Choppy            RegimeType = "choppy"
)

// Regime is the classifier's read on the trailing window.
type Regime struct {
	Type       RegimeType `json:"type"`
	TrendPct   float64    `json:"trendPct"`   // half-window average change, percent
	Dispersion float64    `json:"dispersion"` // stddev / mean of closes
	Volatile   bool       `json:"volatile"`   // dispersion > 8%
}

// Trending reports whether the regime is any of the four trend labels.
func (r Regime) Trending() bool {
	switch r.Type {
	case StrongUptrend, StrongDowntrend, ModerateUptrend, ModerateDowntrend:
		return true
	}
	return false
}

// Up reports whether the regime is an uptrend.
func (r Regime) Up() bool {
	return r.Type == StrongUptrend || r.Type == ModerateUptrend
}
