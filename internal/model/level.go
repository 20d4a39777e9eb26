package model

// LevelType marks which side of the current price a level sits on.
type LevelType string

const (
	Support    LevelType = "support"
	Resistance LevelType = "resistance"
)

// Level is a price area touched repeatedly within a tolerance band.
// A cluster only qualifies as a level with at least 3 touches.
type Level struct {
	Price    float64   `json:"price"`
	Touches  int       `json:"touches"`
	Type     LevelType `json:"type"`
	Strength float64   `json:"strength"`
}

// LevelSet is the level finder's output: the strongest candidates sorted
// by proximity to the current price plus the single nearest level on
// each side.
type LevelSet struct {
	Levels            []Level `json:"levels"`
	NearestSupport    *Level  `json:"nearestSupport"`
	NearestResistance *Level  `json:"nearestResistance"`
}

// FibLevel is one Fibonacci retracement level.
type FibLevel struct {
	Ratio float64 `json:"ratio"` // 0, 23.6, 38.2, 50, 61.8, 78.6, 100
	Price float64 `json:"price"`
}

// VolumeBin is one price bucket of a volume profile.
type VolumeBin struct {
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
	Volume float64 `json:"volume"`
}

// VolumeProfile bins traded volume by closing price over a window.
type VolumeProfile struct {
	Bins            []VolumeBin `json:"bins"`
	POC             VolumeBin   `json:"pointOfControl"`
	ValueAreaLow    float64     `json:"valueAreaLow"`
	ValueAreaHigh   float64     `json:"valueAreaHigh"`
	HighVolumeNodes []VolumeBin `json:"highVolumeNodes"`
}
