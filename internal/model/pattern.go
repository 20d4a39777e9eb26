package model

// PatternType identifies a chart formation.
type PatternType string

const (
	HeadAndShoulders PatternType = "head_and_shoulders"
	DoubleTop        PatternType = "double_top"
	Flag             PatternType = "flag"
	Triangle         PatternType = "triangle"
)

// TriangleVariant distinguishes the three triangle geometries.
type TriangleVariant string

const (
	Ascending   TriangleVariant = "ascending"
	Descending  TriangleVariant = "descending"
	Symmetrical TriangleVariant = "symmetrical"
)

// PatternMatch describes one detected chart formation.
// Bullish is nil when the formation does not imply a direction
// (symmetrical triangle).
type PatternMatch struct {
	Type       PatternType     `json:"type"`
	Detected   bool            `json:"detected"`
	Confidence float64         `json:"confidence"`
	Bullish    *bool           `json:"bullish"`
	Neckline   float64         `json:"neckline,omitempty"`
	Resistance float64         `json:"resistance,omitempty"`
	Support    float64         `json:"support,omitempty"`
	Target     float64         `json:"target,omitempty"`
	Variant    TriangleVariant `json:"variant,omitempty"`
}
