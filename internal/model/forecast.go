package model

// Outlook is the qualitative label of a forecast's expected change.
type Outlook string

const (
	StrongUpside     Outlook = "STRONG UPSIDE"
	ModerateUpside   Outlook = "MODERATE UPSIDE"
	Sideways         Outlook = "SIDEWAYS"
	ModerateDownside Outlook = "MODERATE DOWNSIDE"
	StrongDownside   Outlook = "STRONG DOWNSIDE"
)

// MethodPrediction is one ensemble member's price projection.
type MethodPrediction struct {
	Method     string  `json:"method"`
	Price      float64 `json:"price"`
	Confidence float64 `json:"confidence"`
}

// ForecastResult is the ensemble's combined short-horizon estimate.
//
// The [LowerBound, UpperBound] interval is the ±2σ band across the
// member prices, not across the ensemble value; the ensemble is not
// guaranteed to lie inside it. Callers must not assume
// LowerBound <= PredictedPrice <= UpperBound.
type ForecastResult struct {
	Symbol            string             `json:"symbol"`
	CurrentPrice      float64            `json:"currentPrice"`
	PredictedPrice    float64            `json:"predictedPrice"`
	LowerBound        float64            `json:"lowerBound"`
	UpperBound        float64            `json:"upperBound"`
	ExpectedChangePct float64            `json:"expectedChangePercent"`
	Confidence        float64            `json:"confidence"`
	Outlook           Outlook            `json:"outlook"`
	MethodsUsed       int                `json:"methodsUsed"`
	Predictions       []MethodPrediction `json:"individualPredictions"`
}
