package model

import "time"

// Sentiment is the 9-tier market mood ladder, plus UNKNOWN for the
// no-data case.
type Sentiment string

const (
	VeryBullish       Sentiment = "VERY BULLISH"
	SentimentBullish  Sentiment = "BULLISH"
	ModeratelyBullish Sentiment = "MODERATELY BULLISH"
	SlightlyBullish   Sentiment = "SLIGHTLY BULLISH"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SlightlyBearish   Sentiment = "SLIGHTLY BEARISH"
	ModeratelyBearish Sentiment = "MODERATELY BEARISH"
	SentimentBearish  Sentiment = "BEARISH"
	VeryBearish       Sentiment = "VERY BEARISH"
	SentimentUnknown  Sentiment = "UNKNOWN"
)

// FactorScore is one market-rating factor's contribution.
type FactorScore struct {
	Name       string  `json:"name"`
	Points     float64 `json:"points"`
	Max        float64 `json:"max"`
	Confidence float64 `json:"confidence"`
	Commentary string  `json:"commentary"`
}

// MarketRating is the basket-wide sentiment read.
type MarketRating struct {
	Rating          int           `json:"rating"`
	Confidence      int           `json:"confidence"`
	ConfidenceLabel string        `json:"confidenceLabel"`
	Sentiment       Sentiment     `json:"sentiment"`
	Advice          string        `json:"recommendation"`
	Factors         []FactorScore `json:"factors"`
	Signals         []Signal      `json:"signals"`
	Warnings        []string      `json:"warnings"`
	MarketOpen      bool          `json:"marketOpen"`
	MarketStatus    string        `json:"marketStatus"`
	GeneratedAt     time.Time     `json:"generatedAt"`
	Cached          bool          `json:"cached"`
	CacheAge        time.Duration `json:"cachedAge,omitempty"`
}
