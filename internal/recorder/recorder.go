// Package recorder persists analysis output for later inspection.
package recorder

import "TradePulse/internal/model"

// Recorder persists scores, forecasts, and ratings as they are produced.
type Recorder interface {
	RecordScore(res *model.ScoreResult) error
	RecordForecast(res *model.ForecastResult) error
	RecordRating(rating *model.MarketRating) error
	Close() error
}
