package recorder

import "TradePulse/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScore(_ *model.ScoreResult) error       { return nil }
func (n *NoopRecorder) RecordForecast(_ *model.ForecastResult) error { return nil }
func (n *NoopRecorder) RecordRating(_ *model.MarketRating) error     { return nil }
func (n *NoopRecorder) Close() error                                 { return nil }
