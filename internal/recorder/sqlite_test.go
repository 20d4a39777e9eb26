package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"TradePulse/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRecordScore(t *testing.T) {
	r := openTestRecorder(t)
	res := &model.ScoreResult{
		Symbol:         "AAPL",
		Score:          72,
		Confidence:     55,
		Recommendation: model.ModerateBuy,
		Reasoning:      "test",
		Indicators:     map[string]float64{"rsi": 61.2},
	}
	if err := r.RecordScore(res); err != nil {
		t.Fatalf("record score: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM score_history WHERE symbol = ?", "AAPL").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected one row, got %d", count)
	}
}

func TestRecordForecast(t *testing.T) {
	r := openTestRecorder(t)
	res := &model.ForecastResult{
		Symbol:         "MSFT",
		CurrentPrice:   400,
		PredictedPrice: 410,
		Outlook:        model.ModerateUpside,
		MethodsUsed:    4,
	}
	if err := r.RecordForecast(res); err != nil {
		t.Fatalf("record forecast: %v", err)
	}

	var price float64
	if err := r.db.QueryRow("SELECT predicted_price FROM forecast_history WHERE symbol = ?", "MSFT").Scan(&price); err != nil {
		t.Fatal(err)
	}
	if price != 410 {
		t.Errorf("expected 410, got %.2f", price)
	}
}

func TestRecordRating_SkipsCachedReads(t *testing.T) {
	r := openTestRecorder(t)
	rating := &model.MarketRating{
		Rating:      65,
		Sentiment:   model.ModeratelyBullish,
		GeneratedAt: time.Now(),
	}
	if err := r.RecordRating(rating); err != nil {
		t.Fatalf("record rating: %v", err)
	}

	cached := *rating
	cached.Cached = true
	if err := r.RecordRating(&cached); err != nil {
		t.Fatalf("record cached rating: %v", err)
	}

	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM rating_history").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("cached reads must not be recorded, got %d rows", count)
	}
}
