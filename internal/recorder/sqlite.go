package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"TradePulse/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the engine writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS score_history (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			score          INTEGER,
			confidence     INTEGER,
			recommendation TEXT,
			reasoning      TEXT,
			signal_count   INTEGER,
			warning_count  INTEGER,
			indicators     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_score_ts ON score_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_score_symbol ON score_history(symbol)`,

		`CREATE TABLE IF NOT EXISTS forecast_history (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			current_price   REAL,
			predicted_price REAL,
			lower_bound     REAL,
			upper_bound     REAL,
			expected_change REAL,
			confidence      REAL,
			outlook         TEXT,
			methods_used    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecast_ts ON forecast_history(timestamp)`,

		`CREATE TABLE IF NOT EXISTS rating_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			rating        INTEGER,
			confidence    INTEGER,
			sentiment     TEXT,
			market_open   INTEGER,
			factors       TEXT,
			warning_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rating_ts ON rating_history(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec migration: %w", err)
		}
	}
	return nil
}

// RecordScore inserts one composite score result.
func (r *SQLiteRecorder) RecordScore(res *model.ScoreResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	indicators, err := json.Marshal(res.Indicators)
	if err != nil {
		return fmt.Errorf("marshal indicators: %w", err)
	}
	_, err = r.db.Exec(`INSERT INTO score_history
		(timestamp, symbol, score, confidence, recommendation, reasoning, signal_count, warning_count, indicators)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), res.Symbol, res.Score, res.Confidence,
		string(res.Recommendation), res.Reasoning, len(res.Signals), len(res.Warnings), string(indicators))
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// RecordForecast inserts one ensemble forecast.
func (r *SQLiteRecorder) RecordForecast(res *model.ForecastResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO forecast_history
		(timestamp, symbol, current_price, predicted_price, lower_bound, upper_bound, expected_change, confidence, outlook, methods_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), res.Symbol, res.CurrentPrice, res.PredictedPrice,
		res.LowerBound, res.UpperBound, res.ExpectedChangePct, res.Confidence,
		string(res.Outlook), res.MethodsUsed)
	if err != nil {
		return fmt.Errorf("insert forecast: %w", err)
	}
	return nil
}

// RecordRating inserts one market rating. Cached reads are not recorded.
func (r *SQLiteRecorder) RecordRating(rating *model.MarketRating) error {
	if rating.Cached {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	factors, err := json.Marshal(rating.Factors)
	if err != nil {
		return fmt.Errorf("marshal factors: %w", err)
	}
	open := 0
	if rating.MarketOpen {
		open = 1
	}
	_, err = r.db.Exec(`INSERT INTO rating_history
		(timestamp, rating, confidence, sentiment, market_open, factors, warning_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rating.GeneratedAt.Unix(), rating.Rating, rating.Confidence,
		string(rating.Sentiment), open, string(factors), len(rating.Warnings))
	if err != nil {
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (r *SQLiteRecorder) Close() error { return r.db.Close() }
