// Package scheduler runs the periodic market rating refresh so the
// cache is warm when the API serves it.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"TradePulse/internal/marketrating"
	"TradePulse/internal/metrics"
	"TradePulse/internal/recorder"
)

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Rating   *marketrating.Aggregator
	Recorder recorder.Recorder
	Log      zerolog.Logger
	Ctx      context.Context
}

// New creates a Scheduler with second-granularity cron expressions.
func New(ctx context.Context, rating *marketrating.Aggregator, rec recorder.Recorder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Rating:   rating,
		Recorder: rec,
		Log:      log,
		Ctx:      ctx,
	}
}

// Register wires the rating refresh task.
func (s *Scheduler) Register(ratingCron string) error {
	if _, err := s.Cron.AddFunc(ratingCron, s.refreshRating); err != nil {
		return fmt.Errorf("register rating task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info().Msg("scheduler stopped")
}

// RefreshNow executes the rating refresh immediately.
func (s *Scheduler) RefreshNow() { s.refreshRating() }

func (s *Scheduler) refreshRating() {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Minute)
	defer cancel()

	rating, err := s.Rating.Rate(ctx)
	if err != nil {
		s.Log.Error().Err(err).Msg("scheduled rating refresh failed")
		return
	}
	metrics.MarketRating.Set(float64(rating.Rating))
	if err := s.Recorder.RecordRating(rating); err != nil {
		s.Log.Warn().Err(err).Msg("record rating failed")
	}
	s.Log.Info().Int("rating", rating.Rating).Bool("cached", rating.Cached).Msg("rating refreshed")
}
