// Package marketrating rates the broad market from a fixed basket of
// index ETFs. The rating is a 0..100 sum of seven weighted factors,
// mapped to a nine-tier sentiment ladder, with a market-hours-aware
// cache in front of the computation.
package marketrating

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"TradePulse/internal/cache"
	"TradePulse/internal/collector"
	"TradePulse/internal/markethours"
	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// DefaultBasket is the index ETF basket, primary index first.
var DefaultBasket = []string{"SPY", "QQQ", "DIA", "IWM"}

// Cache freshness windows. The market moves while the session is open;
// outside it a rating barely changes.
const (
	OpenTTL   = 5 * time.Minute
	ClosedTTL = 30 * time.Minute
)

// CacheKey versions the cached payload; bump when the rating schema
// changes so stale schemas are never decoded.
const CacheKey = "market_rating:v2"

// Aggregator computes and caches the market-wide rating.
type Aggregator struct {
	Fetcher collector.Fetcher
	Store   cache.Store
	Basket  []string
	Clock   func() time.Time
	Log     zerolog.Logger

	// Lookback is the daily history window fetched per basket member.
	Lookback int
}

// New builds an Aggregator over the default basket with a real clock.
func New(fetcher collector.Fetcher, store cache.Store, log zerolog.Logger) *Aggregator {
	return &Aggregator{
		Fetcher:  fetcher,
		Store:    store,
		Basket:   DefaultBasket,
		Clock:    time.Now,
		Log:      log,
		Lookback: collector.DefaultLookbackDays,
	}
}

// Rate returns the current market rating, serving from cache while the
// entry is younger than the session-dependent TTL. A failed recompute
// falls back to the last cached value regardless of its age, and only
// when no cache exists at all does it return the unknown rating.
func (a *Aggregator) Rate(ctx context.Context) (*model.MarketRating, error) {
	now := a.Clock()
	ttl := ClosedTTL
	if markethours.IsOpen(now) {
		ttl = OpenTTL
	}

	if cached := a.fromCache(ctx, now, ttl); cached != nil {
		return cached, nil
	}

	rating, err := a.compute(ctx, now)
	if err != nil {
		a.Log.Warn().Err(err).Msg("market rating recompute failed, trying stale cache")
		if stale := a.fromCache(ctx, now, 0); stale != nil {
			return stale, nil
		}
		return unknownRating(now), nil
	}

	a.writeCache(ctx, now, rating)
	return rating, nil
}

// fromCache returns the cached rating when it is younger than maxAge.
// maxAge 0 means any age is acceptable (the stale-fallback path).
func (a *Aggregator) fromCache(ctx context.Context, now time.Time, maxAge time.Duration) *model.MarketRating {
	entry, err := a.Store.Get(ctx, CacheKey)
	if err != nil {
		a.Log.Warn().Err(err).Msg("rating cache read failed")
		return nil
	}
	if entry == nil {
		return nil
	}
	age := entry.Age(now)
	if maxAge > 0 && age > maxAge {
		return nil
	}

	var rating model.MarketRating
	if err := json.Unmarshal(entry.Data, &rating); err != nil {
		a.Log.Warn().Err(err).Msg("rating cache entry undecodable, ignoring")
		return nil
	}
	rating.Cached = true
	rating.CacheAge = age
	return &rating
}

func (a *Aggregator) writeCache(ctx context.Context, now time.Time, rating *model.MarketRating) {
	data, err := json.Marshal(rating)
	if err != nil {
		a.Log.Error().Err(err).Msg("rating marshal failed")
		return
	}
	if err := a.Store.Set(ctx, CacheKey, cache.Entry{Data: data, Timestamp: now}); err != nil {
		a.Log.Warn().Err(err).Msg("rating cache write failed")
	}
}

// compute fetches the basket and folds the seven factors into a rating.
func (a *Aggregator) compute(ctx context.Context, now time.Time) (*model.MarketRating, error) {
	b := &basket{Symbols: a.Basket, Data: make(map[string]symbolData, len(a.Basket))}
	coll := &collector.Collector{Fetcher: a.Fetcher, Lookback: a.Lookback}

	for _, sym := range a.Basket {
		snap, quotes, err := coll.Collect(ctx, sym)
		if err != nil {
			return nil, fmt.Errorf("basket member %s: %w", sym, err)
		}
		b.Data[sym] = symbolData{Snap: snap, Quotes: quotes}
	}

	factors := []model.FactorScore{
		scoreBreadth(b),
		scoreCapDivergence(b, "IWM", "SPY"),
		scorePrimaryTechnicals(b),
		scoreRealizedVol(b),
		scoreVolumeConfirmation(b),
		scoreCorrelation(b),
		scoreLevelProximity(b),
	}

	var total, conf float64
	var signals []model.Signal
	var warnings []string
	for _, f := range factors {
		total += f.Points
		conf += f.Confidence
		dir := model.Neutral
		switch {
		case f.Points > f.Max*0.6:
			dir = model.Bullish
		case f.Points < f.Max*0.4:
			dir = model.Bearish
		}
		signals = append(signals, model.Signal{
			Text:      fmt.Sprintf("%s: %.1f/%.0f (%s)", f.Name, f.Points, f.Max, f.Commentary),
			Direction: dir,
			Source:    f.Name,
		})
		if f.Points < f.Max*0.25 {
			warnings = append(warnings, fmt.Sprintf("%s is deeply negative: %s", f.Name, f.Commentary))
		}
	}

	score := int(series.Clamp(total, 0, 100))
	confidence := int(series.Clamp(conf, 0, 100))
	sentiment, advice := sentimentFor(score)

	a.Log.Info().Int("rating", score).Str("sentiment", string(sentiment)).Msg("market rating computed")

	return &model.MarketRating{
		Rating:          score,
		Confidence:      confidence,
		ConfidenceLabel: confidenceLabel(confidence),
		Sentiment:       sentiment,
		Advice:          advice,
		Factors:         factors,
		Signals:         signals,
		Warnings:        warnings,
		MarketOpen:      markethours.IsOpen(now),
		MarketStatus:    markethours.Status(now),
		GeneratedAt:     now,
	}, nil
}

// sentimentFor maps a 0..100 rating to the nine-tier ladder and its
// advisory string.
func sentimentFor(score int) (model.Sentiment, string) {
	switch {
	case score >= 80:
		return model.VeryBullish, "Broad participation and strong momentum. Favorable conditions for adding exposure."
	case score >= 70:
		return model.SentimentBullish, "Most factors positive. Lean long but keep position sizing disciplined."
	case score >= 60:
		return model.ModeratelyBullish, "Constructive tape with some soft spots. Selective long exposure."
	case score >= 55:
		return model.SlightlyBullish, "Mildly positive tilt. No strong edge either way."
	case score >= 45:
		return model.SentimentNeutral, "Mixed signals. Wait for a clearer read before committing."
	case score >= 40:
		return model.SlightlyBearish, "Mildly negative tilt. Reduce marginal positions."
	case score >= 30:
		return model.ModeratelyBearish, "Deteriorating breadth. Defensive posture advised."
	case score >= 20:
		return model.SentimentBearish, "Most factors negative. Avoid new longs, protect capital."
	default:
		return model.VeryBearish, "Broad risk-off conditions. Capital preservation first."
	}
}

// confidenceLabel is the four-tier label of the confidence accumulator.
func confidenceLabel(confidence int) string {
	switch {
	case confidence >= 75:
		return "high"
	case confidence >= 50:
		return "moderate"
	case confidence >= 25:
		return "low"
	default:
		return "very low"
	}
}

// unknownRating is returned only when a recompute fails and no cache
// entry exists at all.
func unknownRating(now time.Time) *model.MarketRating {
	return &model.MarketRating{
		Rating:          50,
		Confidence:      0,
		ConfidenceLabel: confidenceLabel(0),
		Sentiment:       model.SentimentUnknown,
		Advice:          "Market data unavailable. Treat conditions as unknown.",
		MarketOpen:      markethours.IsOpen(now),
		MarketStatus:    markethours.Status(now),
		GeneratedAt:     now,
	}
}
