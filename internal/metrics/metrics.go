// Package metrics exposes Prometheus instrumentation for the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScoresComputed counts composite score evaluations by symbol.
	ScoresComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradepulse_scores_computed_total",
		Help: "Composite score evaluations performed.",
	}, []string{"symbol"})

	// ForecastsComputed counts ensemble forecast runs by symbol.
	ForecastsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradepulse_forecasts_computed_total",
		Help: "Ensemble forecasts performed.",
	}, []string{"symbol"})

	// RatingRequests counts market rating requests by cache outcome.
	RatingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradepulse_rating_requests_total",
		Help: "Market rating requests, labeled hit or miss.",
	}, []string{"cache"})

	// MarketRating gauges the most recently computed rating.
	MarketRating = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tradepulse_market_rating",
		Help: "Most recent market rating on the 0-100 scale.",
	})

	// FetchDuration observes upstream candle fetch latency.
	FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tradepulse_fetch_duration_seconds",
		Help:    "Upstream data fetch latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	// FetchErrors counts upstream fetch failures.
	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tradepulse_fetch_errors_total",
		Help: "Upstream data fetch failures.",
	}, []string{"provider"})
)
