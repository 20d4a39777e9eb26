package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"TradePulse/internal/forecast"
	"TradePulse/internal/metrics"
	"TradePulse/internal/scorer"
)

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"provider":  s.Collector.Fetcher.Name(),
	})
}

func symbolParam(r *http.Request) string {
	return strings.ToUpper(chi.URLParam(r, "symbol"))
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	if symbol == "" {
		s.writeError(w, "symbol is required", http.StatusBadRequest)
		return
	}

	snap, quotes, err := s.Collector.Collect(r.Context(), symbol)
	if err != nil {
		metrics.FetchErrors.WithLabelValues(s.Collector.Fetcher.Name()).Inc()
		s.Log.Error().Err(err).Str("symbol", symbol).Msg("collect failed")
		s.writeError(w, "upstream data unavailable", http.StatusBadGateway)
		return
	}

	res, err := scorer.Evaluate(snap, &quotes)
	if err != nil {
		s.writeError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	metrics.ScoresComputed.WithLabelValues(symbol).Inc()
	if err := s.Recorder.RecordScore(res); err != nil {
		s.Log.Warn().Err(err).Msg("record score failed")
	}
	s.writeJSON(w, res)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	symbol := symbolParam(r)
	if symbol == "" {
		s.writeError(w, "symbol is required", http.StatusBadRequest)
		return
	}

	snap, quotes, err := s.Collector.Collect(r.Context(), symbol)
	if err != nil {
		metrics.FetchErrors.WithLabelValues(s.Collector.Fetcher.Name()).Inc()
		s.Log.Error().Err(err).Str("symbol", symbol).Msg("collect failed")
		s.writeError(w, "upstream data unavailable", http.StatusBadGateway)
		return
	}

	res, err := forecast.Forecast(symbol, snap.Price, quotes)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, forecast.ErrInsufficientData) {
			code = http.StatusUnprocessableEntity
		}
		s.writeError(w, err.Error(), code)
		return
	}
	metrics.ForecastsComputed.WithLabelValues(symbol).Inc()
	if err := s.Recorder.RecordForecast(res); err != nil {
		s.Log.Warn().Err(err).Msg("record forecast failed")
	}
	s.writeJSON(w, res)
}

func (s *Server) handleRating(w http.ResponseWriter, r *http.Request) {
	rating, err := s.Rating.Rate(r.Context())
	if err != nil {
		s.writeError(w, err.Error(), http.StatusBadGateway)
		return
	}
	outcome := "miss"
	if rating.Cached {
		outcome = "hit"
	}
	metrics.RatingRequests.WithLabelValues(outcome).Inc()
	metrics.MarketRating.Set(float64(rating.Rating))
	if err := s.Recorder.RecordRating(rating); err != nil {
		s.Log.Warn().Err(err).Msg("record rating failed")
	}
	s.writeJSON(w, rating)
}
