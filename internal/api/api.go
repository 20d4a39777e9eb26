// Package api serves the analysis engine over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"TradePulse/internal/collector"
	"TradePulse/internal/marketrating"
	"TradePulse/internal/recorder"
)

// Server wires the engine components behind a chi router.
type Server struct {
	Collector *collector.Collector
	Rating    *marketrating.Aggregator
	Recorder  recorder.Recorder
	Log       zerolog.Logger

	http *http.Server
}

// New creates a Server. The recorder may be a NoopRecorder.
func New(col *collector.Collector, rating *marketrating.Aggregator, rec recorder.Recorder, log zerolog.Logger) *Server {
	return &Server{Collector: col, Rating: rating, Recorder: rec, Log: log}
}

// Router builds the route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/score/{symbol}", s.handleScore)
		r.Get("/forecast/{symbol}", s.handleForecast)
		r.Get("/rating", s.handleRating)
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// ListenAndServe blocks serving HTTP until the listener fails or
// Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.Log.Info().Str("addr", addr).Msg("http server listening")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
