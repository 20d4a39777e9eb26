// Package cli defines the pulse command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"TradePulse/internal/cache"
	"TradePulse/internal/collector"
	"TradePulse/internal/config"
	"TradePulse/internal/logging"
	"TradePulse/internal/marketrating"
	"TradePulse/internal/recorder"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgPath string

// NewRootCmd builds the pulse command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pulse",
		Short:         "Market analysis engine: scores, forecasts, and a market-wide rating",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to config file")

	root.AddCommand(
		newServeCmd(),
		newScoreCmd(),
		newForecastCmd(),
		newRatingCmd(),
		newVersionCmd(),
	)
	return root
}

// app bundles the wired components a command needs.
type app struct {
	Config    *config.Config
	Log       zerolog.Logger
	Collector *collector.Collector
	Rating    *marketrating.Aggregator
	Recorder  recorder.Recorder
}

// buildApp loads config and wires the component graph.
func buildApp() (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log := logging.New(cfg.Logging)

	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "mock":
		fetcher = &collector.MockFetcher{Price: 100}
	default:
		fetcher = collector.NewYahooFetcher(cfg.DataSource.Proxy)
	}
	col := &collector.Collector{Fetcher: fetcher, Lookback: cfg.DataSource.Lookback}

	var store cache.Store
	if cfg.Redis.Enabled {
		rs, err := cache.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("redis store: %w", err)
		}
		store = rs
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis rating cache")
	} else {
		store = cache.NewMemoryStore()
	}

	rating := marketrating.New(fetcher, store, log)
	rating.Basket = cfg.Basket
	rating.Lookback = cfg.DataSource.Lookback

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("sqlite recorder unavailable, continuing without persistence")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sqlRec
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	return &app{
		Config:    cfg,
		Log:       log,
		Collector: col,
		Rating:    rating,
		Recorder:  rec,
	}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
