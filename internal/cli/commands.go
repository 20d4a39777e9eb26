package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"TradePulse/internal/api"
	"TradePulse/internal/forecast"
	"TradePulse/internal/report"
	"TradePulse/internal/scheduler"
	"TradePulse/internal/scorer"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the rating refresh scheduler",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Recorder.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sched := scheduler.New(ctx, a.Rating, a.Recorder, a.Log)
			if err := sched.Register(a.Config.Schedule.RatingCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			srv := api.New(a.Collector, a.Rating, a.Recorder, a.Log)
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe(a.Config.Server.Addr) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <symbol>",
		Short: "Compute the composite score for one symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Recorder.Close()

			symbol := strings.ToUpper(args[0])
			snap, quotes, err := a.Collector.Collect(cmd.Context(), symbol)
			if err != nil {
				return err
			}
			res, err := scorer.Evaluate(snap, &quotes)
			if err != nil {
				return err
			}
			if err := a.Recorder.RecordScore(res); err != nil {
				a.Log.Warn().Err(err).Msg("record score failed")
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Score(res))
			return nil
		},
	}
}

func newForecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forecast <symbol>",
		Short: "Compute the 7-bar forecast ensemble for one symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Recorder.Close()

			symbol := strings.ToUpper(args[0])
			snap, quotes, err := a.Collector.Collect(cmd.Context(), symbol)
			if err != nil {
				return err
			}
			res, err := forecast.Forecast(symbol, snap.Price, quotes)
			if err != nil {
				return err
			}
			if err := a.Recorder.RecordForecast(res); err != nil {
				a.Log.Warn().Err(err).Msg("record forecast failed")
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Forecast(res))
			return nil
		},
	}
}

func newRatingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rating",
		Short: "Compute the market-wide rating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			defer a.Recorder.Close()

			rating, err := a.Rating.Rate(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.Recorder.RecordRating(rating); err != nil {
				a.Log.Warn().Err(err).Msg("record rating failed")
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Rating(rating))
			return nil
		},
	}
}
