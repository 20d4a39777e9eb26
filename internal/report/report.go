// Package report renders analysis results as human-readable text for
// the CLI and log output.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"TradePulse/internal/model"
)

// Score renders a composite score result.
func Score(res *model.ScoreResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: score %d/100 (confidence %d) -> %s\n",
		res.Symbol, res.Score, res.Confidence, res.Recommendation)
	fmt.Fprintf(&b, "  %s\n", res.Reasoning)

	if v, ok := res.Indicators["rsi"]; ok {
		fmt.Fprintf(&b, "  RSI %.1f", v)
		if h, ok := res.Indicators["macdHistogram"]; ok {
			fmt.Fprintf(&b, ", MACD hist %+.3f", h)
		}
		if pb, ok := res.Indicators["percentB"]; ok {
			fmt.Fprintf(&b, ", %%B %.2f", pb)
		}
		b.WriteString("\n")
	}

	for _, s := range res.Signals {
		fmt.Fprintf(&b, "  [%s] %s\n", s.Direction, s.Text)
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "  WARNING: %s\n", w)
	}
	for _, p := range res.Patterns {
		fmt.Fprintf(&b, "  pattern: %s (%.0f%% confidence)\n", p.Type, p.Confidence)
	}
	return b.String()
}

// Forecast renders an ensemble forecast.
func Forecast(res *model.ForecastResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s -> %s in 7 bars (%+.1f%%), %s\n",
		res.Symbol,
		humanize.CommafWithDigits(res.CurrentPrice, 2),
		humanize.CommafWithDigits(res.PredictedPrice, 2),
		res.ExpectedChangePct, res.Outlook)
	fmt.Fprintf(&b, "  band [%s, %s], confidence %.0f, %d methods\n",
		humanize.CommafWithDigits(res.LowerBound, 2),
		humanize.CommafWithDigits(res.UpperBound, 2),
		res.Confidence, res.MethodsUsed)
	for _, p := range res.Predictions {
		fmt.Fprintf(&b, "  %-20s %s (conf %.0f)\n",
			p.Method, humanize.CommafWithDigits(p.Price, 2), p.Confidence)
	}
	return b.String()
}

// Rating renders a market-wide rating.
func Rating(r *model.MarketRating) string {
	var b strings.Builder
	fmt.Fprintf(&b, "market rating %d/100 (%s confidence) -> %s\n",
		r.Rating, r.ConfidenceLabel, r.Sentiment)
	fmt.Fprintf(&b, "  %s\n", r.Advice)
	fmt.Fprintf(&b, "  market %s\n", r.MarketStatus)
	if r.Cached {
		fmt.Fprintf(&b, "  cached, generated %s\n", humanize.Time(r.GeneratedAt))
	}
	for _, f := range r.Factors {
		fmt.Fprintf(&b, "  %-30s %5.1f/%-3.0f %s\n", f.Name, f.Points, f.Max, f.Commentary)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  WARNING: %s\n", w)
	}
	return b.String()
}
