// Package scorer folds every analysis input into a single 0..100
// composite score with a tiered recommendation. Scoring is a pure
// additive pass over a fixed rule table: each check votes a delta, the
// sum is clamped, and the checks that fired are reported back as
// signals so the score is always explainable.
package scorer

import (
	"fmt"

	"TradePulse/internal/model"
	"TradePulse/internal/series"
)

// baseScore is the neutral starting point before any check votes.
const baseScore = 50

// Evaluate scores one symbol from its snapshot and optional bar
// history. Missing history disables the checks that need it; the rest
// still vote. A degenerate input with no check firing settles at the
// neutral 50 with zero confidence.
func Evaluate(snap model.Snapshot, quotes *model.Quotes) (*model.ScoreResult, error) {
	ctx, err := buildContext(snap, quotes)
	if err != nil {
		return nil, err
	}

	score := float64(baseScore)
	confidence := 0.0
	var signals []model.Signal
	var warnings []string
	bullish, bearish := 0, 0

	for _, rule := range rules {
		for _, o := range rule.Eval(ctx) {
			score += o.Delta
			confidence += o.Confidence
			signals = append(signals, model.Signal{
				Text:      o.Text,
				Direction: o.Direction,
				Source:    rule.Name,
			})
			if o.Warning {
				warnings = append(warnings, o.Text)
			}
			switch o.Direction {
			case model.Bullish:
				bullish++
			case model.Bearish:
				bearish++
			}
		}
	}

	finalScore := int(series.Clamp(score, 0, 100))
	finalConfidence := int(series.Clamp(confidence, 0, 100))

	return &model.ScoreResult{
		Symbol:         snap.Symbol,
		Score:          finalScore,
		Confidence:     finalConfidence,
		Recommendation: Recommend(finalScore),
		Reasoning:      reasoning(finalScore, bullish, bearish, ctx.Regime),
		Signals:        signals,
		Warnings:       warnings,
		Patterns:       ctx.Patterns,
		Indicators:     ctx.indicatorMap(),
	}, nil
}

// Recommend maps a composite score to its action tier.
func Recommend(score int) model.Recommendation {
	switch {
	case score >= 85:
		return model.StrongBuy
	case score >= 75:
		return model.Buy
	case score >= 65:
		return model.ModerateBuy
	case score >= 55:
		return model.Hold
	case score >= 45:
		return model.WeakHold
	default:
		return model.Avoid
	}
}

func reasoning(score, bullish, bearish int, reg *model.Regime) string {
	s := fmt.Sprintf("%d bullish vs %d bearish checks, composite %d", bullish, bearish, score)
	if reg != nil {
		s += fmt.Sprintf(", %s regime", reg.Type)
	}
	return s
}
