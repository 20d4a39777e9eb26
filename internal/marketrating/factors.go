package marketrating

import (
	"fmt"
	"math"

	"TradePulse/internal/indicator"
	"TradePulse/internal/level"
	"TradePulse/internal/model"
	"TradePulse/internal/pattern"
	"TradePulse/internal/regime"
	"TradePulse/internal/series"
)

// symbolData is one basket member's fetched state.
type symbolData struct {
	Snap   model.Snapshot
	Quotes model.Quotes
}

// basket holds the fetched basket keyed by symbol, primary first.
type basket struct {
	Symbols []string
	Data    map[string]symbolData
}

func (b *basket) primary() symbolData { return b.Data[b.Symbols[0]] }

// scoreBreadth scores the basket's average daily/weekly/monthly
// performance and the share of members trading up. Max 20.
func scoreBreadth(b *basket) model.FactorScore {
	var daily, weekly, monthly float64
	positive := 0
	for _, sym := range b.Symbols {
		d := b.Data[sym]
		daily += d.Snap.ChangePct
		weekly += trailingChange(d.Quotes.Closes, 5)
		monthly += trailingChange(d.Quotes.Closes, 21)
		if d.Snap.ChangePct > 0 {
			positive++
		}
	}
	n := float64(len(b.Symbols))
	daily /= n
	weekly /= n
	monthly /= n
	posShare := float64(positive) / n

	points := 10 + daily*2.5 + weekly*0.5 + monthly*0.25 + (posShare-0.5)*8
	return model.FactorScore{
		Name:       "index performance and breadth",
		Points:     series.Clamp(points, 0, 20),
		Max:        20,
		Confidence: 15,
		Commentary: fmt.Sprintf("avg %+.2f%% today, %+.1f%% on the week, %.0f%% of the basket positive",
			daily, weekly, posShare*100),
	}
}

func trailingChange(closes []float64, bars int) float64 {
	if len(closes) < bars+1 {
		return 0
	}
	recent := closes[len(closes)-bars-1:]
	if recent[0] == 0 {
		return 0
	}
	return (recent[len(recent)-1] - recent[0]) / recent[0] * 100
}

// scoreCapDivergence compares small-cap against large-cap breadth.
// Small caps leading is a risk-on tell; lagging badly is a warning. Max 10.
func scoreCapDivergence(b *basket, smallCap, largeCap string) model.FactorScore {
	s, okS := b.Data[smallCap]
	l, okL := b.Data[largeCap]
	if !okS || !okL {
		return model.FactorScore{Name: "small-cap breadth", Max: 10, Points: 5,
			Commentary: "basket member missing, neutral"}
	}
	spread := s.Snap.ChangePct - l.Snap.ChangePct
	return model.FactorScore{
		Name:       "small-cap breadth",
		Points:     series.Clamp(5+spread*2, 0, 10),
		Max:        10,
		Confidence: 10,
		Commentary: fmt.Sprintf("%s vs %s spread %+.2f%%", smallCap, largeCap, spread),
	}
}

// scorePrimaryTechnicals folds the primary index's RSI, MACD, moving
// average stack, and regime into one technical read. Max 25.
func scorePrimaryTechnicals(b *basket) model.FactorScore {
	p := b.primary()
	points := 12.5
	conf := 5.0
	notes := ""

	if rsi, ok := indicator.RSI(p.Quotes.Closes, indicator.DefaultRSIPeriod); ok {
		conf += 5
		switch {
		case rsi < 30:
			points += 4
		case rsi < 40:
			points += 2
		case rsi > 70:
			points -= 4
		case rsi > 60:
			points -= 2
		}
		notes = fmt.Sprintf("RSI %.0f", rsi)
	}
	if m := indicator.MACD(p.Quotes.Closes, indicator.DefaultMACDFast, indicator.DefaultMACDSlow, indicator.DefaultMACDSignal); m != nil {
		conf += 5
		if m.Histogram > 0 {
			points += 4
		} else if m.Histogram < 0 {
			points -= 4
		}
	}
	if sma20, ok20 := series.SMA(p.Quotes.Closes, 20); ok20 {
		if sma50, ok50 := series.SMA(p.Quotes.Closes, 50); ok50 {
			conf += 5
			switch {
			case p.Snap.Price > sma20 && sma20 > sma50:
				points += 4
			case p.Snap.Price < sma20 && sma20 < sma50:
				points -= 4
			}
		}
	}
	if p.Quotes.Len() >= 4 {
		conf += 5
		r := regime.Classify(p.Quotes.Tail(pattern.Window).Closes)
		switch r.Type {
		case model.StrongUptrend:
			points += 4.5
		case model.ModerateUptrend:
			points += 2.5
		case model.ModerateDowntrend:
			points -= 2.5
		case model.StrongDowntrend:
			points -= 4.5
		}
		if notes != "" {
			notes += ", "
		}
		notes += string(r.Type)
	}

	return model.FactorScore{
		Name:       "primary index technicals",
		Points:     series.Clamp(points, 0, 25),
		Max:        25,
		Confidence: conf,
		Commentary: notes,
	}
}

// scoreRealizedVol rewards a calm tape. Max 10.
func scoreRealizedVol(b *basket) model.FactorScore {
	closes := b.primary().Quotes.Closes
	if len(closes) < 22 {
		return model.FactorScore{Name: "realized volatility", Max: 10, Points: 5,
			Commentary: "insufficient history, neutral"}
	}
	recent := closes[len(closes)-22:]
	returns := make([]float64, 0, len(recent)-1)
	for i := 1; i < len(recent); i++ {
		if recent[i-1] != 0 {
			returns = append(returns, (recent[i]-recent[i-1])/recent[i-1])
		}
	}
	annualized := series.StdDev(returns) * math.Sqrt(252) * 100

	var points float64
	switch {
	case annualized < 10:
		points = 8
	case annualized < 20:
		points = 6
	case annualized < 30:
		points = 4
	default:
		points = 2
	}
	return model.FactorScore{
		Name:       "realized volatility",
		Points:     points,
		Max:        10,
		Confidence: 10,
		Commentary: fmt.Sprintf("21-day realized vol %.0f%% annualized", annualized),
	}
}

// scoreVolumeConfirmation checks whether the primary index's move came
// on real volume. Max 10.
func scoreVolumeConfirmation(b *basket) model.FactorScore {
	p := b.primary()
	avg, ok := series.SMA(p.Quotes.Volumes, 20)
	if !ok || avg <= 0 || p.Snap.Volume <= 0 {
		return model.FactorScore{Name: "volume confirmation", Max: 10, Points: 5,
			Commentary: "volume data unavailable, neutral"}
	}
	ratio := p.Snap.Volume / avg
	points := 5.0
	switch {
	case ratio > 1.2 && p.Snap.ChangePct > 0:
		points = 8
	case ratio > 1.2 && p.Snap.ChangePct < 0:
		points = 2
	}
	return model.FactorScore{
		Name:       "volume confirmation",
		Points:     points,
		Max:        10,
		Confidence: 10,
		Commentary: fmt.Sprintf("volume %.1fx the 20-day average on a %+.2f%% day", ratio, p.Snap.ChangePct),
	}
}

// scoreCorrelation penalizes the basket moving in different directions.
// Max 10.
func scoreCorrelation(b *basket) model.FactorScore {
	changes := make([]float64, 0, len(b.Symbols))
	for _, sym := range b.Symbols {
		changes = append(changes, b.Data[sym].Snap.ChangePct)
	}
	spread := series.StdDev(changes)

	var points float64
	switch {
	case spread < 0.5:
		points = 8
	case spread < 1.0:
		points = 6
	case spread < 2.0:
		points = 4
	default:
		points = 2
	}
	return model.FactorScore{
		Name:       "cross-index alignment",
		Points:     points,
		Max:        10,
		Confidence: 10,
		Commentary: fmt.Sprintf("daily change dispersion %.2f%% across the basket", spread),
	}
}

// scoreLevelProximity reads where the primary index sits relative to
// its clustered support/resistance levels. Max 15.
func scoreLevelProximity(b *basket) model.FactorScore {
	p := b.primary()
	if len(p.Quotes.Highs) == 0 || len(p.Quotes.Lows) == 0 || p.Snap.Price <= 0 {
		return model.FactorScore{Name: "key level position", Max: 15, Points: 7.5,
			Commentary: "no level data, neutral"}
	}
	win := p.Quotes.Tail(pattern.Window)
	set := level.Find(win.Highs, win.Lows, p.Snap.Price)

	points := 7.5
	note := "between levels"
	if s := set.NearestSupport; s != nil {
		if d := (p.Snap.Price - s.Price) / p.Snap.Price; d > 0 && d < 0.02 {
			points = 11
			note = fmt.Sprintf("holding support at %.2f (%d touches)", s.Price, s.Touches)
		}
	}
	if r := set.NearestResistance; r != nil {
		if d := (r.Price - p.Snap.Price) / p.Snap.Price; d > 0 && d < 0.02 {
			points = 4
			note = fmt.Sprintf("capped under resistance at %.2f (%d touches)", r.Price, r.Touches)
		}
	}
	if set.NearestResistance == nil && set.NearestSupport != nil {
		points = 12
		note = "trading above every clustered level"
	}
	return model.FactorScore{
		Name:       "key level position",
		Points:     points,
		Max:        15,
		Confidence: 10,
		Commentary: note,
	}
}
