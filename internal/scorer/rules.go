package scorer

import (
	"fmt"
	"math"

	"TradePulse/internal/model"
)

// Outcome is one rule's vote: a score delta, a confidence contribution,
// and the signal text shown to the caller. Warning outcomes are listed
// separately in the result.
type Outcome struct {
	Delta      float64
	Confidence float64
	Text       string
	Direction  model.Direction
	Warning    bool
}

// Rule is a named check over the scoring context. Eval returns nil when
// the rule's inputs are missing or its condition does not hold.
type Rule struct {
	Name string
	Eval func(*Context) []Outcome
}

func one(o Outcome) []Outcome { return []Outcome{o} }

// rules is the full check table. Order matters only for the reasoning
// text; deltas are additive.
var rules = []Rule{
	{Name: "rsi", Eval: func(c *Context) []Outcome {
		if c.RSI == nil {
			return nil
		}
		switch rsi := *c.RSI; {
		case rsi < 30:
			return one(Outcome{Delta: 10, Confidence: 10, Direction: model.Bullish,
				Text: fmt.Sprintf("RSI %.1f oversold, bounce candidate", rsi)})
		case rsi < 40:
			return one(Outcome{Delta: 5, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("RSI %.1f approaching oversold", rsi)})
		case rsi > 70:
			return one(Outcome{Delta: -10, Confidence: 10, Direction: model.Bearish, Warning: true,
				Text: fmt.Sprintf("RSI %.1f overbought", rsi)})
		case rsi > 60:
			return one(Outcome{Delta: -5, Confidence: 6, Direction: model.Bearish,
				Text: fmt.Sprintf("RSI %.1f approaching overbought", rsi)})
		}
		return nil
	}},
	{Name: "macd", Eval: func(c *Context) []Outcome {
		if c.MACD == nil {
			return nil
		}
		switch h := c.MACD.Histogram; {
		case h > 0:
			return one(Outcome{Delta: 8, Confidence: 8, Direction: model.Bullish,
				Text: "MACD above signal line, bullish momentum"})
		case h < 0:
			return one(Outcome{Delta: -8, Confidence: 8, Direction: model.Bearish,
				Text: "MACD below signal line, bearish momentum"})
		}
		return nil
	}},
	{Name: "bollinger", Eval: func(c *Context) []Outcome {
		if c.Bollinger == nil {
			return nil
		}
		var out []Outcome
		switch b := c.Bollinger.PercentB; {
		case b < 0:
			out = append(out, Outcome{Delta: 8, Confidence: 8, Direction: model.Bullish,
				Text: "price below lower Bollinger band, stretched down"})
		case b < 0.2:
			out = append(out, Outcome{Delta: 5, Confidence: 5, Direction: model.Bullish,
				Text: "price near lower Bollinger band"})
		case b > 1:
			out = append(out, Outcome{Delta: -8, Confidence: 8, Direction: model.Bearish, Warning: true,
				Text: "price above upper Bollinger band, stretched up"})
		case b > 0.8:
			out = append(out, Outcome{Delta: -5, Confidence: 5, Direction: model.Bearish,
				Text: "price near upper Bollinger band"})
		}
		if c.Bollinger.Squeeze {
			// A squeeze flags compression, not direction.
			out = append(out, Outcome{Confidence: 4, Direction: model.Neutral,
				Text: "Bollinger squeeze, volatility breakout pending"})
		}
		return out
	}},
	{Name: "volume", Eval: func(c *Context) []Outcome {
		if c.AvgVolume == nil || c.Snap.Volume <= 0 {
			return nil
		}
		ratio := c.Snap.Volume / *c.AvgVolume
		up := c.Snap.ChangePct > 0
		switch {
		case ratio > 2 && up:
			return one(Outcome{Delta: 8, Confidence: 10, Direction: model.Bullish,
				Text: fmt.Sprintf("volume %.1fx average on an up move", ratio)})
		case ratio > 2 && !up:
			return one(Outcome{Delta: -8, Confidence: 10, Direction: model.Bearish, Warning: true,
				Text: fmt.Sprintf("volume %.1fx average on a down move", ratio)})
		case ratio > 1.5 && up:
			return one(Outcome{Delta: 5, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("elevated volume %.1fx average, buyers active", ratio)})
		case ratio > 1.5 && !up:
			return one(Outcome{Delta: -5, Confidence: 6, Direction: model.Bearish,
				Text: fmt.Sprintf("elevated volume %.1fx average, sellers active", ratio)})
		}
		return nil
	}},
	{Name: "momentum", Eval: func(c *Context) []Outcome {
		switch ch := c.Snap.ChangePct; {
		case ch > 3:
			return one(Outcome{Delta: 6, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("strong intraday move +%.1f%%", ch)})
		case ch > 1.5:
			return one(Outcome{Delta: 4, Confidence: 4, Direction: model.Bullish,
				Text: fmt.Sprintf("positive intraday move +%.1f%%", ch)})
		case ch < -3:
			return one(Outcome{Delta: -6, Confidence: 6, Direction: model.Bearish, Warning: true,
				Text: fmt.Sprintf("strong intraday drop %.1f%%", ch)})
		case ch < -1.5:
			return one(Outcome{Delta: -4, Confidence: 4, Direction: model.Bearish,
				Text: fmt.Sprintf("negative intraday move %.1f%%", ch)})
		}
		return nil
	}},
	{Name: "range-position", Eval: func(c *Context) []Outcome {
		rng := c.Snap.High - c.Snap.Low
		if rng <= 0 {
			return nil
		}
		switch pos := (c.Snap.Price - c.Snap.Low) / rng; {
		case pos > 0.8:
			return one(Outcome{Delta: 5, Confidence: 5, Direction: model.Bullish,
				Text: "closing near the top of the day's range"})
		case pos < 0.2:
			return one(Outcome{Delta: -5, Confidence: 5, Direction: model.Bearish,
				Text: "closing near the bottom of the day's range"})
		}
		return nil
	}},
	{Name: "gap", Eval: func(c *Context) []Outcome {
		if c.Snap.PrevClose <= 0 || c.Snap.Open <= 0 {
			return nil
		}
		gapPct := (c.Snap.Open - c.Snap.PrevClose) / c.Snap.PrevClose * 100
		switch {
		case gapPct > 1 && c.Snap.Price >= c.Snap.Open:
			return one(Outcome{Delta: 6, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("gap up %.1f%% holding above the open", gapPct)})
		case gapPct > 1:
			return one(Outcome{Delta: -4, Confidence: 5, Direction: model.Bearish, Warning: true,
				Text: fmt.Sprintf("gap up %.1f%% fading below the open", gapPct)})
		case gapPct < -1 && c.Snap.Price <= c.Snap.Open:
			return one(Outcome{Delta: -6, Confidence: 6, Direction: model.Bearish,
				Text: fmt.Sprintf("gap down %.1f%% with no recovery", gapPct)})
		case gapPct < -1:
			return one(Outcome{Delta: 4, Confidence: 5, Direction: model.Bullish,
				Text: fmt.Sprintf("gap down %.1f%% being bought back", gapPct)})
		}
		return nil
	}},
	{Name: "stochastic", Eval: func(c *Context) []Outcome {
		if c.StochK == nil {
			return nil
		}
		switch k := *c.StochK; {
		case k < 20:
			return one(Outcome{Delta: 7, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("stochastic %%K %.1f oversold", k)})
		case k > 80:
			return one(Outcome{Delta: -7, Confidence: 6, Direction: model.Bearish,
				Text: fmt.Sprintf("stochastic %%K %.1f overbought", k)})
		}
		return nil
	}},
	{Name: "relative-strength", Eval: func(c *Context) []Outcome {
		if c.Snap.MarketChangePct == nil {
			return nil
		}
		switch spread := c.Snap.ChangePct - *c.Snap.MarketChangePct; {
		case spread > 2:
			return one(Outcome{Delta: 7, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("outperforming the market by %.1f%%", spread)})
		case spread < -2:
			return one(Outcome{Delta: -7, Confidence: 6, Direction: model.Bearish,
				Text: fmt.Sprintf("lagging the market by %.1f%%", -spread)})
		}
		return nil
	}},
	{Name: "adx", Eval: func(c *Context) []Outcome {
		if c.ADX == nil || c.ADX.ADX <= 25 {
			return nil
		}
		if c.ADX.PlusDI > c.ADX.MinusDI {
			return one(Outcome{Delta: 8, Confidence: 8, Direction: model.Bullish,
				Text: fmt.Sprintf("ADX %.1f confirms the uptrend", c.ADX.ADX)})
		}
		if c.ADX.MinusDI > c.ADX.PlusDI {
			return one(Outcome{Delta: -8, Confidence: 8, Direction: model.Bearish,
				Text: fmt.Sprintf("ADX %.1f confirms the downtrend", c.ADX.ADX)})
		}
		return nil
	}},
	{Name: "williams-r", Eval: func(c *Context) []Outcome {
		if c.WilliamsR == nil {
			return nil
		}
		switch wr := *c.WilliamsR; {
		case wr < -80:
			return one(Outcome{Delta: 5, Confidence: 4, Direction: model.Bullish,
				Text: fmt.Sprintf("Williams %%R %.1f oversold", wr)})
		case wr > -20:
			return one(Outcome{Delta: -5, Confidence: 4, Direction: model.Bearish,
				Text: fmt.Sprintf("Williams %%R %.1f overbought", wr)})
		}
		return nil
	}},
	{Name: "cci", Eval: func(c *Context) []Outcome {
		if c.CCI == nil {
			return nil
		}
		switch cci := *c.CCI; {
		case cci < -200:
			return one(Outcome{Delta: 9, Confidence: 7, Direction: model.Bullish,
				Text: fmt.Sprintf("CCI %.0f at a capitulation extreme", cci)})
		case cci < -100:
			return one(Outcome{Delta: 6, Confidence: 6, Direction: model.Bullish,
				Text: fmt.Sprintf("CCI %.0f oversold", cci)})
		case cci > 200:
			return one(Outcome{Delta: -9, Confidence: 7, Direction: model.Bearish, Warning: true,
				Text: fmt.Sprintf("CCI %.0f at a blow-off extreme", cci)})
		case cci > 100:
			return one(Outcome{Delta: -6, Confidence: 6, Direction: model.Bearish,
				Text: fmt.Sprintf("CCI %.0f overbought", cci)})
		}
		return nil
	}},
	{Name: "ichimoku", Eval: func(c *Context) []Outcome {
		if c.Ichimoku == nil {
			return nil
		}
		top := math.Max(c.Ichimoku.SpanA, c.Ichimoku.SpanB)
		bot := math.Min(c.Ichimoku.SpanA, c.Ichimoku.SpanB)
		if c.Snap.Price > top {
			return one(Outcome{Delta: 7, Confidence: 6, Direction: model.Bullish,
				Text: "price above the Ichimoku cloud"})
		}
		if c.Snap.Price < bot {
			return one(Outcome{Delta: -7, Confidence: 6, Direction: model.Bearish,
				Text: "price below the Ichimoku cloud"})
		}
		return nil
	}},
	{Name: "patterns", Eval: func(c *Context) []Outcome {
		var out []Outcome
		for _, p := range c.Patterns {
			if p.Bullish == nil {
				out = append(out, Outcome{Confidence: 4, Direction: model.Neutral,
					Text: fmt.Sprintf("%s forming, direction unresolved", p.Type)})
				continue
			}
			delta := p.Confidence / 10
			if *p.Bullish {
				out = append(out, Outcome{Delta: delta, Confidence: 8, Direction: model.Bullish,
					Text: fmt.Sprintf("%s pattern detected (%.0f%% confidence)", p.Type, p.Confidence)})
			} else {
				out = append(out, Outcome{Delta: -delta, Confidence: 8, Direction: model.Bearish, Warning: true,
					Text: fmt.Sprintf("%s pattern detected (%.0f%% confidence)", p.Type, p.Confidence)})
			}
		}
		return out
	}},
	{Name: "support-resistance", Eval: func(c *Context) []Outcome {
		if c.Levels == nil || c.Snap.Price <= 0 {
			return nil
		}
		var out []Outcome
		if s := c.Levels.NearestSupport; s != nil {
			if d := (c.Snap.Price - s.Price) / c.Snap.Price; d > 0 && d < 0.02 {
				out = append(out, Outcome{Delta: 6, Confidence: 5, Direction: model.Bullish,
					Text: fmt.Sprintf("sitting on support at %.2f (%d touches)", s.Price, s.Touches)})
			}
		}
		if r := c.Levels.NearestResistance; r != nil {
			if d := (r.Price - c.Snap.Price) / c.Snap.Price; d > 0 && d < 0.02 {
				out = append(out, Outcome{Delta: -6, Confidence: 5, Direction: model.Bearish,
					Text: fmt.Sprintf("pressing into resistance at %.2f (%d touches)", r.Price, r.Touches)})
			}
		}
		return out
	}},
	{Name: "fibonacci", Eval: func(c *Context) []Outcome {
		if len(c.Fibs) == 0 || c.Snap.Price <= 0 {
			return nil
		}
		for _, f := range c.Fibs {
			if f.Ratio != 38.2 && f.Ratio != 50 && f.Ratio != 61.8 {
				continue
			}
			if math.Abs(f.Price-c.Snap.Price)/c.Snap.Price < 0.01 {
				return one(Outcome{Delta: 4, Confidence: 4, Direction: model.Bullish,
					Text: fmt.Sprintf("holding the %.1f%% Fibonacci retracement at %.2f", f.Ratio, f.Price)})
			}
		}
		return nil
	}},
	{Name: "volume-profile", Eval: func(c *Context) []Outcome {
		if c.Profile == nil || c.Snap.Price <= 0 {
			return nil
		}
		p := c.Profile
		var out []Outcome
		switch {
		case c.Snap.Price > p.ValueAreaHigh:
			out = append(out, Outcome{Delta: 4, Confidence: 4, Direction: model.Bullish,
				Text: "trading above the value area, acceptance at higher prices"})
		case c.Snap.Price < p.ValueAreaLow:
			out = append(out, Outcome{Delta: -4, Confidence: 4, Direction: model.Bearish,
				Text: "trading below the value area, rejection from value"})
		}
		pocMid := (p.POC.Low + p.POC.High) / 2
		if math.Abs(c.Snap.Price-pocMid)/c.Snap.Price < 0.02 {
			out = append(out, Outcome{Delta: 3, Confidence: 3, Direction: model.Bullish,
				Text: fmt.Sprintf("near the point of control at %.2f", pocMid)})
		}
		return out
	}},
	{Name: "regime", Eval: func(c *Context) []Outcome {
		if c.Regime == nil {
			return nil
		}
		switch c.Regime.Type {
		case model.StrongUptrend:
			return one(Outcome{Delta: 10, Confidence: 8, Direction: model.Bullish,
				Text: "strong uptrend regime"})
		case model.ModerateUptrend:
			return one(Outcome{Delta: 6, Confidence: 5, Direction: model.Bullish,
				Text: "moderate uptrend regime"})
		case model.StrongDowntrend:
			return one(Outcome{Delta: -10, Confidence: 8, Direction: model.Bearish, Warning: true,
				Text: "strong downtrend regime"})
		case model.ModerateDowntrend:
			return one(Outcome{Delta: -6, Confidence: 5, Direction: model.Bearish,
				Text: "moderate downtrend regime"})
		case model.Choppy:
			return one(Outcome{Delta: -4, Confidence: 4, Direction: model.Neutral, Warning: true,
				Text: "choppy regime, signals unreliable"})
		}
		return nil
	}},
}
