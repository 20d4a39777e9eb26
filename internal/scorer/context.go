package scorer

import (
	"fmt"

	"TradePulse/internal/indicator"
	"TradePulse/internal/level"
	"TradePulse/internal/model"
	"TradePulse/internal/pattern"
	"TradePulse/internal/regime"
	"TradePulse/internal/series"
	"TradePulse/internal/volprofile"
)

// Context carries the snapshot plus every derived input a rule may
// inspect. Members are nil whenever the history was too short to
// compute them; rules treat a nil member as "do not vote".
type Context struct {
	Snap model.Snapshot

	RSI       *float64
	MACD      *model.MACD
	Bollinger *model.Bollinger
	StochK    *float64
	WilliamsR *float64
	CCI       *float64
	ADX       *model.ADX
	Ichimoku  *model.Ichimoku
	ATR       *float64
	MFI       *float64
	OBV       *float64
	AvgVolume *float64

	Patterns []model.PatternMatch
	Levels   *model.LevelSet
	Fibs     []model.FibLevel
	Profile  *model.VolumeProfile
	Regime   *model.Regime
}

// buildContext computes every optional input the rule table can use.
// quotes may be nil; whatever cannot be derived stays nil.
func buildContext(snap model.Snapshot, quotes *model.Quotes) (*Context, error) {
	ctx := &Context{Snap: snap}
	if quotes == nil || quotes.Len() == 0 {
		return ctx, nil
	}
	if err := quotes.Validate(); err != nil {
		return nil, fmt.Errorf("scorer: %w", err)
	}
	q := *quotes

	if v, ok := indicator.RSI(q.Closes, indicator.DefaultRSIPeriod); ok {
		ctx.RSI = &v
	}
	ctx.MACD = indicator.MACD(q.Closes, indicator.DefaultMACDFast, indicator.DefaultMACDSlow, indicator.DefaultMACDSignal)
	ctx.Bollinger = indicator.Bollinger(q.Closes, indicator.DefaultBollingerPeriod, indicator.DefaultBollingerMult)

	if len(q.Highs) > 0 && len(q.Lows) > 0 {
		if v, ok := indicator.StochasticK(q.Highs, q.Lows, q.Closes, indicator.DefaultStochasticPeriod); ok {
			ctx.StochK = &v
		}
		if v, ok := indicator.WilliamsR(q.Highs, q.Lows, q.Closes, indicator.DefaultWilliamsPeriod); ok {
			ctx.WilliamsR = &v
		}
		if v, ok := indicator.CCI(q.Highs, q.Lows, q.Closes, indicator.DefaultCCIPeriod); ok {
			ctx.CCI = &v
		}
		if v, ok := indicator.ATR(q.Highs, q.Lows, q.Closes, indicator.DefaultATRPeriod); ok {
			ctx.ATR = &v
		}
		ctx.ADX = indicator.ADXDI(q.Highs, q.Lows, q.Closes, indicator.DefaultADXPeriod)
		ctx.Ichimoku = indicator.IchimokuCloud(q.Highs, q.Lows,
			indicator.DefaultIchimokuConversion, indicator.DefaultIchimokuBase, indicator.DefaultIchimokuSpanB)

		win := q.Tail(pattern.Window)
		lvls := level.Find(win.Highs, win.Lows, snap.Price)
		ctx.Levels = &lvls

		fibs := level.Fibonacci(win.Highs, win.Lows)
		// A flat swing yields seven identical levels; nothing to vote on.
		if len(fibs) > 0 && fibs[0].Price != fibs[len(fibs)-1].Price {
			ctx.Fibs = fibs
		}
	}

	if len(q.Volumes) > 0 {
		if v, ok := indicator.OBV(q.Closes, q.Volumes); ok {
			ctx.OBV = &v
		}
		if len(q.Highs) > 0 && len(q.Lows) > 0 {
			if v, ok := indicator.MFI(q.Highs, q.Lows, q.Closes, q.Volumes, indicator.DefaultMFIPeriod); ok {
				ctx.MFI = &v
			}
		}
		if avg, ok := series.SMA(q.Volumes, min(20, q.Len())); ok && avg > 0 {
			ctx.AvgVolume = &avg
		}
		win := q.Tail(pattern.Window)
		if p := volprofile.Build(win.Closes, win.Volumes); p != nil && p.POC.High > p.POC.Low {
			ctx.Profile = p
		}
	}

	ctx.Patterns = pattern.DetectAll(q)

	if q.Len() >= 4 {
		r := regime.Classify(q.Tail(pattern.Window).Closes)
		ctx.Regime = &r
	}
	return ctx, nil
}

// indicatorMap flattens the computed indicators for the result record.
func (c *Context) indicatorMap() map[string]float64 {
	m := make(map[string]float64)
	if c.RSI != nil {
		m["rsi"] = *c.RSI
	}
	if c.MACD != nil {
		m["macd"] = c.MACD.MACD
		m["macdSignal"] = c.MACD.Signal
		m["macdHistogram"] = c.MACD.Histogram
	}
	if c.Bollinger != nil {
		m["bollingerUpper"] = c.Bollinger.Upper
		m["bollingerMiddle"] = c.Bollinger.Middle
		m["bollingerLower"] = c.Bollinger.Lower
		m["percentB"] = c.Bollinger.PercentB
	}
	if c.StochK != nil {
		m["stochasticK"] = *c.StochK
	}
	if c.WilliamsR != nil {
		m["williamsR"] = *c.WilliamsR
	}
	if c.CCI != nil {
		m["cci"] = *c.CCI
	}
	if c.ADX != nil {
		m["adx"] = c.ADX.ADX
		m["plusDI"] = c.ADX.PlusDI
		m["minusDI"] = c.ADX.MinusDI
	}
	if c.ATR != nil {
		m["atr"] = *c.ATR
	}
	if c.MFI != nil {
		m["mfi"] = *c.MFI
	}
	if c.OBV != nil {
		m["obv"] = *c.OBV
	}
	return m
}
