// Package forecast combines several independent short-horizon price
// projections into a confidence-weighted ensemble estimate. None of the
// methods is a fitted statistical model; each is a cheap heuristic and
// the ensemble's value is in their disagreement as much as their mean.
package forecast

import (
	"errors"
	"fmt"
	"math"

	"TradePulse/internal/level"
	"TradePulse/internal/model"
	"TradePulse/internal/pattern"
	"TradePulse/internal/series"
)

// Horizon is the number of bars projected ahead.
const Horizon = 7

// MinBars is the minimum history length the ensemble accepts.
const MinBars = 20

// regressionWindow caps how many trailing closes the regression fits.
const regressionWindow = 30

// momentumWindow is the bar count the momentum extrapolation averages.
const momentumWindow = 10

// ErrInsufficientData marks a series too short to forecast.
var ErrInsufficientData = errors.New("forecast: insufficient history")

// Forecast produces the 7-bar-ahead ensemble estimate for one symbol.
//
// The reported [LowerBound, UpperBound] interval is the unweighted
// candidate mean ±2σ, while PredictedPrice is the confidence-weighted
// mean, so the prediction can fall outside its own interval when one
// high-confidence method disagrees with the rest.
func Forecast(symbol string, currentPrice float64, q model.Quotes) (*model.ForecastResult, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	if q.Len() < MinBars {
		return nil, fmt.Errorf("%w: have %d bars, need %d", ErrInsufficientData, q.Len(), MinBars)
	}
	if currentPrice <= 0 {
		currentPrice = q.Closes[len(q.Closes)-1]
	}

	preds := candidates(currentPrice, q)
	if len(preds) == 0 {
		return nil, ErrInsufficientData
	}

	var weighted, weight float64
	prices := make([]float64, 0, len(preds))
	for _, p := range preds {
		weighted += p.Price * p.Confidence
		weight += p.Confidence
		prices = append(prices, p.Price)
	}
	ensemble := weighted / weight

	sd := series.StdDev(prices)
	mid := series.Mean(prices)
	changePct := (ensemble - currentPrice) / currentPrice * 100

	var conf float64
	for _, p := range preds {
		conf += p.Confidence
	}
	conf /= float64(len(preds))

	return &model.ForecastResult{
		Symbol:            symbol,
		CurrentPrice:      currentPrice,
		PredictedPrice:    ensemble,
		LowerBound:        mid - 2*sd,
		UpperBound:        mid + 2*sd,
		ExpectedChangePct: changePct,
		Confidence:        math.Round(conf),
		Outlook:           OutlookFor(changePct),
		MethodsUsed:       len(preds),
		Predictions:       preds,
	}, nil
}

// candidates runs every projection method and keeps the ones that
// produced a usable price. Confidences are on a 0..100 scale.
func candidates(price float64, q model.Quotes) []model.MethodPrediction {
	var out []model.MethodPrediction

	if p, ok := regressionTarget(q.Closes); ok {
		out = append(out, p)
	}
	if p, ok := momentumTarget(q.Closes); ok {
		out = append(out, p)
	}
	if p, ok := compoundedReturnTarget(q.Closes); ok {
		out = append(out, p)
	}
	if p, ok := levelTarget(price, q); ok {
		out = append(out, p)
	}
	if p, ok := patternTarget(q); ok {
		out = append(out, p)
	}
	return out
}

// regressionTarget fits the trailing closes and projects the line
// Horizon steps past the last bar. Confidence scales with the slope
// magnitude relative to price.
func regressionTarget(closes []float64) (model.MethodPrediction, bool) {
	n := len(closes)
	if n > regressionWindow {
		closes = closes[n-regressionWindow:]
		n = regressionWindow
	}
	slope := series.Slope(closes)
	intercept := series.Intercept(closes)
	target := intercept + slope*float64(n-1+Horizon)

	mean := series.Mean(closes)
	if mean <= 0 || target <= 0 {
		return model.MethodPrediction{}, false
	}
	slopePct := math.Abs(slope) / mean * 100
	return model.MethodPrediction{
		Method:     "linear_regression",
		Price:      target,
		Confidence: series.Clamp(40+slopePct*40, 30, 85),
	}, true
}

// momentumTarget extrapolates the mean bar-over-bar change of the most
// recent bars.
func momentumTarget(closes []float64) (model.MethodPrediction, bool) {
	if len(closes) < momentumWindow+1 {
		return model.MethodPrediction{}, false
	}
	recent := closes[len(closes)-momentumWindow-1:]
	avgChange := (recent[len(recent)-1] - recent[0]) / float64(momentumWindow)
	target := closes[len(closes)-1] + avgChange*Horizon
	if target <= 0 {
		return model.MethodPrediction{}, false
	}
	return model.MethodPrediction{
		Method:     "momentum",
		Price:      target,
		Confidence: 55,
	}, true
}

// compoundedReturnTarget compounds the mean daily return forward.
// Confidence falls as return dispersion rises.
func compoundedReturnTarget(closes []float64) (model.MethodPrediction, bool) {
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			return model.MethodPrediction{}, false
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}
	mean := series.Mean(returns)
	sd := series.StdDev(returns)

	target := closes[len(closes)-1] * math.Pow(1+mean, Horizon)
	if target <= 0 || math.IsNaN(target) {
		return model.MethodPrediction{}, false
	}
	return model.MethodPrediction{
		Method:     "volatility",
		Price:      target,
		Confidence: series.Clamp(80-sd*1000, 20, 80),
	}, true
}

// levelTarget projects toward the closer of the nearest support and
// resistance, weighted by how often that level was touched.
func levelTarget(price float64, q model.Quotes) (model.MethodPrediction, bool) {
	if len(q.Highs) == 0 || len(q.Lows) == 0 || price <= 0 {
		return model.MethodPrediction{}, false
	}
	win := q.Tail(pattern.Window)
	set := level.Find(win.Highs, win.Lows, price)

	var target *model.Level
	if s, r := set.NearestSupport, set.NearestResistance; s != nil && r != nil {
		if math.Abs(s.Price-price) < math.Abs(r.Price-price) {
			target = s
		} else {
			target = r
		}
	} else if s != nil {
		target = s
	} else if r != nil {
		target = r
	}
	if target == nil {
		return model.MethodPrediction{}, false
	}
	return model.MethodPrediction{
		Method:     "support_resistance",
		Price:      target.Price,
		Confidence: series.Clamp(float64(target.Touches)*10, 20, 70),
	}, true
}

// patternTarget projects a measured move when a directional formation
// with a computed target was detected.
func patternTarget(q model.Quotes) (model.MethodPrediction, bool) {
	for _, p := range pattern.DetectAll(q) {
		if !p.Detected || p.Bullish == nil || p.Target <= 0 {
			continue
		}
		return model.MethodPrediction{
			Method:     string(p.Type),
			Price:      p.Target,
			Confidence: series.Clamp(p.Confidence*0.8, 20, 80),
		}, true
	}
	return model.MethodPrediction{}, false
}

// OutlookFor maps an expected change percentage to its qualitative label.
func OutlookFor(changePct float64) model.Outlook {
	switch {
	case changePct > 5:
		return model.StrongUpside
	case changePct > 2:
		return model.ModerateUpside
	case changePct >= -2:
		return model.Sideways
	case changePct >= -5:
		return model.ModerateDownside
	default:
		return model.StrongDownside
	}
}
