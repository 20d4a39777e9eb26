package scorer

import (
	"testing"

	"TradePulse/internal/model"
)

func flatQuotes(n int, price, volume float64) model.Quotes {
	q := model.Quotes{
		Opens:   make([]float64, n),
		Highs:   make([]float64, n),
		Lows:    make([]float64, n),
		Closes:  make([]float64, n),
		Volumes: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		q.Opens[i] = price
		q.Highs[i] = price
		q.Lows[i] = price
		q.Closes[i] = price
		q.Volumes[i] = volume
	}
	return q
}

func flatSnapshot(price, volume float64) model.Snapshot {
	return model.Snapshot{
		Symbol:    "TEST",
		Price:     price,
		Open:      price,
		High:      price,
		Low:       price,
		PrevClose: price,
		Volume:    volume,
	}
}

func TestEvaluate_FlatSeriesIsNeutral(t *testing.T) {
	quotes := flatQuotes(30, 100, 1000)
	res, err := Evaluate(flatSnapshot(100, 1000), &quotes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 50 {
		t.Errorf("expected neutral score 50 for a flat tape, got %d", res.Score)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", res.Warnings)
	}
	// Only the non-directional squeeze signal may fire.
	for _, s := range res.Signals {
		if s.Direction != model.Neutral {
			t.Errorf("unexpected directional signal on a flat tape: %+v", s)
		}
	}
}

func TestEvaluate_NoHistoryNeutralZeroConfidence(t *testing.T) {
	res, err := Evaluate(model.Snapshot{Symbol: "TEST"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 50 {
		t.Errorf("expected score 50 with no data, got %d", res.Score)
	}
	if res.Confidence != 0 {
		t.Errorf("expected confidence 0 with no data, got %d", res.Confidence)
	}
	if res.Recommendation != model.WeakHold {
		t.Errorf("expected WEAK HOLD at score 50, got %s", res.Recommendation)
	}
}

func TestEvaluate_BoundsAlwaysHold(t *testing.T) {
	// A strongly rising tape on heavy volume pushes many bullish checks.
	n := 60
	q := model.Quotes{
		Opens:   make([]float64, n),
		Highs:   make([]float64, n),
		Lows:    make([]float64, n),
		Closes:  make([]float64, n),
		Volumes: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p := 200 + float64(i)
		q.Opens[i] = p - 0.5
		q.Highs[i] = p + 1
		q.Lows[i] = p - 1
		q.Closes[i] = p
		q.Volumes[i] = 1000
	}
	snap := model.Snapshot{
		Symbol: "TEST", Price: 260, Open: 256, High: 261, Low: 255,
		PrevClose: 250, ChangePct: 4, Volume: 5000,
	}
	res, err := Evaluate(snap, &q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score < 0 || res.Score > 100 {
		t.Errorf("score out of bounds: %d", res.Score)
	}
	if res.Confidence < 0 || res.Confidence > 100 {
		t.Errorf("confidence out of bounds: %d", res.Confidence)
	}
	if res.Score <= 50 {
		t.Errorf("expected a bullish tape to score above neutral, got %d", res.Score)
	}
}

func TestEvaluate_MalformedQuotesRejected(t *testing.T) {
	q := model.Quotes{
		Closes:  []float64{100, 101, 102},
		Volumes: []float64{100, 100}, // length mismatch
	}
	if _, err := Evaluate(flatSnapshot(100, 100), &q); err == nil {
		t.Error("expected an error for mismatched array lengths")
	}
}

func TestRecommend_TierMapping(t *testing.T) {
	cases := []struct {
		score int
		want  model.Recommendation
	}{
		{90, model.StrongBuy},
		{85, model.StrongBuy},
		{80, model.Buy},
		{70, model.ModerateBuy},
		{60, model.Hold},
		{50, model.WeakHold},
		{45, model.WeakHold},
		{30, model.Avoid},
		{0, model.Avoid},
	}
	for _, c := range cases {
		if got := Recommend(c.score); got != c.want {
			t.Errorf("score %d: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	quotes := flatQuotes(30, 100, 1000)
	snap := flatSnapshot(100, 1000)
	a, err := Evaluate(snap, &quotes)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Evaluate(snap, &quotes)
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != b.Score || a.Confidence != b.Confidence || len(a.Signals) != len(b.Signals) {
		t.Error("repeated evaluation of identical inputs must match")
	}
}
