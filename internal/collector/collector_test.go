package collector

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"TradePulse/internal/metrics"
)

func TestCollectObservesFetchDuration(t *testing.T) {
	c := New(&MockFetcher{Price: 100})
	if _, _, err := c.Collect(context.Background(), "SPY"); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if n := testutil.CollectAndCount(metrics.FetchDuration); n < 1 {
		t.Errorf("expected the fetch duration histogram to record an observation, got %d series", n)
	}
}
