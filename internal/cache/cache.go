// Package cache is the keyed snapshot store behind the market rating.
// Freshness is decided by the caller; stores retain stale entries so a
// failed recompute can fall back to the last good value.
package cache

import (
	"context"
	"time"
)

// Entry is one cached record with its write time. Data is an opaque
// JSON payload owned by the caller.
type Entry struct {
	Data      []byte    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Age returns how long ago the entry was written.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// Store reads and writes entries by key. Get returns (nil, nil) when
// the key is absent. Writes are last-writer-wins with no merge.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, e Entry) error
}
