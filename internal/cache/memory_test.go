package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Error("expected nil entry for a missing key")
	}

	wrote := Entry{Data: []byte(`{"rating":72}`), Timestamp: time.Now()}
	if err := s.Set(ctx, "rating", wrote); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err = s.Get(ctx, "rating")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || string(got.Data) != string(wrote.Data) {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestMemoryStore_LastWriterWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "k", Entry{Data: []byte("first")})
	s.Set(ctx, "k", Entry{Data: []byte("second")})

	got, _ := s.Get(ctx, "k")
	if got == nil || string(got.Data) != "second" {
		t.Errorf("expected the second write to win, got %+v", got)
	}
}

func TestEntry_Age(t *testing.T) {
	now := time.Now()
	e := Entry{Timestamp: now.Add(-5 * time.Minute)}
	if age := e.Age(now); age != 5*time.Minute {
		t.Errorf("expected 5m age, got %s", age)
	}
}
