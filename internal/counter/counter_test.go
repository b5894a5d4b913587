package counter

import (
	"io"
	"log/slog"
	"testing"

	"github.com/BoD/a/internal/store"
)

func newTestAggregator(t *testing.T) (*Aggregator, *store.Store) {
	t.Helper()
	s, err := store.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.CreateSchema(); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(s, logger), s
}

func TestCounters_WeightedArithmetic(t *testing.T) {
	a, s := newTestAggregator(t)
	defer s.Close()

	// [A, A, B], both windows large enough to hold all:
	// A = 2*1 + 2*3 = 8, B = 1*1 + 1*3 = 4.
	for _, id := range []string{"A", "A", "B"} {
		if err := s.RecordLaunch(id); err != nil {
			t.Fatalf("RecordLaunch failed: %v", err)
		}
	}

	counters := a.Counters()
	if counters["A"] != 8 {
		t.Errorf("score of A = %d; want 8", counters["A"])
	}
	if counters["B"] != 4 {
		t.Errorf("score of B = %d; want 4", counters["B"])
	}
}

func TestCounters_DeprioritizedSentinel(t *testing.T) {
	a, s := newTestAggregator(t)
	defer s.Close()

	if err := s.RecordLaunch("A"); err != nil {
		t.Fatalf("RecordLaunch failed: %v", err)
	}
	if err := s.Deprioritize("A"); err != nil {
		t.Fatalf("Deprioritize failed: %v", err)
	}

	counters := a.Counters()
	if counters["A"] != Deprioritized {
		t.Errorf("score of deprioritized item = %d; want %d", counters["A"], Deprioritized)
	}
}

func TestCounters_UndeprioritizeStartsAtZero(t *testing.T) {
	a, s := newTestAggregator(t)
	defer s.Close()

	for i := 0; i < 4; i++ {
		if err := s.RecordLaunch("A"); err != nil {
			t.Fatalf("RecordLaunch failed: %v", err)
		}
	}
	if err := s.Deprioritize("A"); err != nil {
		t.Fatalf("Deprioritize failed: %v", err)
	}
	if err := s.Undeprioritize("A"); err != nil {
		t.Fatalf("Undeprioritize failed: %v", err)
	}

	counters := a.Counters()
	if score, ok := counters["A"]; ok && score != 0 {
		t.Errorf("score after undeprioritize = %d; want 0 (history purged)", score)
	}
}

func TestCounters_ServesStaleSnapshotOnReadFailure(t *testing.T) {
	a, s := newTestAggregator(t)

	if err := s.RecordLaunch("A"); err != nil {
		t.Fatalf("RecordLaunch failed: %v", err)
	}
	first := a.Counters()
	if first["A"] != 4 {
		t.Fatalf("score of A = %d; want 4", first["A"])
	}

	// Closing the store makes every read fail; the aggregator must keep
	// serving the last-known-good snapshot rather than an empty map.
	s.Close()

	stale := a.Counters()
	if stale["A"] != 4 {
		t.Errorf("stale score of A = %d; want 4 (last-known-good)", stale["A"])
	}
}
