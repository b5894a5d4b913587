// Package counter derives per-item usage scores from the store's history
// windows.
//
// The combined score is longTermCount*1 + shortTermCount*3: a launch counts
// once while it is in the long window and three more times while it is also
// in the short window, so recently-frequent items get a boost that fades as
// launches of other items push them out. Deprioritized items get the reserved
// sentinel score -1, strictly below any achievable real score.
package counter

import (
	"log/slog"
	"sync"

	"github.com/BoD/a/internal/store"
)

// Weights applied to the two history windows.
const (
	longTermWeight  = 1
	shortTermWeight = 3
)

// Deprioritized is the sentinel score of a deprioritized item. All real
// scores are >= 0, so deprioritized items sort after everything else.
const Deprioritized int64 = -1

// Aggregator computes the live id → combined score mapping. If the store
// cannot be read it serves the last-known-good snapshot instead of failing
// the aggregation pipeline.
type Aggregator struct {
	store  *store.Store
	logger *slog.Logger

	mu   sync.Mutex
	last map[string]int64
}

// New creates an Aggregator over st.
func New(st *store.Store, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		store:  st,
		logger: logger,
		last:   map[string]int64{},
	}
}

// Counters returns the current id → combined score mapping. On a store read
// failure it logs and returns the previous snapshot.
func (a *Aggregator) Counters() map[string]int64 {
	long, err := a.store.WindowCounts(store.LongTermWindowSize)
	if err != nil {
		return a.fallback("long window", err)
	}
	short, err := a.store.WindowCounts(store.ShortTermWindowSize)
	if err != nil {
		return a.fallback("short window", err)
	}
	deprioritized, err := a.store.DeprioritizedItems()
	if err != nil {
		return a.fallback("deprioritized set", err)
	}

	counters := make(map[string]int64, len(long)+len(deprioritized))
	for id, n := range long {
		counters[id] = n * longTermWeight
	}
	for id, n := range short {
		counters[id] += n * shortTermWeight
	}
	for id := range deprioritized {
		counters[id] = Deprioritized
	}

	a.mu.Lock()
	a.last = counters
	a.mu.Unlock()
	return counters
}

// Changed returns a primed tick channel firing whenever the underlying store
// changes.
func (a *Aggregator) Changed() <-chan struct{} {
	return a.store.Changed().Subscribe()
}

func (a *Aggregator) fallback(what string, err error) map[string]int64 {
	a.logger.Warn("counter read failed, serving last-known-good snapshot",
		"source", what, "error", err)
	a.mu.Lock()
	defer a.mu.Unlock()
	snapshot := make(map[string]int64, len(a.last))
	for id, score := range a.last {
		snapshot[id] = score
	}
	return snapshot
}
