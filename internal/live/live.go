// Package live provides small latest-value publishers.
//
// The launcher's aggregation pipeline is a combine-latest graph: several
// independently-updating inputs (installed apps, shortcuts, contacts,
// notification rankings, usage counters, the search query) feed one
// recomputation step that always reads the newest value of every input.
// Value[T] holds such a latest value and ticks subscribers when it changes;
// Signal is the value-less variant used for plain "something changed" events.
//
// Subscriptions are primed: the channel returned by Subscribe carries an
// initial tick, so a subscriber's first loop iteration observes the current
// value without waiting for a change. Ticks are coalesced (a subscriber that
// is behind sees one tick, not one per missed update), which is safe because
// consumers re-read the latest value rather than consuming a stream of deltas.
package live

import "sync"

// Value holds the latest value of type T and notifies subscribers on Set.
type Value[T any] struct {
	mu   sync.Mutex
	val  T
	subs []chan struct{}
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{val: initial}
}

// Get returns the latest value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Set stores val and ticks every subscriber.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	v.val = val
	subs := v.subs
	v.mu.Unlock()

	for _, ch := range subs {
		tick(ch)
	}
}

// Subscribe returns a channel that receives a tick whenever the value
// changes. The channel is primed with one tick so the current value is
// observed immediately.
func (v *Value[T]) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	v.mu.Lock()
	v.subs = append(v.subs, ch)
	v.mu.Unlock()
	return ch
}

// Signal is a value-less change notifier.
type Signal struct {
	mu   sync.Mutex
	subs []chan struct{}
}

// NewSignal creates a Signal.
func NewSignal() *Signal {
	return &Signal{}
}

// Raise ticks every subscriber.
func (s *Signal) Raise() {
	s.mu.Lock()
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		tick(ch)
	}
}

// Subscribe returns a primed tick channel, as with Value.Subscribe.
func (s *Signal) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// tick delivers a coalesced notification: if the subscriber already has a
// pending tick, the new one is dropped.
func tick(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
