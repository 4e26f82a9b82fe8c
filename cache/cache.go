// Copyright (c) 2025 Vox Observer.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"sync"
	"time"
)

// Snapshot is a single-entry cache with a fixed time-to-live. It holds one
// value (typically a ranked result set) and hands it out until the deadline
// passes. Writers elsewhere do not invalidate it; staleness up to the TTL
// is an accepted trade.
//
// A Snapshot is passed by reference into whatever service uses it, so tests
// can construct their own and a distributed cache could replace it behind
// the same shape.
type Snapshot[T any] struct {
	mu       sync.Mutex
	value    T
	deadline time.Time
	ttl      time.Duration
}

// New creates an empty Snapshot with the given TTL.
func New[T any](ttl time.Duration) *Snapshot[T] {
	return &Snapshot[T]{ttl: ttl}
}

// Get returns the cached value and whether it is still fresh. An empty or
// expired snapshot returns the zero value and false.
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deadline.IsZero() || time.Now().After(s.deadline) {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Set stores a value and restarts the TTL clock.
func (s *Snapshot[T]) Set(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = v
	s.deadline = time.Now().Add(s.ttl)
}

// Invalidate empties the snapshot immediately.
func (s *Snapshot[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.value = zero
	s.deadline = time.Time{}
}

// TTL reports the configured time-to-live.
func (s *Snapshot[T]) TTL() time.Duration {
	return s.ttl
}
