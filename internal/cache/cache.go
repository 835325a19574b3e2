// Package cache provides a single-slot in-memory TTL cache. The slot holds
// exactly one value at a time; every operation reads or replaces the whole
// value, so callers never see a partial update.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Slot is a one-value TTL cache. The zero value is not usable; call NewSlot.
type Slot[T any] struct {
	mu  sync.RWMutex
	ent *entry[T]
}

func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Get returns the cached value if one is present and not yet expired.
// An expired entry is treated as absent; it is not removed here.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ent == nil || !time.Now().Before(s.ent.expiresAt) {
		var zero T
		return zero, false
	}
	return s.ent.value, true
}

// Set stores value with an expiry of now+ttl, replacing any prior entry.
func (s *Slot[T]) Set(value T, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ent = &entry[T]{value: value, expiresAt: time.Now().Add(ttl)}
}

// Clear drops the entry unconditionally so the next Get misses.
func (s *Slot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ent = nil
}
