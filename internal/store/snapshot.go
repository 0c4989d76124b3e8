// Package store holds the in-memory snapshots that mirror the document
// store, one per entity collection. A snapshot is only ever touched after
// the matching remote write has succeeded, so it never drifts ahead of the
// server state.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Snapshot is an ordered per-owner mirror of one collection. The zero
// value is not usable; construct with New.
type Snapshot[T any] struct {
	mu      sync.RWMutex
	byOwner map[uuid.UUID][]T
	idOf    func(T) uuid.UUID
}

func New[T any](idOf func(T) uuid.UUID) *Snapshot[T] {
	return &Snapshot[T]{
		byOwner: make(map[uuid.UUID][]T),
		idOf:    idOf,
	}
}

// Replace swaps the owner's snapshot wholesale with a fresh load result.
func (s *Snapshot[T]) Replace(owner uuid.UUID, records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]T, len(records))
	copy(copied, records)
	s.byOwner[owner] = copied
}

// Prepend puts a freshly created record at the head, keeping the
// most-recent-first order of the load query.
func (s *Snapshot[T]) Prepend(owner uuid.UUID, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byOwner[owner] = append([]T{record}, s.byOwner[owner]...)
}

// Apply replaces the record with the same id in place, leaving every other
// record untouched. Unknown ids are ignored.
func (s *Snapshot[T]) Apply(owner uuid.UUID, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.idOf(record)
	records := s.byOwner[owner]
	for i := range records {
		if s.idOf(records[i]) == id {
			records[i] = record
			return
		}
	}
}

// Remove drops the record with the given id, if present.
func (s *Snapshot[T]) Remove(owner uuid.UUID, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.byOwner[owner]
	for i := range records {
		if s.idOf(records[i]) == id {
			s.byOwner[owner] = append(records[:i:i], records[i+1:]...)
			return
		}
	}
}

// List returns a copy of the owner's snapshot in stored order.
func (s *Snapshot[T]) List(owner uuid.UUID) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.byOwner[owner]
	copied := make([]T, len(records))
	copy(copied, records)
	return copied
}

// Get looks a single record up by id.
func (s *Snapshot[T]) Get(owner uuid.UUID, id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.byOwner[owner] {
		if s.idOf(record) == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// Len reports the owner's snapshot size.
func (s *Snapshot[T]) Len(owner uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byOwner[owner])
}
