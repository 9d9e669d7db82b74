package store

import (
	"sync"

	"github.com/kilianp07/macc/core/measure"
)

// MemoryStore keeps measures in memory for testing or lightweight usage.
// Insertion order is preserved for listing.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string]measure.Measure
	order []string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]measure.Measure{}}
}

// Save inserts or replaces the measure by id.
func (s *MemoryStore) Save(m measure.Measure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[m.ID]; !ok {
		s.order = append(s.order, m.ID)
	}
	s.data[m.ID] = m
	return nil
}

// Get returns the measure with the given id.
func (s *MemoryStore) Get(id string) (measure.Measure, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.data[id]
	return m, ok, nil
}

// List returns all measures in insertion order.
func (s *MemoryStore) List() ([]measure.Measure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]measure.Measure, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.data[id])
	}
	return out, nil
}

// Delete removes the measure with the given id.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[id]; !ok {
		return nil
	}
	delete(s.data, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error { return nil }
