package jsonstore

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store used in tests. It deep-copies records on
// both Read and Write so callers cannot alias stored state, and it counts
// writes per path so tests can assert that an operation did not persist.
type MemStore struct {
	mu        sync.RWMutex
	documents map[string][]Record
	writes    map[string]int

	// WriteErr, when set, is returned by every Write. Simulates an
	// unavailable filesystem.
	WriteErr error
	// ReadErr, when set, is returned by every Read.
	ReadErr error
}

func NewMemStore() *MemStore {
	return &MemStore{
		documents: make(map[string][]Record),
		writes:    make(map[string]int),
	}
}

func (s *MemStore) Read(ctx context.Context, path string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return cloneRecords(s.documents[path]), nil
}

func (s *MemStore) Write(ctx context.Context, path string, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.documents[path] = cloneRecords(records)
	s.writes[path]++
	return nil
}

// Writes reports how many times path has been written.
func (s *MemStore) Writes(path string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes[path]
}

// Seed replaces the document at path without counting as a write.
func (s *MemStore) Seed(path string, records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[path] = cloneRecords(records)
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		cp := make(Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out
}
