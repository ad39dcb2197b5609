package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rmonteiro/fuel-data/internal/model"
)

// Memory is a thread-safe in-memory store. It keeps insertion order so
// aggregation sees records the same way the Postgres backend returns them.
type Memory struct {
	mu      sync.RWMutex
	records []model.Record
	keys    map[model.Key]struct{}
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{keys: make(map[model.Key]struct{})}
}

// ExistingKeys returns a copy of the stored key set.
func (s *Memory) ExistingKeys(ctx context.Context) (map[model.Key]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make(map[model.Key]struct{}, len(s.keys))
	for k := range s.keys {
		keys[k] = struct{}{}
	}
	return keys, nil
}

// Append stores the records as a unit. A key collision rejects the whole
// batch, mirroring the Postgres unique constraint.
func (s *Memory) Append(ctx context.Context, records []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if _, exists := s.keys[r.Key()]; exists {
			return fmt.Errorf("append record: duplicate key %+v", r.Key())
		}
	}
	for _, r := range records {
		s.keys[r.Key()] = struct{}{}
		s.records = append(s.records, r)
	}
	return nil
}

// AllRecords returns a copy of the stored records in insertion order.
func (s *Memory) AllRecords(ctx context.Context) ([]model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Len reports the number of stored records.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
