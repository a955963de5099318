package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/ppda/pkg/domain"
)

// Store implements ports.SampleStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Sample
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Sample),
	}
}

func clone(s *domain.Sample) *domain.Sample {
	c := *s
	c.Symbols = append([]domain.Symbol(nil), s.Symbols...)
	return &c
}

// Save persists the sample in memory.
func (s *Store) Save(ctx context.Context, sample *domain.Sample) error {
	// Deep copy to ensure isolation, similar to serialization
	copied := clone(sample)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sample.ID] = copied
	return nil
}

// Load retrieves the sample from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sample, ok := s.data[id]
	if !ok {
		return nil, domain.ErrSampleNotFound
	}

	// Copy on read so callers can't mutate store state through the pointer
	return clone(sample), nil
}

// Delete removes the sample.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns sample IDs ordered by creation time, then ID.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	samples := make([]*domain.Sample, 0, len(s.data))
	for _, sample := range s.data {
		samples = append(samples, sample)
	}
	sort.Slice(samples, func(i, j int) bool {
		if !samples[i].CreatedAt.Equal(samples[j].CreatedAt) {
			return samples[i].CreatedAt.Before(samples[j].CreatedAt)
		}
		return samples[i].ID < samples[j].ID
	})

	ids := make([]string, len(samples))
	for i, sample := range samples {
		ids[i] = sample.ID
	}
	return ids, nil
}

// Len returns the number of stored samples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
