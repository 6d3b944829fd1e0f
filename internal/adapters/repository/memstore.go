package repository

import (
	"context"
	"sync"

	"github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/pkg/metrics"
)

// Default store configuration constants.
const (
	defaultCapacityHint = 64
)

// MemStore implements Store with mutex-guarded in-memory maps plus ordered
// slices for stable iteration.
type MemStore struct {
	mu sync.RWMutex

	seekersByID   map[string]int
	providersByID map[string]int
	seekers       []model.Seeker
	providers     []model.Provider

	capacityHint int
}

// NewMemStore creates an in-memory roster store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{capacityHint: defaultCapacityHint}
	for _, opt := range opts {
		opt(s)
	}

	s.seekersByID = make(map[string]int, s.capacityHint)
	s.providersByID = make(map[string]int, s.capacityHint)
	s.seekers = make([]model.Seeker, 0, s.capacityHint)
	s.providers = make([]model.Provider, 0, s.capacityHint)
	return s
}

// AddSeeker records a seeker, rejecting duplicate ids.
func (s *MemStore) AddSeeker(ctx context.Context, seeker model.Seeker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seekersByID[seeker.ID]; ok {
		return ErrDuplicateID
	}
	s.seekersByID[seeker.ID] = len(s.seekers)
	s.seekers = append(s.seekers, seeker)
	metrics.UpdateRosterSeekers(len(s.seekers))
	return nil
}

// AddProvider records a provider, rejecting duplicate ids.
func (s *MemStore) AddProvider(ctx context.Context, provider model.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.providersByID[provider.ID]; ok {
		return ErrDuplicateID
	}
	s.providersByID[provider.ID] = len(s.providers)
	s.providers = append(s.providers, provider)
	metrics.UpdateRosterProviders(len(s.providers))
	return nil
}

// Seeker returns one seeker by id.
func (s *MemStore) Seeker(ctx context.Context, id string) (model.Seeker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.seekersByID[id]
	if !ok {
		return model.Seeker{}, ErrNotFound
	}
	return s.seekers[idx], nil
}

// Provider returns one provider by id.
func (s *MemStore) Provider(ctx context.Context, id string) (model.Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.providersByID[id]
	if !ok {
		return model.Provider{}, ErrNotFound
	}
	return s.providers[idx], nil
}

// Seekers returns a snapshot of all seekers in insertion order.
func (s *MemStore) Seekers(ctx context.Context) []model.Seeker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Seeker, len(s.seekers))
	copy(out, s.seekers)
	return out
}

// Providers returns a snapshot of all providers in insertion order.
func (s *MemStore) Providers(ctx context.Context) []model.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// Counts returns the current roster sizes.
func (s *MemStore) Counts(ctx context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seekers), len(s.providers)
}
