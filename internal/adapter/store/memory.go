package store

import (
	"context"
	"sync"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

// MemoryStore is an in-memory domain.ProfileStore for tests and local runs
// without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.AgentProfile
	history  map[string][]domain.SearchRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]domain.AgentProfile),
		history:  make(map[string][]domain.SearchRecord),
	}
}

// GetProfile implements domain.ProfileStore.
func (s *MemoryStore) GetProfile(_ context.Context, agentID string) (*domain.AgentProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[agentID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &profile, nil
}

// SaveProfile stores the full profile.
func (s *MemoryStore) SaveProfile(_ context.Context, profile *domain.AgentProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = *profile
	return nil
}

// SaveBanner implements domain.ProfileStore.
func (s *MemoryStore) SaveBanner(_ context.Context, agentID, banner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[agentID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	profile.Banner = banner
	s.profiles[agentID] = profile
	return nil
}

// RecordSearch implements domain.ProfileStore, newest first.
func (s *MemoryStore) RecordSearch(_ context.Context, rec domain.SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append([]domain.SearchRecord{rec}, s.history[rec.AgentID]...)
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}
	s.history[rec.AgentID] = history
	return nil
}

// RecentSearches implements domain.ProfileStore.
func (s *MemoryStore) RecentSearches(_ context.Context, agentID string, limit int) ([]domain.SearchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.history[agentID]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}
	return append([]domain.SearchRecord(nil), history[:limit]...), nil
}

// Ensure MemoryStore implements ProfileStore at compile time.
var _ domain.ProfileStore = (*MemoryStore)(nil)
