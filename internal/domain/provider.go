package domain

import (
	"context"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FareProvider is the contract every airline quote adapter implements.
// Each adapter owns one upstream schema and converges on the unified Flight
// shape.
type FareProvider interface {
	// Name returns the provider's unique identifier (e.g. "vietjet").
	Name() string

	// Airline returns the carrier this provider quotes for.
	Airline() Airline

	// Search queries the upstream quote API and returns normalized fares.
	// A nil error with an empty slice means the provider answered with no
	// matching flights, which is distinct from a failure.
	Search(ctx context.Context, criteria SearchCriteria) ([]Flight, error)
}

// ProviderRegistry holds the registered fare providers. Registration happens
// once at startup; lookups are concurrency-safe.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers []FareProvider
	byName    map[string]FareProvider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		byName: make(map[string]FareProvider),
	}
}

// Register adds a provider to the registry. A provider with a duplicate name
// replaces the earlier registration.
func (r *ProviderRegistry) Register(p FareProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.byName[name]; exists {
		for i, existing := range r.providers {
			if existing.Name() == name {
				r.providers[i] = p
				break
			}
		}
	} else {
		r.providers = append(r.providers, p)
	}
	r.byName[name] = p
}

// All returns the registered providers in registration order.
func (r *ProviderRegistry) All() []FareProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]FareProvider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Get returns the provider with the given name.
func (r *ProviderRegistry) Get(name string) (FareProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byName[name]
	return p, ok
}

// Count returns the number of registered providers.
func (r *ProviderRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
