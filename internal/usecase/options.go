// Package usecase contains the business logic for the fare search pipeline.
// The orchestrator queries both airline providers with the scatter-gather
// pattern and drives the filter, sort, and pricing stages.
package usecase

import "github.com/hanvietair/flight-fare-service/internal/domain"

// SearchOptions carries the optional parameters of a fare search.
type SearchOptions struct {
	// Filters is the filter state to apply. Nil starts from the defaults,
	// the way every fresh search does.
	Filters *domain.FilterOptions

	// AgentID attributes the search to an agent for history recording.
	// Empty skips recording.
	AgentID string

	// OnPartial, when set, is invoked once per provider as its call settles,
	// in settlement order. It runs on the orchestrator's gather goroutine and
	// is never invoked for a search that has been superseded by a newer one.
	OnPartial func(domain.ProviderResult)
}

// DefaultSearchOptions returns SearchOptions with the standard defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}
