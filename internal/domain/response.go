package domain

// SearchResponse is the aggregated outcome of one fare search after
// normalization, filtering, and sorting.
type SearchResponse struct {
	// Criteria echoes the executed search parameters.
	Criteria SearchCriteria `json:"criteria"`

	// Metadata describes the search execution.
	Metadata SearchMetadata `json:"metadata"`

	// Flights is the filtered, sorted result list.
	Flights []Flight `json:"flights"`

	// VJ and VNA are the same list partitioned by carrier for side-by-side
	// display. Partitioning preserves the sorted order.
	VJ  []Flight `json:"vj"`
	VNA []Flight `json:"vna"`

	// HasDirectFlights reports whether any fare in the unfiltered union is
	// fully direct. Drives the direct-only filter default.
	HasDirectFlights bool `json:"hasDirectFlights"`

	// HasVfr2pc reports whether any VNA fare in the unfiltered union carries
	// the VFR 2-piece tag. Drives the 2pc filter default.
	HasVfr2pc bool `json:"hasVfr2pc"`

	// Filters is the filter state after narrowing against the results,
	// for the client to render and mutate.
	Filters FilterOptions `json:"filters"`
}

// SearchMetadata contains information about the search execution.
type SearchMetadata struct {
	// TotalResults is the number of fares after filtering.
	TotalResults int `json:"total_results"`

	// TotalFetched is the number of fares normalized across all providers
	// before filtering.
	TotalFetched int `json:"total_fetched"`

	// ProvidersQueried lists every provider the search dispatched to.
	ProvidersQueried []string `json:"providers_queried"`

	// ProvidersFailed lists providers whose call failed. A failed provider
	// never fails the search; its fares are simply absent.
	ProvidersFailed []string `json:"providers_failed,omitempty"`

	// SearchTimeMs is the wall-clock search duration in milliseconds.
	SearchTimeMs int64 `json:"search_time_ms"`
}

// ProviderResult is the settled outcome of one provider's call within a
// search, used for gathering and for incremental delivery.
type ProviderResult struct {
	// Provider is the provider's name.
	Provider string

	// Airline is the carrier the provider quotes for.
	Airline Airline

	// Flights are the normalized fares. Nil on failure.
	Flights []Flight

	// Err is set if the provider call failed.
	Err error

	// DurationMs is how long the provider call took.
	DurationMs int64
}

// IsSuccess reports whether the provider call succeeded.
func (pr *ProviderResult) IsSuccess() bool {
	return pr.Err == nil
}
