package domain

// SortOption defines the available orderings for fare results.
type SortOption string

// Available sort options.
const (
	// SortByPrice sorts by base price ascending (cheapest first). Default.
	SortByPrice SortOption = "price"

	// SortByDuration sorts by outbound flight time ascending.
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by outbound departure time ascending. Times are
	// zero-padded "HH:MM" so lexicographic order is chronological order.
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByPrice, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByPrice if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByPrice
}

// FilterOptions defines the display filters applied to fare results. A fresh
// set is created with defaults at the start of every search, narrowed by the
// orchestrator against what the providers actually returned, and discarded on
// the next search.
type FilterOptions struct {
	// Airlines keeps only fares from these carriers.
	Airlines []Airline `json:"airlines"`

	// ShowCheapestOnly collapses each airline's results to its single
	// lowest-price fare.
	ShowCheapestOnly bool `json:"showCheapestOnly"`

	// DirectFlightsOnly keeps only fares whose every leg is non-stop.
	DirectFlightsOnly bool `json:"directFlightsOnly"`

	// Show2pc keeps VJ fares unconditionally and VNA fares only when they
	// carry the VFR 2-piece baggage tag.
	Show2pc bool `json:"show2pc"`

	// SortBy is the result ordering.
	SortBy SortOption `json:"sortBy"`
}

// DefaultFilterOptions returns the filter state every search starts from:
// both airlines, cheapest-only, direct-only, and 2pc all enabled, sorted by
// price.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Airlines:          []Airline{AirlineVJ, AirlineVNA},
		ShowCheapestOnly:  true,
		DirectFlightsOnly: true,
		Show2pc:           true,
		SortBy:            SortByPrice,
	}
}

// AllowsAirline reports whether fares from the given carrier pass the
// airline filter.
func (f *FilterOptions) AllowsAirline(a Airline) bool {
	for _, allowed := range f.Airlines {
		if allowed == a {
			return true
		}
	}
	return false
}

// Relax progressively widens the filters for the "show more" control. The
// first call clears ShowCheapestOnly; once that is clear the next call clears
// DirectFlightsOnly. Show2pc is never cleared by this control. Returns true
// if a filter was cleared.
func (f *FilterOptions) Relax() bool {
	if f.ShowCheapestOnly {
		f.ShowCheapestOnly = false
		return true
	}
	if f.DirectFlightsOnly {
		f.DirectFlightsOnly = false
		return true
	}
	return false
}

// CanRelax reports whether Relax would still clear a filter, i.e. whether the
// "show more" control should be offered.
func (f *FilterOptions) CanRelax() bool {
	return f.ShowCheapestOnly || f.DirectFlightsOnly
}
