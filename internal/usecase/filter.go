package usecase

import (
	"sort"
	"strconv"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

// ApplyFilters runs the staged display filters over a fare list and returns
// a new slice; the input is never mutated. The stage order is load-bearing:
// cheapest-only selects from the already airline-, direct-, and
// baggage-filtered set, not from the raw list.
//
// Stages:
//  1. airline whitelist
//  2. direct-only (both legs must be non-stop for round trips)
//  3. 2pc baggage (VJ fares always pass; VNA fares need the VFR tag)
//  4. cheapest-only (at most one fare per airline, first minimum wins)
func ApplyFilters(flights []domain.Flight, opts domain.FilterOptions) []domain.Flight {
	filtered := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if !opts.AllowsAirline(f.Airline) {
			continue
		}
		if opts.DirectFlightsOnly && !f.IsDirect() {
			continue
		}
		if opts.Show2pc && !passes2pc(&f) {
			continue
		}
		filtered = append(filtered, f)
	}

	if opts.ShowCheapestOnly {
		filtered = cheapestPerAirline(filtered)
	}

	return filtered
}

// passes2pc implements the 2-piece baggage gate. VJ fares pass regardless of
// baggage type; only VNA fares are baggage-gated, on the VFR tag.
func passes2pc(f *domain.Flight) bool {
	if f.Airline == domain.AirlineVJ {
		return true
	}
	return f.Airline == domain.AirlineVNA && f.BaggageType == domain.BaggageVFR
}

// cheapestPerAirline collapses the list to at most one VJ fare and one VNA
// fare, each the minimum price for its carrier. Ties resolve to the first
// minimum encountered, left to right. The VJ pick precedes the VNA pick.
func cheapestPerAirline(flights []domain.Flight) []domain.Flight {
	var cheapestVJ, cheapestVNA *domain.Flight
	for i := range flights {
		f := &flights[i]
		switch f.Airline {
		case domain.AirlineVJ:
			if cheapestVJ == nil || f.Price < cheapestVJ.Price {
				cheapestVJ = f
			}
		case domain.AirlineVNA:
			if cheapestVNA == nil || f.Price < cheapestVNA.Price {
				cheapestVNA = f
			}
		}
	}

	result := make([]domain.Flight, 0, 2)
	if cheapestVJ != nil {
		result = append(result, *cheapestVJ)
	}
	if cheapestVNA != nil {
		result = append(result, *cheapestVNA)
	}
	return result
}

// SortFlights orders fares by the given option, stably, returning a new
// slice. Price and duration sort ascending; departure sorts lexicographically
// on the zero-padded "HH:MM" time, which is chronological order.
func SortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	if len(result) <= 1 {
		return result
	}

	switch sortBy {
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return durationHours(result[i].Duration) < durationHours(result[j].Duration)
		})
	case domain.SortByDeparture:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Departure.Time < result[j].Departure.Time
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	}

	return result
}

// durationHours parses the leading integer of a formatted "Xh Ym" duration.
// Malformed strings compare as zero.
func durationHours(formatted string) int {
	end := 0
	for end < len(formatted) && formatted[end] >= '0' && formatted[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	hours, err := strconv.Atoi(formatted[:end])
	if err != nil {
		return 0
	}
	return hours
}

// PartitionByAirline splits a sorted fare list into the VJ and VNA sublists
// for side-by-side display. The relative order within each partition is
// preserved; nothing is re-sorted.
func PartitionByAirline(flights []domain.Flight) (vj, vna []domain.Flight) {
	vj = make([]domain.Flight, 0, len(flights))
	vna = make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		switch f.Airline {
		case domain.AirlineVJ:
			vj = append(vj, f)
		case domain.AirlineVNA:
			vna = append(vna, f)
		}
	}
	return vj, vna
}

// HasDirectFlights reports whether any fare in the list is fully direct.
func HasDirectFlights(flights []domain.Flight) bool {
	for i := range flights {
		if flights[i].IsDirect() {
			return true
		}
	}
	return false
}

// HasVfr2pc reports whether any VNA fare in the list carries the VFR
// 2-piece baggage tag.
func HasVfr2pc(flights []domain.Flight) bool {
	for i := range flights {
		if flights[i].Airline == domain.AirlineVNA && flights[i].BaggageType == domain.BaggageVFR {
			return true
		}
	}
	return false
}

// NarrowFilters disables filter defaults whose feature is entirely absent
// from the result union: direct-only when no fare is direct, 2pc when no VNA
// fare carries VFR. Filters the agent already cleared stay cleared.
func NarrowFilters(opts *domain.FilterOptions, flights []domain.Flight) {
	if opts.DirectFlightsOnly && !HasDirectFlights(flights) {
		opts.DirectFlightsOnly = false
	}
	if opts.Show2pc && !HasVfr2pc(flights) {
		opts.Show2pc = false
	}
}
