package usecase

import "github.com/hanvietair/flight-fare-service/internal/domain"

// AdjustPrice computes the displayed price for one fare under an agent's
// markups. It is a pure function: callers invoke it at render time instead of
// caching the result, so a profile change can never leave a stale price.
//
// The adjustment is, in order: the per-airline surcharge, then exactly one of
// the per-trip-type fees, then rounding to the nearest 100 VND. The profile's
// account-level PriceMarkup is intentionally not part of this calculation; it
// is an informational figure surfaced on the profile endpoint.
//
// A nil profile yields the base fare rounded to the nearest 100.
func AdjustPrice(flight *domain.Flight, profile *domain.AgentProfile) int64 {
	adjusted := flight.Price

	if profile != nil {
		switch flight.Airline {
		case domain.AirlineVJ:
			adjusted += profile.PriceVJ
		case domain.AirlineVNA:
			adjusted += profile.PriceVNA
		}

		if flight.IsRoundTrip() {
			adjusted += profile.PriceRT
		} else {
			adjusted += profile.PriceOW
		}
	}

	return roundToHundred(adjusted)
}

// roundToHundred rounds to the nearest multiple of 100, halves up.
func roundToHundred(v int64) int64 {
	if v < 0 {
		return -roundToHundred(-v)
	}
	return (v + 50) / 100 * 100
}
