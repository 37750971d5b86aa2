package usecase

import (
	"fmt"
	"testing"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

// benchFares builds a realistic mixed batch: both carriers, alternating
// direct and one-stop fares, a spread of prices, VFR tags on half the VNA
// fares.
func benchFares(n int) []domain.Flight {
	fares := make([]domain.Flight, n)
	for i := 0; i < n; i++ {
		airline := domain.AirlineVJ
		baggage := ""
		if i%2 == 1 {
			airline = domain.AirlineVNA
			baggage = "ADT"
			if i%4 == 1 {
				baggage = domain.BaggageVFR
			}
		}
		f := domain.Flight{
			ID:          fmt.Sprintf("bench-%d", i),
			Airline:     airline,
			Price:       1_000_000 + int64(i%37)*50_000,
			Currency:    "VND",
			BaggageType: baggage,
			Duration:    domain.FormatDuration(200 + i%120),
		}
		f.Departure.Time = fmt.Sprintf("%02d:%02d", 5+i%18, (i*7)%60)
		f.Departure.Stops = i % 3 % 2
		fares[i] = f
	}
	return fares
}

func BenchmarkApplyFilters(b *testing.B) {
	flights := benchFares(200)

	b.Run("defaults", func(b *testing.B) {
		opts := domain.DefaultFilterOptions()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, opts)
		}
	})

	b.Run("wide_open", func(b *testing.B) {
		opts := domain.FilterOptions{
			Airlines: []domain.Airline{domain.AirlineVJ, domain.AirlineVNA},
			SortBy:   domain.SortByPrice,
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, opts)
		}
	})

	b.Run("cheapest_only", func(b *testing.B) {
		opts := domain.FilterOptions{
			Airlines:         []domain.Airline{domain.AirlineVJ, domain.AirlineVNA},
			ShowCheapestOnly: true,
			SortBy:           domain.SortByPrice,
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(flights, opts)
		}
	})
}

func BenchmarkSortFlights(b *testing.B) {
	flights := benchFares(200)

	for _, sortBy := range []domain.SortOption{domain.SortByPrice, domain.SortByDuration, domain.SortByDeparture} {
		b.Run(string(sortBy), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				SortFlights(flights, sortBy)
			}
		})
	}
}
