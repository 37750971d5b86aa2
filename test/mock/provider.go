// Package mock provides test doubles for the fare search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

// Provider is a configurable mock implementation of domain.FareProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Provider struct {
	name      string
	airline   domain.Airline
	flights   []domain.Flight
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name and airline.
// The provider is configured using the builder pattern methods.
func NewProvider(name string, airline domain.Airline) *Provider {
	return &Provider{
		name:    name,
		airline: airline,
	}
}

// WithFlights configures the provider to return the given fares.
func (p *Provider) WithFlights(flights []domain.Flight) *Provider {
	p.flights = flights
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Airline returns the carrier this provider quotes for.
func (p *Provider) Airline() domain.Airline {
	return p.airline
}

// Search implements domain.FareProvider.Search.
// It respects context cancellation, applies the configured delay, and
// returns the configured fares or error.
func (p *Provider) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Flight, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.flights, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure Provider implements domain.FareProvider at compile time.
var _ domain.FareProvider = (*Provider)(nil)

// SampleFares returns a slice of sample fares for the given airline.
// Fares have all required fields populated with realistic values; prices
// ascend by 100,000 VND so sort order is predictable.
func SampleFares(airline domain.Airline, count int) []domain.Flight {
	prefix, numberPrefix, aircraft := "vj", "VJ", "Airbus A320"
	if airline == domain.AirlineVNA {
		prefix, numberPrefix, aircraft = "vna", "VN", "Boeing 787"
	}

	fares := make([]domain.Flight, count)
	for i := 0; i < count; i++ {
		fares[i] = domain.Flight{
			ID:           fmt.Sprintf("%s-%d-%d", prefix, 900+i, i),
			Airline:      airline,
			FlightNumber: fmt.Sprintf("%s%d", numberPrefix, 900+i),
			Aircraft:     aircraft,
			TicketClass:  "Eco",
			BaggageType:  "ADT",
			Departure: domain.FlightPoint{
				Time:    fmt.Sprintf("%02d:30", 6+2*i),
				Airport: "ICN",
				City:    domain.CityName("ICN"),
				Date:    "15/09/2026",
			},
			Arrival: domain.FlightPoint{
				Time:    fmt.Sprintf("%02d:00", 11+2*i),
				Airport: "HAN",
				City:    domain.CityName("HAN"),
				Date:    "15/09/2026",
			},
			Duration:       domain.FormatDuration(270),
			Price:          1_000_000 + int64(i)*100_000,
			Currency:       "VND",
			AvailableSeats: 9,
		}
	}
	return fares
}
