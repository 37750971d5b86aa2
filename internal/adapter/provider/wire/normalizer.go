package wire

import (
	"fmt"
	"strconv"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
)

// Normalizer converts upstream fares to domain flights for one airline. The
// two quote APIs share a schema, so only the identity fields differ.
type Normalizer struct {
	Airline domain.Airline

	// IDPrefix namespaces flight IDs per provider ("vj", "vna").
	IDPrefix string

	// NumberPrefix turns the upstream numeric flight id into a flight
	// number ("VJ", "VN").
	NumberPrefix string

	// Aircraft is the fleet constant reported for this airline; the quote
	// API does not carry equipment data.
	Aircraft string

	Log *logger.Logger
}

// Normalize converts a fare batch to domain flights. A fare whose required
// numeric fields do not parse is skipped and logged; the batch continues.
func (n Normalizer) Normalize(fares []Fare) []domain.Flight {
	log := n.Log
	if log == nil {
		log = logger.Nop()
	}

	flights := make([]domain.Flight, 0, len(fares))
	for i, fare := range fares {
		flight, err := n.normalizeFare(fare, i)
		if err != nil {
			log.Warn().
				Err(err).
				Str("airline", string(n.Airline)).
				Str("upstream_id", fare.Outbound.ID).
				Int("index", i).
				Msg("Skipping malformed fare record")
			continue
		}
		flights = append(flights, flight)
	}
	return flights
}

// normalizeFare converts a single fare. The index disambiguates IDs when the
// upstream returns the same flight id with multiple fare bases.
func (n Normalizer) normalizeFare(f Fare, index int) (domain.Flight, error) {
	stops, err := strconv.Atoi(f.Outbound.Stops)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("outbound stops %q: %w", f.Outbound.Stops, err)
	}

	durationMin, err := strconv.Atoi(f.Outbound.DurationMin)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("outbound duration %q: %w", f.Outbound.DurationMin, err)
	}

	price, err := strconv.ParseInt(f.Info.Price, 10, 64)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("price %q: %w", f.Info.Price, err)
	}

	seats, err := strconv.Atoi(f.Info.SeatsLeft)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("available seats %q: %w", f.Info.SeatsLeft, err)
	}

	flight := domain.Flight{
		ID:           fmt.Sprintf("%s-%s-%d", n.IDPrefix, f.Outbound.ID, index),
		Airline:      n.Airline,
		FlightNumber: n.NumberPrefix + f.Outbound.ID,
		Aircraft:     n.Aircraft,
		TicketClass:  f.Outbound.TicketClass,
		BaggageType:  f.Info.Baggage,
		Departure: domain.FlightPoint{
			Time:    f.Outbound.DepartTime,
			Airport: f.Outbound.From,
			City:    domain.CityName(f.Outbound.From),
			Date:    f.Outbound.DepartDate,
			Stops:   stops,
		},
		Arrival: domain.FlightPoint{
			Time:    f.Outbound.ArriveTime,
			Airport: f.Outbound.To,
			City:    domain.CityName(f.Outbound.To),
			Date:    f.Outbound.ArriveDate,
		},
		StopInfo:       stopInfo(f.Outbound),
		Duration:       domain.FormatDuration(durationMin),
		Price:          price,
		Currency:       "VND",
		AvailableSeats: seats,
		BookingKey:     f.Outbound.BookingKey,
	}

	if f.Inbound != nil {
		returnLeg, err := n.normalizeReturn(*f.Inbound)
		if err != nil {
			return domain.Flight{}, err
		}
		flight.Return = returnLeg
	}

	return flight, nil
}

func (n Normalizer) normalizeReturn(leg Leg) (*domain.ReturnLeg, error) {
	stops, err := strconv.Atoi(leg.Stops)
	if err != nil {
		return nil, fmt.Errorf("return stops %q: %w", leg.Stops, err)
	}

	return &domain.ReturnLeg{
		Departure: domain.FlightPoint{
			Time:    leg.DepartTime,
			Airport: leg.From,
			City:    domain.CityName(leg.From),
			Date:    leg.DepartDate,
			Stops:   stops,
		},
		Arrival: domain.FlightPoint{
			Time:    leg.ArriveTime,
			Airport: leg.To,
			City:    domain.CityName(leg.To),
			Date:    leg.ArriveDate,
		},
		TicketClass: leg.TicketClass,
		Stops:       stops,
		StopInfo:    stopInfo(leg),
	}, nil
}

// stopInfo builds the layover detail, present only when the leg names a
// first stop.
func stopInfo(leg Leg) *domain.StopInfo {
	if leg.Stop1 == "" {
		return nil
	}
	return &domain.StopInfo{
		Stop1:    leg.Stop1,
		WaitTime: leg.WaitTime,
	}
}
