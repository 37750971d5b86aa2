package http

import (
	"fmt"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/timeutil"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
	"github.com/hanvietair/flight-fare-service/pkg/currency"
)

// ToSearchResponseDTO converts a domain search response to the API shape,
// computing each fare's display price from the agent's profile. A nil
// profile yields base prices.
func ToSearchResponseDTO(resp *domain.SearchResponse, profile *domain.AgentProfile) *SearchResponseDTO {
	if resp == nil {
		return nil
	}

	return &SearchResponseDTO{
		Criteria:         resp.Criteria,
		Metadata:         resp.Metadata,
		Flights:          toFareDTOs(resp.Flights, profile),
		VJ:               toFareDTOs(resp.VJ, profile),
		VNA:              toFareDTOs(resp.VNA, profile),
		HasDirectFlights: resp.HasDirectFlights,
		HasVfr2pc:        resp.HasVfr2pc,
		Filters:          resp.Filters,
		CanRelax:         resp.Filters.CanRelax(),
	}
}

func toFareDTOs(flights []domain.Flight, profile *domain.AgentProfile) []FareDTO {
	dtos := make([]FareDTO, len(flights))
	for i := range flights {
		dtos[i] = toFareDTO(&flights[i], profile)
	}
	return dtos
}

func toFareDTO(flight *domain.Flight, profile *domain.AgentProfile) FareDTO {
	display := usecase.AdjustPrice(flight, profile)
	dto := FareDTO{
		Flight:                *flight,
		AirlineName:           flight.Airline.DisplayName(),
		DisplayPrice:          display,
		DisplayPriceFormatted: currency.FormatWithUnit(display, flight.Currency),
		Direct:                flight.IsDirect(),
		FlightInfo:            legSummary(flight.Departure, flight.Arrival, flight.StopInfo),
	}
	if flight.Return != nil {
		dto.ReturnInfo = legSummary(flight.Return.Departure, flight.Return.Arrival, flight.Return.StopInfo)
	}
	return dto
}

// legSummary renders one leg as "ICN-HAN 10:30 ngày 15/09", with the first
// stop appended as " (SGN : chờ 80 p)" for non-direct legs.
func legSummary(dep, arr domain.FlightPoint, stop *domain.StopInfo) string {
	s := fmt.Sprintf("%s-%s %s ngày %s",
		dep.Airport, arr.Airport, dep.Time, timeutil.ShortDisplayDate(dep.Date))
	if dep.Stops > 0 && stop != nil {
		s += fmt.Sprintf(" (%s : chờ %s p)", stop.Stop1, stop.WaitTime)
	}
	return s
}
