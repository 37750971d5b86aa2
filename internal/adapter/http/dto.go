package http

import (
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

// SearchFaresRequest is the request body for POST /api/v1/fares/search.
type SearchFaresRequest struct {
	// From is the IATA code of the departure airport (e.g. "ICN").
	From string `json:"from"`

	// To is the IATA code of the arrival airport (e.g. "HAN").
	To string `json:"to"`

	// DepartureDate is the outbound date in YYYY-MM-DD format.
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format. Required for
	// round trips.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the adult passenger count, 1-9 (default 1).
	Passengers int `json:"passengers"`

	// TripType is one_way or round_trip (default round_trip).
	TripType string `json:"tripType,omitempty"`

	// AgentID selects the agent whose markups price the results. Optional;
	// without it base fares are returned.
	AgentID string `json:"agentId,omitempty"`

	// Filters overrides the default filter state.
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy orders results: price, duration, or departure (default price).
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO is the optional filter override block. Absent fields keep their
// defaults.
type FilterDTO struct {
	// Airlines keeps only these carriers ("VJ", "VNA").
	Airlines []string `json:"airlines,omitempty"`

	// CheapestOnly collapses each airline to its single lowest fare.
	CheapestOnly *bool `json:"cheapestOnly,omitempty"`

	// DirectOnly keeps only fully non-stop fares.
	DirectOnly *bool `json:"directOnly,omitempty"`

	// TwoPieceBaggage keeps VJ fares and VFR-tagged VNA fares.
	TwoPieceBaggage *bool `json:"twoPieceBaggage,omitempty"`
}

// TicketEmailDTO is the request body for POST /api/v1/tickets/email.
type TicketEmailDTO struct {
	AgentID      string `json:"agentId,omitempty"`
	Email        string `json:"email"`
	CustomerName string `json:"customerName"`
	Salutation   string `json:"salutation"`
	Phone        string `json:"phone,omitempty"`
	SendCombined bool   `json:"sendCombined"`

	// PNRs is the raw input: 6-character booking references separated by
	// whitespace, "-", or ";".
	PNRs string `json:"pnrs"`

	Banner string `json:"banner,omitempty"`
}

// ToForm converts the DTO to the use case form.
func (d *TicketEmailDTO) ToForm() usecase.TicketEmailForm {
	return usecase.TicketEmailForm{
		AgentID:      d.AgentID,
		Email:        d.Email,
		CustomerName: d.CustomerName,
		Salutation:   d.Salutation,
		Phone:        d.Phone,
		SendCombined: d.SendCombined,
		PNRs:         d.PNRs,
		Banner:       d.Banner,
	}
}

// FareDTO is one fare in a search response: the normalized flight plus the
// agent-priced display fields computed at render time.
type FareDTO struct {
	domain.Flight

	// AirlineName is the carrier's display name.
	AirlineName string `json:"airlineName"`

	// DisplayPrice is the fare after the agent's markups, rounded to the
	// nearest hundred VND. Equals the base price when no agent is set.
	DisplayPrice int64 `json:"displayPrice"`

	// DisplayPriceFormatted is DisplayPrice with thousands separators and
	// the currency code.
	DisplayPriceFormatted string `json:"displayPriceFormatted"`

	// Direct reports whether every leg is non-stop.
	Direct bool `json:"direct"`

	// FlightInfo is the one-line outbound summary for ticket emails and
	// compact listings, e.g. "ICN-HAN 10:30 ngày 15/09 (SGN : chờ 80 p)".
	FlightInfo string `json:"flightInfo"`

	// ReturnInfo is the same summary for the return leg. Empty for one-way
	// fares.
	ReturnInfo string `json:"returnInfo,omitempty"`
}

// SearchResponseDTO is the response body for POST /api/v1/fares/search.
type SearchResponseDTO struct {
	Criteria domain.SearchCriteria `json:"criteria"`
	Metadata domain.SearchMetadata `json:"metadata"`

	// Flights is the filtered, sorted result list; VJ and VNA are the same
	// list partitioned by carrier for side-by-side display.
	Flights []FareDTO `json:"flights"`
	VJ      []FareDTO `json:"vj"`
	VNA     []FareDTO `json:"vna"`

	HasDirectFlights bool `json:"hasDirectFlights"`
	HasVfr2pc        bool `json:"hasVfr2pc"`

	// Filters is the narrowed filter state; CanRelax reports whether a
	// "show more" widening is still available.
	Filters  domain.FilterOptions `json:"filters"`
	CanRelax bool                 `json:"canRelax"`
}

// TicketImagesDTO is the response body for GET /api/v1/tickets/images/:pnr.
type TicketImagesDTO struct {
	PNR    string   `json:"pnr"`
	Images []string `json:"images"`
}

// RecentSearchesDTO is the response body for GET /api/v1/agents/:id/searches.
type RecentSearchesDTO struct {
	AgentID  string                `json:"agentId"`
	Searches []domain.SearchRecord `json:"searches"`
}
