package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Trip types accepted by the search API, matching the upstream form values.
const (
	TripOneWay    TripType = "one_way"
	TripRoundTrip TripType = "round_trip"
)

// IsValid checks if the trip type is a known value.
func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip
}

// SearchCriteria defines the parameters for a fare search request.
type SearchCriteria struct {
	// From is the IATA code of the departure airport (e.g. "ICN").
	From string `json:"from"`

	// To is the IATA code of the arrival airport (e.g. "HAN").
	To string `json:"to"`

	// DepartureDate is the outbound date in YYYY-MM-DD format. A search with
	// no departure date yields an empty result rather than an error.
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format. Required for
	// round trips, ignored for one-way searches.
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the adult passenger count (default: 1).
	Passengers int `json:"passengers"`

	// TripType is one_way or round_trip (default: round_trip).
	TripType TripType `json:"tripType"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
//
// An empty DepartureDate is deliberately not a validation error: the
// orchestrator treats it as a no-op search with an empty result.
func (s *SearchCriteria) Validate() error {
	if s.From == "" {
		return fmt.Errorf("%w: from is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.From) {
		return fmt.Errorf("%w: from must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.From)
	}

	if s.To == "" {
		return fmt.Errorf("%w: to is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.To) {
		return fmt.Errorf("%w: to must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.To)
	}

	if s.From == s.To {
		return fmt.Errorf("%w: from and to must be different", ErrInvalidRequest)
	}

	if s.DepartureDate != "" {
		if !dateRegex.MatchString(s.DepartureDate) {
			return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
		}
		if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
			return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
		}
	}

	if s.ReturnDate != "" {
		if !dateRegex.MatchString(s.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if _, err := time.Parse("2006-01-02", s.ReturnDate); err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, s.ReturnDate)
		}
	}

	if s.TripType == TripRoundTrip && s.DepartureDate != "" && s.ReturnDate == "" {
		return fmt.Errorf("%w: returnDate is required for round trips", ErrInvalidRequest)
	}

	if s.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if s.Passengers > 9 {
		return fmt.Errorf("%w: passengers cannot exceed 9", ErrInvalidRequest)
	}

	if !s.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: one_way, round_trip; got %q", ErrInvalidRequest, s.TripType)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Passengers == 0 {
		s.Passengers = 1
	}
	if s.TripType == "" {
		s.TripType = TripRoundTrip
	}
}

// IsRoundTrip reports whether the search asks for return fares.
func (s *SearchCriteria) IsRoundTrip() bool {
	return s.TripType == TripRoundTrip
}

// SearchRecord is one row of an agent's search history, persisted to the
// store for the agent's recent-search shortcuts.
type SearchRecord struct {
	AgentID       string    `json:"agentId"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	DepartureDate string    `json:"departureDate"`
	ReturnDate    string    `json:"returnDate,omitempty"`
	Passengers    int       `json:"passengers"`
	TripType      TripType  `json:"tripType"`
	SearchedAt    time.Time `json:"searchedAt"`
}
