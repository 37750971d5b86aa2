// Package http provides the HTTP handler layer for the fare service API:
// request parsing, validation, response shaping, and error mapping.
package http

import (
	"regexp"
	"time"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/timeutil"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

// Validation patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid trip types. Empty defaults to round_trip.
var validTripTypes = map[string]bool{
	"":           true,
	"one_way":    true,
	"round_trip": true,
}

// Valid sort options. Empty defaults to price.
var validSortOptions = map[string]bool{
	"":          true,
	"price":     true,
	"duration":  true,
	"departure": true,
}

// ValidationError is a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects all validation errors for one request.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add appends a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any error was added.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the errors to a field-to-message map for the response body.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, exists := m[e.Field]; !exists {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Validate checks the search request and collects every violation.
func (r *SearchFaresRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.From == "" {
		errs.Add("from", "from is required")
	} else if !airportCodePattern.MatchString(r.From) {
		errs.Add("from", "from must be a 3-letter IATA code")
	} else if !domain.KnownAirport(r.From) {
		errs.Add("from", "from is not a served airport")
	}

	if r.To == "" {
		errs.Add("to", "to is required")
	} else if !airportCodePattern.MatchString(r.To) {
		errs.Add("to", "to must be a 3-letter IATA code")
	} else if !domain.KnownAirport(r.To) {
		errs.Add("to", "to is not a served airport")
	}

	if r.From != "" && r.From == r.To {
		errs.Add("to", "to must differ from from")
	}

	if err := validateDate(r.DepartureDate); err != "" {
		errs.Add("departureDate", "departureDate "+err)
	}
	if err := validateDate(r.ReturnDate); err != "" {
		errs.Add("returnDate", "returnDate "+err)
	}

	if r.Passengers < 0 || r.Passengers > 9 {
		errs.Add("passengers", "passengers must be between 1 and 9")
	}

	if !validTripTypes[r.TripType] {
		errs.Add("tripType", "tripType must be one_way or round_trip")
	}

	if !validSortOptions[r.SortBy] {
		errs.Add("sortBy", "sortBy must be one of: price, duration, departure")
	}

	if r.Filters != nil {
		for _, a := range r.Filters.Airlines {
			if !domain.Airline(a).IsValid() {
				errs.Add("filters.airlines", "airlines must contain only VJ or VNA")
				break
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateDate checks an optional date field. The pattern check gives the
// shape error its own message; the parse catches well-formed impossible
// dates like 2026-02-30.
func validateDate(date string) string {
	if date == "" {
		return ""
	}
	if !datePattern.MatchString(date) {
		return "must be in YYYY-MM-DD format"
	}
	if _, err := time.Parse(timeutil.APIDateLayout, date); err != nil {
		return "must be a valid calendar date"
	}
	return ""
}

// ToDomainCriteria converts the request to domain search criteria. Defaults
// are applied by the use case.
func ToDomainCriteria(r *SearchFaresRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		From:          r.From,
		To:            r.To,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    r.Passengers,
		TripType:      domain.TripType(r.TripType),
	}
}

// ToSearchOptions converts the request's filter block to search options,
// starting from the defaults and overriding only what the client sent.
func ToSearchOptions(r *SearchFaresRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()
	opts.AgentID = r.AgentID

	filters := domain.DefaultFilterOptions()
	filters.SortBy = domain.ParseSortOption(r.SortBy)

	if r.Filters != nil {
		if len(r.Filters.Airlines) > 0 {
			airlines := make([]domain.Airline, 0, len(r.Filters.Airlines))
			for _, a := range r.Filters.Airlines {
				airlines = append(airlines, domain.Airline(a))
			}
			filters.Airlines = airlines
		}
		if r.Filters.CheapestOnly != nil {
			filters.ShowCheapestOnly = *r.Filters.CheapestOnly
		}
		if r.Filters.DirectOnly != nil {
			filters.DirectFlightsOnly = *r.Filters.DirectOnly
		}
		if r.Filters.TwoPieceBaggage != nil {
			filters.Show2pc = *r.Filters.TwoPieceBaggage
		}
	}

	opts.Filters = &filters
	return opts
}
