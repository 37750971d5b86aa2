// Package domain contains the core business entities and rules for the fare
// search system. These entities are provider-agnostic and form the foundation
// upon which all other components are built.
package domain

import "fmt"

// Airline identifies one of the two supported carriers.
type Airline string

// Supported airlines.
const (
	// AirlineVJ is VietJet Air.
	AirlineVJ Airline = "VJ"

	// AirlineVNA is Vietnam Airlines.
	AirlineVNA Airline = "VNA"
)

// IsValid checks if the airline is one of the supported carriers.
func (a Airline) IsValid() bool {
	return a == AirlineVJ || a == AirlineVNA
}

// DisplayName returns the airline's full name for presentation.
func (a Airline) DisplayName() string {
	switch a {
	case AirlineVJ:
		return "VietJet"
	case AirlineVNA:
		return "Vietnam Airlines"
	default:
		return string(a)
	}
}

// BaggageVFR is the VNA fare tag that carries the 2-piece (46kg) allowance.
// Fares tagged ADT carry the standard 23kg allowance.
const BaggageVFR = "VFR"

// Flight is the unified, provider-agnostic fare record. Both upstream schemas
// are normalized into this shape before any pricing or filtering happens.
type Flight struct {
	// ID is unique within one search result set only: it is derived from the
	// provider flight id, the airline prefix, and the element index, and the
	// whole list is replaced on every search.
	ID string `json:"id"`

	// Airline is the operating carrier (VJ or VNA).
	Airline Airline `json:"airline"`

	// FlightNumber is the display flight number (e.g. "VJ962", "VN417").
	FlightNumber string `json:"flightNumber"`

	// Aircraft is the display aircraft type.
	Aircraft string `json:"aircraft"`

	// TicketClass is the provider's fare class string for the outbound leg.
	TicketClass string `json:"ticketClass"`

	// BaggageType is the provider's baggage/fare tag ("VFR", "ADT", ...).
	BaggageType string `json:"baggageType"`

	// Departure describes the outbound leg's departure point.
	Departure FlightPoint `json:"departure"`

	// Arrival describes the outbound leg's arrival point.
	Arrival FlightPoint `json:"arrival"`

	// Return is present iff the search was round-trip and the provider
	// returned a return leg. One-way results never populate it.
	Return *ReturnLeg `json:"return,omitempty"`

	// StopInfo describes the outbound leg's first stop. Present only when
	// Departure.Stops > 0 and the provider supplied stop detail.
	StopInfo *StopInfo `json:"stopInfo,omitempty"`

	// Duration is the formatted outbound flight time, "Xh Ym".
	Duration string `json:"duration"`

	// Price is the base fare in VND, before any agent markup.
	Price int64 `json:"price"`

	// Currency is the fare currency code.
	Currency string `json:"currency"`

	// AvailableSeats is the provider-reported remaining seat count.
	AvailableSeats int `json:"availableSeats"`

	// BookingKey is the provider booking reference. VietJet only.
	BookingKey string `json:"bookingKey,omitempty"`
}

// FlightPoint is one end of a flight leg.
type FlightPoint struct {
	// Time is the zero-padded local time, "HH:MM".
	Time string `json:"time"`

	// Airport is the IATA airport code.
	Airport string `json:"airport"`

	// City is the display city name resolved from the airport reference.
	City string `json:"city"`

	// Date is the local date, "DD/MM/YYYY".
	Date string `json:"date"`

	// Stops is the stop count for the leg. Populated on departure points only.
	Stops int `json:"stops"`
}

// ReturnLeg describes the inbound half of a round-trip fare.
type ReturnLeg struct {
	Departure   FlightPoint `json:"departure"`
	Arrival     FlightPoint `json:"arrival"`
	TicketClass string      `json:"ticketClass"`
	Stops       int         `json:"stops"`
	StopInfo    *StopInfo   `json:"stopInfo,omitempty"`
}

// StopInfo carries the first-stop detail for a leg with stops.
type StopInfo struct {
	// Stop1 is the IATA code of the first stop airport.
	Stop1 string `json:"stop1"`

	// WaitTime is the layover duration in minutes, as the provider sent it.
	WaitTime string `json:"waitTime"`
}

// IsRoundTrip reports whether this fare includes a return leg.
func (f *Flight) IsRoundTrip() bool {
	return f.Return != nil
}

// IsDirect reports whether every leg of this fare is non-stop. For round
// trips both the outbound and the return leg must be direct.
func (f *Flight) IsDirect() bool {
	if f.Departure.Stops != 0 {
		return false
	}
	if f.Return != nil && f.Return.Stops != 0 {
		return false
	}
	return true
}

// FormatDuration renders a flight time in minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
