// Package vietnamair implements the Vietnam Airlines quote-API adapter.
package vietnamair

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hanvietair/flight-fare-service/internal/adapter/provider/wire"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/ratelimit"
)

// ProviderName is the unique identifier for the Vietnam Airlines provider.
const ProviderName = "vietnamair"

// aircraft is the fleet constant reported for these long-haul routes.
const aircraft = "Boeing 787"

// Time-slide bounds the upstream expects on every request, expressed as
// HHMM without a leading zero. They span the whole day.
const (
	timeSlideMin = "5"
	timeSlideMax = "2355"
)

// searchRequest is the upstream quote form. Vietnam Airlines takes the same
// core fields as VietJet plus pagination, fare-basis, and time-window
// parameters that are sent with fixed values.
type searchRequest struct {
	Dep0               string `json:"dep0"`
	Arr0               string `json:"arr0"`
	DepDate0           string `json:"depdate0"`
	DepDate1           string `json:"depdate1"`
	ActivedVia         string `json:"activedVia"`
	ActivedIDT         string `json:"activedIDT"`
	Adults             string `json:"adt"`
	Children           string `json:"chd"`
	Infants            string `json:"inf"`
	Page               string `json:"page"`
	SoChieu            string `json:"sochieu"`
	FilterTimeSlideMin string `json:"filterTimeSlideMin0"`
	FilterTimeSlideMax string `json:"filterTimeSlideMax0"`
	ReturnTimeMin      string `json:"filterTimeSlideMin1"`
	ReturnTimeMax      string `json:"filterTimeSlideMax1"`
	SessionKey         string `json:"session_key"`
}

// Adapter implements domain.FareProvider for Vietnam Airlines.
type Adapter struct {
	client     *wire.Client
	normalizer wire.Normalizer
}

// Config holds the adapter's dependencies. HTTPClient, Limiter, and Log may
// be nil.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *ratelimit.ProviderLimiter
	Log        *logger.Logger
}

// NewAdapter creates a Vietnam Airlines adapter.
func NewAdapter(cfg Config) *Adapter {
	return &Adapter{
		client: wire.NewClient(ProviderName, cfg.BaseURL, cfg.HTTPClient, cfg.Limiter),
		normalizer: wire.Normalizer{
			Airline:      domain.AirlineVNA,
			IDPrefix:     "vna",
			NumberPrefix: "VN",
			Aircraft:     aircraft,
			Log:          cfg.Log,
		},
	}
}

// Name implements domain.FareProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// Airline implements domain.FareProvider.
func (a *Adapter) Airline() domain.Airline {
	return domain.AirlineVNA
}

// Search implements domain.FareProvider. A non-OK envelope means no
// availability, which is an empty result rather than an error.
func (a *Adapter) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Flight, error) {
	if criteria.DepartureDate == "" {
		return nil, nil
	}

	envelope, err := a.client.Fetch(ctx, buildRequest(criteria))
	if err != nil {
		return nil, err
	}
	if !envelope.OK() {
		return []domain.Flight{}, nil
	}

	return a.normalizer.Normalize(envelope.Body), nil
}

func buildRequest(criteria domain.SearchCriteria) searchRequest {
	soChieu := "OW"
	if criteria.IsRoundTrip() {
		soChieu = "RT"
	}
	return searchRequest{
		Dep0:     criteria.From,
		Arr0:     criteria.To,
		DepDate0: criteria.DepartureDate,
		DepDate1: criteria.ReturnDate,
		// "ADT,VFR" asks for both the standard adult fare and the VFR
		// fare basis that carries the 2pc baggage allowance.
		ActivedVia:         "0",
		ActivedIDT:         "ADT," + domain.BaggageVFR,
		Adults:             strconv.Itoa(criteria.Passengers),
		Children:           "0",
		Infants:            "0",
		Page:               "1",
		SoChieu:            soChieu,
		FilterTimeSlideMin: timeSlideMin,
		FilterTimeSlideMax: timeSlideMax,
		ReturnTimeMin:      timeSlideMin,
		ReturnTimeMax:      timeSlideMax,
		SessionKey:         "",
	}
}

// Ensure Adapter implements FareProvider at compile time.
var _ domain.FareProvider = (*Adapter)(nil)
