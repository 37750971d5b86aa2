// Package vietjet implements the VietJet Air quote-API adapter.
package vietjet

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hanvietair/flight-fare-service/internal/adapter/provider/wire"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/ratelimit"
)

// ProviderName is the unique identifier for the VietJet provider.
const ProviderName = "vietjet"

// aircraft is the fleet constant; the quote API carries no equipment data
// and VietJet flies an all-A320-family fleet on these routes.
const aircraft = "Airbus A320"

// searchRequest is the upstream quote form.
type searchRequest struct {
	Dep0     string `json:"dep0"`
	Arr0     string `json:"arr0"`
	DepDate0 string `json:"depdate0"`
	DepDate1 string `json:"depdate1"`
	Adults   string `json:"adt"`
	Children string `json:"chd"`
	Infants  string `json:"inf"`
	SoChieu  string `json:"sochieu"`
}

// Adapter implements domain.FareProvider for VietJet Air.
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

// NewAdapter creates a VietJet adapter.
func NewAdapter(cfg Config) *Adapter {
	return &Adapter{
		client: wire.NewClient(ProviderName, cfg.BaseURL, cfg.HTTPClient, cfg.Limiter),
		normalizer: wire.Normalizer{
			Airline:      domain.AirlineVJ,
			IDPrefix:     "vj",
			NumberPrefix: "VJ",
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
	return domain.AirlineVJ
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
		Adults:   strconv.Itoa(criteria.Passengers),
		Children: "0",
		Infants:  "0",
		SoChieu:  soChieu,
	}
}

// Ensure Adapter implements FareProvider at compile time.
var _ domain.FareProvider = (*Adapter)(nil)
