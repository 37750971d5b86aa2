package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

func TestAdjustPrice(t *testing.T) {
	tests := []struct {
		name    string
		flight  domain.Flight
		profile *domain.AgentProfile
		want    int64
	}{
		{
			name:    "VJ one-way with airline and trip fees",
			flight:  domain.Flight{Airline: domain.AirlineVJ, Price: 1_000_000},
			profile: &domain.AgentProfile{PriceVJ: 50_000, PriceOW: 30_000},
			want:    1_080_000,
		},
		{
			name: "VNA round trip with airline and trip fees",
			flight: domain.Flight{
				Airline:     domain.AirlineVNA,
				Price:       2_000_000,
				BaggageType: "ADT",
				Return:      &domain.ReturnLeg{},
			},
			profile: &domain.AgentProfile{PriceVNA: 70_000, PriceRT: 40_000},
			want:    2_110_000,
		},
		{
			name:    "one-way fee not applied to round trip",
			flight:  domain.Flight{Airline: domain.AirlineVJ, Price: 500_000, Return: &domain.ReturnLeg{}},
			profile: &domain.AgentProfile{PriceVJ: 10_000, PriceOW: 99_999, PriceRT: 20_000},
			want:    530_000,
		},
		{
			name:    "cross-airline markup not applied",
			flight:  domain.Flight{Airline: domain.AirlineVJ, Price: 500_000},
			profile: &domain.AgentProfile{PriceVNA: 99_999},
			want:    500_000,
		},
		{
			name:    "account-level markup is not part of the adjustment",
			flight:  domain.Flight{Airline: domain.AirlineVNA, Price: 500_000},
			profile: &domain.AgentProfile{PriceMarkup: 123_456},
			want:    500_000,
		},
		{
			name:    "rounds down to nearest hundred",
			flight:  domain.Flight{Airline: domain.AirlineVJ, Price: 1_000_049},
			profile: &domain.AgentProfile{},
			want:    1_000_000,
		},
		{
			name:    "rounds up to nearest hundred",
			flight:  domain.Flight{Airline: domain.AirlineVJ, Price: 1_000_050},
			profile: &domain.AgentProfile{},
			want:    1_000_100,
		},
		{
			name:   "nil profile yields rounded base fare",
			flight: domain.Flight{Airline: domain.AirlineVNA, Price: 1_234_560},
			want:   1_234_600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustPrice(&tt.flight, tt.profile))
		})
	}
}

func TestAdjustPrice_Idempotent(t *testing.T) {
	flight := domain.Flight{Airline: domain.AirlineVJ, Price: 1_111_111}
	profile := &domain.AgentProfile{PriceVJ: 33_333, PriceOW: 44_444}

	first := AdjustPrice(&flight, profile)
	second := AdjustPrice(&flight, profile)

	assert.Equal(t, first, second)
	assert.Zero(t, first%100, "adjusted price must always be a multiple of 100")
}
