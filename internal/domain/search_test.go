package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCriteria_Validate(t *testing.T) {
	valid := SearchCriteria{
		From:          "ICN",
		To:            "HAN",
		DepartureDate: "2026-09-15",
		ReturnDate:    "2026-09-22",
		Passengers:    2,
		TripType:      TripRoundTrip,
	}

	tests := []struct {
		name    string
		mutate  func(*SearchCriteria)
		wantErr bool
	}{
		{
			name:    "valid round trip",
			mutate:  func(s *SearchCriteria) {},
			wantErr: false,
		},
		{
			name: "valid one way without return date",
			mutate: func(s *SearchCriteria) {
				s.TripType = TripOneWay
				s.ReturnDate = ""
			},
			wantErr: false,
		},
		{
			name: "empty departure date is not an error",
			mutate: func(s *SearchCriteria) {
				s.DepartureDate = ""
				s.ReturnDate = ""
			},
			wantErr: false,
		},
		{
			name:    "missing from",
			mutate:  func(s *SearchCriteria) { s.From = "" },
			wantErr: true,
		},
		{
			name:    "lowercase airport code",
			mutate:  func(s *SearchCriteria) { s.To = "han" },
			wantErr: true,
		},
		{
			name: "same origin and destination",
			mutate: func(s *SearchCriteria) {
				s.From = "ICN"
				s.To = "ICN"
			},
			wantErr: true,
		},
		{
			name:    "malformed departure date",
			mutate:  func(s *SearchCriteria) { s.DepartureDate = "15/09/2026" },
			wantErr: true,
		},
		{
			name:    "impossible departure date",
			mutate:  func(s *SearchCriteria) { s.DepartureDate = "2026-02-31" },
			wantErr: true,
		},
		{
			name:    "round trip without return date",
			mutate:  func(s *SearchCriteria) { s.ReturnDate = "" },
			wantErr: true,
		},
		{
			name:    "zero passengers",
			mutate:  func(s *SearchCriteria) { s.Passengers = 0 },
			wantErr: true,
		},
		{
			name:    "too many passengers",
			mutate:  func(s *SearchCriteria) { s.Passengers = 10 },
			wantErr: true,
		},
		{
			name:    "unknown trip type",
			mutate:  func(s *SearchCriteria) { s.TripType = "open_jaw" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := valid
			tt.mutate(&criteria)

			err := criteria.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchCriteria_SetDefaults(t *testing.T) {
	criteria := SearchCriteria{From: "ICN", To: "HAN"}
	criteria.SetDefaults()

	assert.Equal(t, 1, criteria.Passengers)
	assert.Equal(t, TripRoundTrip, criteria.TripType)
	assert.True(t, criteria.IsRoundTrip())

	// Explicit values are preserved.
	criteria = SearchCriteria{Passengers: 3, TripType: TripOneWay}
	criteria.SetDefaults()
	assert.Equal(t, 3, criteria.Passengers)
	assert.Equal(t, TripOneWay, criteria.TripType)
}
