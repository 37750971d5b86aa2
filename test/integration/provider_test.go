package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	farehttp "github.com/hanvietair/flight-fare-service/internal/adapter/http"
	"github.com/hanvietair/flight-fare-service/internal/adapter/provider/vietjet"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/test/testutil"
)

// TestProviderAdapter_EndToEnd runs a search through the real VietJet
// adapter against a recorded upstream response, all the way to the HTTP
// response body.
func TestProviderAdapter_EndToEnd(t *testing.T) {
	fixture := testutil.LoadTestJSON(t, "vietjet_search_response.json")

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer upstream.Close()

	adapter := vietjet.NewAdapter(vietjet.Config{BaseURL: upstream.URL})
	ts := NewTestServer(adapter)

	body := SearchBody()
	body["filters"] = map[string]interface{}{"cheapestOnly": false}

	resp := ts.SearchRequest(body)
	require.Equal(t, http.StatusOK, resp.Code)

	var searchResp farehttp.SearchResponseDTO
	require.NoError(t, resp.ParseJSON(&searchResp))
	require.Len(t, searchResp.Flights, 2)

	fare := searchResp.Flights[0]
	assert.Equal(t, "vj-962-0", fare.ID)
	assert.Equal(t, domain.AirlineVJ, fare.Airline)
	assert.Equal(t, "VJ962", fare.FlightNumber)
	assert.Equal(t, "Airbus A320", fare.Aircraft)
	assert.Equal(t, "ICN", fare.Departure.Airport)
	assert.Equal(t, "HAN", fare.Arrival.Airport)
	assert.Equal(t, "4h 30m", fare.Duration)
	assert.Equal(t, int64(4_500_000), fare.Price)
	assert.Equal(t, "bk-962-eco", fare.BookingKey)
	require.NotNil(t, fare.Return)
	assert.Equal(t, "HAN", fare.Return.Departure.Airport)
	assert.True(t, fare.Direct)

	assert.Equal(t, int64(6_100_000), searchResp.Flights[1].Price)
}

// TestProviderAdapter_UpstreamDown verifies that an unreachable upstream
// degrades to an empty result with the provider reported as failed.
func TestProviderAdapter_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	upstream.Close()

	adapter := vietjet.NewAdapter(vietjet.Config{BaseURL: upstream.URL})
	ts := NewTestServer(adapter)

	resp := ts.SearchRequest(SearchBody())
	require.Equal(t, http.StatusOK, resp.Code)

	var searchResp farehttp.SearchResponseDTO
	require.NoError(t, resp.ParseJSON(&searchResp))
	assert.Empty(t, searchResp.Flights)
	assert.Equal(t, []string{"vietjet"}, searchResp.Metadata.ProvidersFailed)
}
