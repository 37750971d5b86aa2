package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	farehttp "github.com/hanvietair/flight-fare-service/internal/adapter/http"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
	"github.com/hanvietair/flight-fare-service/test/mock"
)

// TestConcurrent_IndependentServers verifies that fully independent service
// instances serve overlapping requests without interference.
func TestConcurrent_IndependentServers(t *testing.T) {
	numRequests := 8
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ts := NewTestServer(
				mock.NewProvider("vietjet", domain.AirlineVJ).
					WithDelay(10 * time.Millisecond).
					WithFlights(mock.SampleFares(domain.AirlineVJ, 3)),
			)
			body := SearchBody()
			body["filters"] = map[string]interface{}{"cheapestOnly": false}
			results[idx] = ts.SearchRequest(body)
		}(i)
	}

	wg.Wait()

	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		var resp farehttp.SearchResponseDTO
		require.NoError(t, results[i].ParseJSON(&resp))
		assert.Len(t, resp.Flights, 3, "request %d should have 3 fares", i)
	}
}

// TestConcurrent_NewerSearchSupersedesOlder verifies the generation counter:
// when a second search starts while the first is still in flight, the first
// search's late results are discarded rather than merged.
func TestConcurrent_NewerSearchSupersedesOlder(t *testing.T) {
	slow := mock.NewProvider("vietjet", domain.AirlineVJ).
		WithDelay(100 * time.Millisecond).
		WithFlights(mock.SampleFares(domain.AirlineVJ, 2))

	uc := CreateUseCase(slow)

	filters := domain.DefaultFilterOptions()
	filters.ShowCheapestOnly = false
	opts := usecase.SearchOptions{Filters: &filters}

	var wg sync.WaitGroup
	var first *domain.SearchResponse
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = uc.Search(context.Background(), DefaultSearchCriteria(), opts)
	}()

	// Let the first search dispatch, then supersede it.
	time.Sleep(20 * time.Millisecond)
	second, secondErr := uc.Search(context.Background(), DefaultSearchCriteria(), opts)
	wg.Wait()

	require.NoError(t, firstErr)
	require.NoError(t, secondErr)

	// The superseded search settled after the newer one started, so its
	// provider result was discarded.
	assert.Empty(t, first.Flights)
	assert.Empty(t, first.Metadata.ProvidersQueried)

	assert.Len(t, second.Flights, 2)
	assert.Equal(t, []string{"vietjet"}, second.Metadata.ProvidersQueried)
}

// TestConcurrent_ProfileStoreAccess verifies that concurrent searches
// reading the same agent profile do not race with banner writes.
func TestConcurrent_ProfileStoreAccess(t *testing.T) {
	ts := NewTestServer(
		mock.NewProvider("vietjet", domain.AirlineVJ).WithFlights(mock.SampleFares(domain.AirlineVJ, 1)),
	)
	require.NoError(t, ts.Store.SaveProfile(context.Background(), &domain.AgentProfile{ID: "agent-1", PriceVJ: 10_000}))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := SearchBody()
			body["agentId"] = "agent-1"
			resp := ts.SearchRequest(body)
			assert.Equal(t, http.StatusOK, resp.Code)
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := ts.Store.SaveBanner(context.Background(), "agent-1", "updated banner")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := ts.Store.GetProfile(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "updated banner", stored.Banner)
	assert.Equal(t, int64(10_000), stored.PriceVJ)
}
