package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/timeutil"
)

// Default timeout values.
const (
	DefaultGlobalTimeout   = 15 * time.Second
	DefaultProviderTimeout = 10 * time.Second
)

// FareSearchUseCase defines the interface for fare search operations.
type FareSearchUseCase interface {
	// Search queries both registered providers concurrently and returns the
	// aggregated, filtered, and sorted result. A provider failure is never
	// fatal: it is logged and surfaced only as the absence of that
	// provider's fares.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout   time.Duration
	ProviderTimeout time.Duration
}

// fareSearchUseCase implements FareSearchUseCase with the scatter-gather
// pattern: one goroutine per provider, a buffered result channel, and a
// generation counter that discards results from superseded searches.
type fareSearchUseCase struct {
	registry        *domain.ProviderRegistry
	store           domain.ProfileStore
	clock           timeutil.Clock
	log             *logger.Logger
	globalTimeout   time.Duration
	providerTimeout time.Duration

	// generation identifies the latest search. Each call claims the next
	// value; per-provider results whose generation is no longer the latest
	// are dropped, so a slow provider from an old search can never race its
	// stale fares into a newer search's incremental delivery.
	generation atomic.Uint64
}

// NewFareSearchUseCase creates a fare search use case. The store may be nil,
// which disables search-history recording. If config is nil, default timeouts
// are used.
func NewFareSearchUseCase(registry *domain.ProviderRegistry, store domain.ProfileStore, log *logger.Logger, config *Config) FareSearchUseCase {
	cfg := Config{
		GlobalTimeout:   DefaultGlobalTimeout,
		ProviderTimeout: DefaultProviderTimeout,
	}
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &fareSearchUseCase{
		registry:        registry,
		store:           store,
		clock:           timeutil.NewRealClock(),
		log:             log,
		globalTimeout:   cfg.GlobalTimeout,
		providerTimeout: cfg.ProviderTimeout,
	}
}

// Search implements FareSearchUseCase.Search.
func (uc *fareSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	startTime := uc.clock.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	filters := domain.DefaultFilterOptions()
	if opts.Filters != nil {
		filters = *opts.Filters
	}

	// A search without a departure date is a no-op, not an error.
	if criteria.DepartureDate == "" {
		return uc.buildResponse(criteria, nil, nil, nil, filters, startTime), nil
	}

	providers := uc.registry.All()
	if len(providers) == 0 {
		return nil, domain.ErrNoProviders
	}

	gen := uc.generation.Add(1)

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	// Buffered so a provider goroutine never blocks on delivery.
	results := make(chan domain.ProviderResult, len(providers))

	var wg sync.WaitGroup
	for _, provider := range providers {
		wg.Add(1)
		go func(p domain.FareProvider) {
			defer wg.Done()
			uc.queryProvider(ctx, p, criteria, results)
		}(provider)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Gather. Providers settle independently and in either order; whichever
	// resolves first is delivered to OnPartial first.
	var allFlights []domain.Flight
	var queried, failed []string

	for result := range results {
		if uc.generation.Load() != gen {
			// A newer search has started; these fares are out of date.
			uc.log.WithProvider(result.Provider).Debug().
				Uint64("generation", gen).
				Msg("Discarding stale provider result")
			continue
		}

		queried = append(queried, result.Provider)
		if result.Err != nil {
			failed = append(failed, result.Provider)
			uc.log.WithProvider(result.Provider).Warn().
				Err(result.Err).
				Bool("retryable", domain.IsRetryable(result.Err)).
				Int64("duration_ms", result.DurationMs).
				Msg("Provider search failed")
			continue
		}

		allFlights = append(allFlights, result.Flights...)
		uc.log.WithProvider(result.Provider).Info().
			Int("flights", len(result.Flights)).
			Int64("duration_ms", result.DurationMs).
			Msg("Provider search completed")

		if opts.OnPartial != nil {
			opts.OnPartial(result)
		}
	}

	uc.recordSearch(ctx, opts.AgentID, criteria)

	// Narrow filter defaults against what actually came back, then filter.
	NarrowFilters(&filters, allFlights)
	filtered := ApplyFilters(allFlights, filters)
	sorted := SortFlights(filtered, filters.SortBy)

	resp := uc.buildResponse(criteria, allFlights, sorted, failed, filters, startTime)
	resp.Metadata.ProvidersQueried = queried
	return resp, nil
}

// queryProvider runs a single provider call with its own timeout and panic
// recovery, so one misbehaving provider cannot take down the whole search.
func (uc *fareSearchUseCase) queryProvider(ctx context.Context, provider domain.FareProvider, criteria domain.SearchCriteria, results chan<- domain.ProviderResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	start := time.Now()
	name := provider.Name()
	airline := provider.Airline()

	defer func() {
		if r := recover(); r != nil {
			results <- domain.ProviderResult{
				Provider:   name,
				Airline:    airline,
				Err:        fmt.Errorf("provider panic: %v", r),
				DurationMs: time.Since(start).Milliseconds(),
			}
		}
	}()

	flights, err := provider.Search(ctx, criteria)

	results <- domain.ProviderResult{
		Provider:   name,
		Airline:    airline,
		Flights:    flights,
		Err:        err,
		DurationMs: time.Since(start).Milliseconds(),
	}
}

// recordSearch appends the search to the agent's history. Recording failures
// are logged and never surfaced.
func (uc *fareSearchUseCase) recordSearch(ctx context.Context, agentID string, criteria domain.SearchCriteria) {
	if uc.store == nil || agentID == "" {
		return
	}

	rec := domain.SearchRecord{
		AgentID:       agentID,
		From:          criteria.From,
		To:            criteria.To,
		DepartureDate: criteria.DepartureDate,
		ReturnDate:    criteria.ReturnDate,
		Passengers:    criteria.Passengers,
		TripType:      criteria.TripType,
		SearchedAt:    uc.clock.Now(),
	}
	if err := uc.store.RecordSearch(ctx, rec); err != nil {
		uc.log.WithAgent(agentID).Warn().Err(err).Msg("Failed to record search history")
	}
}

func (uc *fareSearchUseCase) buildResponse(criteria domain.SearchCriteria, union, sorted []domain.Flight, failed []string, filters domain.FilterOptions, startTime time.Time) *domain.SearchResponse {
	if sorted == nil {
		sorted = []domain.Flight{}
	}
	vj, vna := PartitionByAirline(sorted)

	return &domain.SearchResponse{
		Criteria: criteria,
		Metadata: domain.SearchMetadata{
			TotalResults:    len(sorted),
			TotalFetched:    len(union),
			ProvidersFailed: failed,
			SearchTimeMs:    uc.clock.Now().Sub(startTime).Milliseconds(),
		},
		Flights:          sorted,
		VJ:               vj,
		VNA:              vna,
		HasDirectFlights: HasDirectFlights(union),
		HasVfr2pc:        HasVfr2pc(union),
		Filters:          filters,
	}
}

// Ensure fareSearchUseCase implements FareSearchUseCase at compile time.
var _ FareSearchUseCase = (*fareSearchUseCase)(nil)
