package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

func TestMemoryStore_Profiles(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetProfile(ctx, "agent-1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	profile := &domain.AgentProfile{
		ID:       "agent-1",
		Email:    "agent@example.com",
		FullName: "Kim Min-ji",
		PriceVJ:  50_000,
		PriceRT:  40_000,
	}
	require.NoError(t, s.SaveProfile(ctx, profile))

	got, err := s.GetProfile(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, *profile, *got)

	// The returned profile is a copy; mutating it must not affect the store.
	got.PriceVJ = 999
	again, err := s.GetProfile(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50_000), again.PriceVJ)
}

func TestMemoryStore_SaveBanner(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	err := s.SaveBanner(ctx, "agent-1", "banner text")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	require.NoError(t, s.SaveProfile(ctx, &domain.AgentProfile{ID: "agent-1"}))
	require.NoError(t, s.SaveBanner(ctx, "agent-1", "banner text"))

	got, err := s.GetProfile(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "banner text", got.Banner)
}

func TestMemoryStore_SearchHistory(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordSearch(ctx, domain.SearchRecord{
			AgentID:       "agent-1",
			From:          "ICN",
			To:            "HAN",
			DepartureDate: fmt.Sprintf("2026-09-%02d", i+1),
			SearchedAt:    time.Now(),
		}))
	}

	records, err := s.RecentSearches(ctx, "agent-1", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2026-09-03", records[0].DepartureDate, "newest first")
	assert.Equal(t, "2026-09-02", records[1].DepartureDate)

	all, err := s.RecentSearches(ctx, "agent-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := s.RecentSearches(ctx, "agent-2", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_HistoryIsCapped(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < historyLimit+10; i++ {
		require.NoError(t, s.RecordSearch(ctx, domain.SearchRecord{AgentID: "agent-1"}))
	}

	records, err := s.RecentSearches(ctx, "agent-1", 0)
	require.NoError(t, err)
	assert.Len(t, records, historyLimit)
}
