package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_WithinBurstDoesNotBlock(t *testing.T) {
	pl := NewProviderLimiter(Config{RequestsPerSecond: 1, BurstSize: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, pl.Wait(ctx, "vietjet"))
	}
}

func TestWait_IndependentLimitersPerProvider(t *testing.T) {
	pl := NewProviderLimiter(Config{RequestsPerSecond: 1, BurstSize: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Exhausting vietjet's bucket must not affect vietnamair's.
	require.NoError(t, pl.Wait(ctx, "vietjet"))
	require.NoError(t, pl.Wait(ctx, "vietnamair"))
}

func TestWait_ExhaustedBucketRespectsContext(t *testing.T) {
	pl := NewProviderLimiter(Config{RequestsPerSecond: 0.001, BurstSize: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.NoError(t, pl.Wait(ctx, "vietjet"))
	err := pl.Wait(ctx, "vietjet")
	assert.Error(t, err)
}

func TestSetProviderLimit(t *testing.T) {
	pl := NewProviderLimiter(Config{RequestsPerSecond: 0.001, BurstSize: 1})
	pl.SetProviderLimit("vietjet", 1000, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, pl.Wait(ctx, "vietjet"))
	}
}
