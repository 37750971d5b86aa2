package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastConfig keeps test runtime negligible.
var fastConfig = Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2.0,
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("persistent")
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return wantErr
	}, fastConfig)

	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 3, calls)
}

func TestDo_RespectsRetryIf(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0
	cfg := fastConfig.WithRetryIf(func(err error) bool { return !errors.Is(err, fatal) })

	err := Do(context.Background(), func() error {
		calls++
		return fatal
	}, cfg)

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, func() error {
		calls++
		return errors.New("never reached")
	}, fastConfig)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestDoWithResult(t *testing.T) {
	calls := 0
	got, err := DoWithResult(context.Background(), func() (string, error) {
		calls++
		if calls < 2 {
			return "", errors.New("transient")
		}
		return "ok", nil
	}, fastConfig)

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 2, calls)
}

func TestDoWithResult_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_, err := DoWithResult(context.Background(), func() (int, error) {
		calls++
		return 0, errors.New("boom")
	}, Config{})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPermanent(t *testing.T) {
	underlying := errors.New("bad payload")
	perm := NewPermanent(underlying)

	assert.True(t, errors.Is(perm, underlying))
	assert.False(t, SkipPermanent(perm))
	assert.True(t, SkipPermanent(errors.New("transient")))
	assert.Nil(t, NewPermanent(nil))
}

func TestDo_SkipPermanentStopsEarly(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func() error {
		calls++
		return NewPermanent(errors.New("bad payload"))
	}, fastConfig.WithRetryIf(SkipPermanent))

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
