// Package retry provides a generic retry mechanism with exponential backoff,
// used for outbound calls to the airline quote APIs and the ticket proxy.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of random jitter to each delay.
	JitterFactor float64

	// RetryIf is an optional predicate deciding whether an error is worth
	// retrying. Nil retries every error.
	RetryIf func(error) bool
}

// ProviderConfig is tuned for the external quote APIs: transport hiccups are
// worth a couple of retries, anything slower than that and the search's
// per-provider timeout wins anyway.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// DoWithResult executes fn with retry logic and returns its result.
// The last error is returned when every attempt fails. Context cancellation
// aborts both attempts and backoff waits.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	var result T
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// Do executes fn with retry logic.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// sleepTime computes the backoff duration with jitter and max cap.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	d := delay + jitter
	if maxDelay > 0 && d > maxDelay {
		d = maxDelay
	}
	return d
}

// Permanent wraps an error to indicate it should not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// SkipPermanent is a RetryIf predicate that skips permanent errors.
func SkipPermanent(err error) bool {
	var permanent *Permanent
	return !errors.As(err, &permanent)
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}
