// Package ratelimit throttles outbound calls per fare provider so a burst of
// agent searches cannot hammer the upstream quote APIs.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the default per-provider rate limit.
type Config struct {
	// RequestsPerSecond is the sustained request rate per provider.
	RequestsPerSecond float64

	// BurstSize is the burst capacity per provider.
	BurstSize int
}

// DefaultConfig returns the default outbound limits.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

// ProviderLimiter maintains one token-bucket limiter per provider name.
// Limiters are created lazily with the configured defaults.
type ProviderLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	defaults Config
}

// NewProviderLimiter creates a limiter set with the given defaults.
func NewProviderLimiter(cfg Config) *ProviderLimiter {
	return &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// Wait blocks until the provider's limiter admits one request or the context
// is cancelled.
func (p *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return p.limiter(provider).Wait(ctx)
}

// SetProviderLimit overrides the limit for a single provider.
func (p *ProviderLimiter) SetProviderLimit(provider string, rps float64, burst int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.limiters[provider] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (p *ProviderLimiter) limiter(provider string) *rate.Limiter {
	p.mu.RLock()
	l, ok := p.limiters[provider]
	p.mu.RUnlock()
	if ok {
		return l
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok = p.limiters[provider]; ok {
		return l
	}
	l = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[provider] = l
	return l
}
