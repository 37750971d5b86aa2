package wire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/ratelimit"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/retry"
)

// DefaultHTTPTimeout bounds a single quote-API round trip. The retry layer
// sits above this, the search's per-provider timeout above that.
const DefaultHTTPTimeout = 8 * time.Second

// maxResponseBytes caps how much of an upstream response is read. Quote
// batches are a few hundred KB at most.
const maxResponseBytes = 4 << 20

// Client fetches quote envelopes from one upstream endpoint with rate
// limiting and retry.
type Client struct {
	provider   string
	url        string
	httpClient *http.Client
	limiter    *ratelimit.ProviderLimiter
}

// NewClient creates a quote-API client. httpClient and limiter may be nil;
// a default client and an unlimited limiter are used.
func NewClient(provider, url string, httpClient *http.Client, limiter *ratelimit.ProviderLimiter) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &Client{
		provider:   provider,
		url:        url,
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// Fetch POSTs the given form and decodes the envelope. Transport errors and
// upstream 5xx are retried; 4xx and undecodable bodies are not. Errors are
// returned as domain.ProviderError with the retryable flag set accordingly.
func (c *Client) Fetch(ctx context.Context, form any) (*Envelope, error) {
	payload, err := json.Marshal(form)
	if err != nil {
		return nil, domain.NewProviderError(c.provider, fmt.Errorf("encode request: %w", err))
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, c.provider); err != nil {
			return nil, domain.NewProviderError(c.provider, err)
		}
	}

	cfg := retry.ProviderConfig.WithRetryIf(retry.SkipPermanent)
	envelope, err := retry.DoWithResult(ctx, func() (*Envelope, error) {
		return c.fetchOnce(ctx, payload)
	}, cfg)
	if err != nil {
		if retry.SkipPermanent(err) {
			return nil, domain.NewRetryableProviderError(c.provider, err)
		}
		return nil, domain.NewProviderError(c.provider, err)
	}
	return envelope, nil
}

func (c *Client) fetchOnce(ctx context.Context, payload []byte) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, retry.NewPermanent(fmt.Errorf("upstream returned %d", resp.StatusCode))
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode response: %w", err))
	}
	return &envelope, nil
}
