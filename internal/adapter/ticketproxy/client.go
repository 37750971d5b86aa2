// Package ticketproxy implements the client for the ticket-delivery proxy,
// which queues ticket emails and serves ticket face images by PNR.
package ticketproxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/retry"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

// DefaultHTTPTimeout bounds a single proxy round trip.
const DefaultHTTPTimeout = 15 * time.Second

// statusSuccess is the proxy's only success signal. Any other payload,
// whatever the HTTP status, means the request was not queued.
const statusSuccess = "success"

// recipient mirrors the proxy's per-recipient schema. Field names follow
// the upstream contract verbatim.
type recipient struct {
	PNRs         []string `json:"pnrs"`
	Email        string   `json:"email"`
	CustomerName string   `json:"tenKhach"`
	Salutation   string   `json:"xungHo"`
	Phone        string   `json:"sdt"`
	SendCombined bool     `json:"guiChung"`
	Banner       string   `json:"banner"`
}

// emailRequest is the proxy's top-level email payload. The proxy accepts a
// batch; this service always submits a single recipient.
type emailRequest struct {
	KhachHang []recipient `json:"khachHang"`
}

type proxyStatus struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// Client implements usecase.TicketProxy over HTTP.
type Client struct {
	emailURL   string
	imagesURL  string
	httpClient *http.Client
	log        *logger.Logger
}

// Config holds the client's endpoints and dependencies. HTTPClient and Log
// may be nil.
type Config struct {
	// EmailURL is the email-queueing endpoint.
	EmailURL string

	// ImagesURL is the ticket-image lookup endpoint; the PNR is passed as
	// a query parameter.
	ImagesURL string

	HTTPClient *http.Client
	Log        *logger.Logger
}

// NewClient creates a ticket proxy client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		emailURL:   cfg.EmailURL,
		imagesURL:  cfg.ImagesURL,
		httpClient: httpClient,
		log:        log,
	}
}

// SendTicketEmail implements usecase.TicketProxy. Email queueing is not
// idempotent on the proxy side, so transport errors are not retried.
func (c *Client) SendTicketEmail(ctx context.Context, req usecase.TicketEmailRequest) error {
	payload := emailRequest{
		KhachHang: []recipient{{
			PNRs:         req.PNRs,
			Email:        req.Email,
			CustomerName: req.CustomerName,
			Salutation:   req.Salutation,
			Phone:        req.Phone,
			SendCombined: req.SendCombined,
			Banner:       req.Banner,
		}},
	}

	status, err := c.post(ctx, c.emailURL, payload)
	if err != nil {
		return err
	}
	if status.Status != statusSuccess {
		c.log.Warn().
			Str("status", status.Status).
			Str("message", status.Message).
			Msg("Ticket proxy rejected email request")
		return domain.ErrProxyRejected
	}
	return nil
}

// TicketImages implements usecase.TicketProxy. Lookups are read-only, so
// transport errors are retried.
func (c *Client) TicketImages(ctx context.Context, pnr string) ([]string, error) {
	lookupURL := c.imagesURL + "?pnr=" + url.QueryEscape(pnr)

	status, err := retry.DoWithResult(ctx, func() (*proxyStatus, error) {
		return c.get(ctx, lookupURL)
	}, retry.ProviderConfig.WithRetryIf(retry.SkipPermanent))
	if err != nil {
		return nil, err
	}
	if status.Status != statusSuccess {
		return nil, domain.ErrProxyRejected
	}
	return status.Images, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload any) (*proxyStatus, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode proxy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) get(ctx context.Context, endpoint string) (*proxyStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// do executes the request and decodes the proxy's status payload. The proxy
// reports failures in the body rather than the HTTP status line, so a
// decodable body wins over a non-200 status.
func (c *Client) do(req *http.Request) (*proxyStatus, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read proxy response: %w", err)
	}

	var status proxyStatus
	if err := json.Unmarshal(body, &status); err != nil {
		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("proxy returned %d", resp.StatusCode)
		}
		return nil, retry.NewPermanent(fmt.Errorf("decode proxy response: %w", err))
	}
	return &status, nil
}

// Ensure Client implements TicketProxy at compile time.
var _ usecase.TicketProxy = (*Client)(nil)
