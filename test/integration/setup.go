// Package integration provides helpers and integration tests for the fare
// search service. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and mock providers.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"

	farehttp "github.com/hanvietair/flight-fare-service/internal/adapter/http"
	"github.com/hanvietair/flight-fare-service/internal/adapter/store"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

// TestServer wraps an Echo instance and the fully wired service for
// integration testing: memory store, fake ticket proxy, and whatever
// providers the test registers.
type TestServer struct {
	Echo    *echo.Echo
	Store   *store.MemoryStore
	Proxy   *FakeProxy
	Handler *farehttp.FareHandler
}

// NewTestServer wires the service around the given providers.
func NewTestServer(providers ...domain.FareProvider) *TestServer {
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}

	memStore := store.NewMemoryStore()
	proxy := &FakeProxy{images: map[string][]string{}}

	searchUC := usecase.NewFareSearchUseCase(registry, memStore, nil, nil)
	ticketUC := usecase.NewTicketUseCase(proxy, memStore, nil)
	handler := farehttp.NewFareHandler(searchUC, ticketUC, memStore, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	farehttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Store:   memStore,
		Proxy:   proxy,
		Handler: handler,
	}
}

// FakeProxy is an in-memory stand-in for the ticket-delivery proxy.
type FakeProxy struct {
	mu     sync.Mutex
	sent   []usecase.TicketEmailRequest
	err    error
	images map[string][]string
}

// FailWith makes every proxy call return the given error.
func (f *FakeProxy) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// SetImages registers ticket images for a PNR.
func (f *FakeProxy) SetImages(pnr string, urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[pnr] = urls
}

// Sent returns a copy of all email requests the proxy accepted.
func (f *FakeProxy) Sent() []usecase.TicketEmailRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]usecase.TicketEmailRequest, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *FakeProxy) SendTicketEmail(_ context.Context, req usecase.TicketEmailRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, req)
	return nil
}

func (f *FakeProxy) TicketImages(_ context.Context, pnr string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.images[pnr], nil
}

var _ usecase.TicketProxy = (*FakeProxy)(nil)

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a fare search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/fares/search",
		Body:   body,
	})
}

// TicketEmailRequest posts a ticket email submission.
func (ts *TestServer) TicketEmailRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/tickets/email",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseJSON unmarshals the response body into out.
func (r *Response) ParseJSON(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSearchCriteria returns a valid round-trip search for the ICN-HAN
// route used throughout the integration tests.
func DefaultSearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		From:          "ICN",
		To:            "HAN",
		DepartureDate: "2026-09-15",
		ReturnDate:    "2026-09-22",
		Passengers:    1,
		TripType:      domain.TripRoundTrip,
	}
}

// SearchBody returns a valid search request body matching
// DefaultSearchCriteria.
func SearchBody() map[string]interface{} {
	return map[string]interface{}{
		"from":          "ICN",
		"to":            "HAN",
		"departureDate": "2026-09-15",
		"returnDate":    "2026-09-22",
		"passengers":    1,
		"tripType":      "round_trip",
	}
}

// CreateUseCase creates a search use case over the given providers with the
// default configuration and no store.
func CreateUseCase(providers ...domain.FareProvider) usecase.FareSearchUseCase {
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	return usecase.NewFareSearchUseCase(registry, nil, nil, nil)
}

// CreateUseCaseWithConfig creates a search use case with custom timeouts.
func CreateUseCaseWithConfig(config *usecase.Config, providers ...domain.FareProvider) usecase.FareSearchUseCase {
	registry := domain.NewProviderRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	return usecase.NewFareSearchUseCase(registry, nil, nil, config)
}
