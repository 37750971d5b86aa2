package ticketproxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

func emailRequestFixture() usecase.TicketEmailRequest {
	return usecase.TicketEmailRequest{
		PNRs:         []string{"ABC123", "DEF456"},
		Email:        "customer@example.com",
		CustomerName: "Nguyễn Văn A",
		Salutation:   "bạn",
		Phone:        "0901234567",
		SendCombined: true,
		Banner:       "Hân hạnh phục vụ quý khách",
	}
}

func TestSendTicketEmail_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer server.Close()

	client := NewClient(Config{EmailURL: server.URL})
	err := client.SendTicketEmail(context.Background(), emailRequestFixture())
	require.NoError(t, err)

	recipients, ok := gotBody["khachHang"].([]any)
	require.True(t, ok, "payload must wrap recipients in khachHang")
	require.Len(t, recipients, 1)

	first, ok := recipients[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"ABC123", "DEF456"}, first["pnrs"])
	assert.Equal(t, "customer@example.com", first["email"])
	assert.Equal(t, "Nguyễn Văn A", first["tenKhach"])
	assert.Equal(t, "bạn", first["xungHo"])
	assert.Equal(t, "0901234567", first["sdt"])
	assert.Equal(t, true, first["guiChung"])
	assert.Equal(t, "Hân hạnh phục vụ quý khách", first["banner"])
}

func TestSendTicketEmail_NonSuccessStatusIsRejected(t *testing.T) {
	// The proxy signals failure in the body, not the HTTP status line.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"queue full"}`))
	}))
	defer server.Close()

	client := NewClient(Config{EmailURL: server.URL})
	err := client.SendTicketEmail(context.Background(), emailRequestFixture())
	assert.ErrorIs(t, err, domain.ErrProxyRejected)
}

func TestSendTicketEmail_TransportErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{EmailURL: server.URL})
	err := client.SendTicketEmail(context.Background(), emailRequestFixture())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "email queueing is not idempotent")
}

func TestTicketImages_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "ABC123", r.URL.Query().Get("pnr"))
		_, _ = w.Write([]byte(`{"status":"success","images":["https://img.example.com/ABC123/1.png"]}`))
	}))
	defer server.Close()

	client := NewClient(Config{ImagesURL: server.URL})
	images, err := client.TicketImages(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example.com/ABC123/1.png"}, images)
}

func TestTicketImages_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"success","images":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{ImagesURL: server.URL})
	_, err := client.TicketImages(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTicketImages_UnknownPNRIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"not_found"}`))
	}))
	defer server.Close()

	client := NewClient(Config{ImagesURL: server.URL})
	_, err := client.TicketImages(context.Background(), "ZZZ999")
	assert.ErrorIs(t, err, domain.ErrProxyRejected)
}
