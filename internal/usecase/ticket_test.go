package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanvietair/flight-fare-service/internal/domain"
)

// stubProxy records proxy calls for assertion.
type stubProxy struct {
	sendErr  error
	sent     []TicketEmailRequest
	images   []string
	imageErr error
}

func (s *stubProxy) SendTicketEmail(_ context.Context, req TicketEmailRequest) error {
	s.sent = append(s.sent, req)
	return s.sendErr
}

func (s *stubProxy) TicketImages(context.Context, string) ([]string, error) {
	return s.images, s.imageErr
}

// bannerStore records banner persistence.
type bannerStore struct {
	mu      sync.Mutex
	banners map[string]string
	saveErr error
}

func newBannerStore() *bannerStore {
	return &bannerStore{banners: make(map[string]string)}
}

func (b *bannerStore) GetProfile(context.Context, string) (*domain.AgentProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func (b *bannerStore) SaveBanner(_ context.Context, agentID, banner string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saveErr != nil {
		return b.saveErr
	}
	b.banners[agentID] = banner
	return nil
}

func (b *bannerStore) RecordSearch(context.Context, domain.SearchRecord) error { return nil }

func (b *bannerStore) RecentSearches(context.Context, string, int) ([]domain.SearchRecord, error) {
	return nil, nil
}

func TestParsePNRs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "single PNR",
			raw:  "ABC123",
			want: []string{"ABC123"},
		},
		{
			name: "mixed separators",
			raw:  "ABC123-DEF456;GHI789",
			want: []string{"ABC123", "DEF456", "GHI789"},
		},
		{
			name: "whitespace separators",
			raw:  "ABC123 DEF456\tGHI789",
			want: []string{"ABC123", "DEF456", "GHI789"},
		},
		{
			name: "consecutive separators collapse",
			raw:  "ABC123 - ; DEF456",
			want: []string{"ABC123", "DEF456"},
		},
		{
			name: "wrong-length tokens dropped",
			raw:  "ABC12-ABC123-ABCD1234",
			want: []string{"ABC123"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only separators",
			raw:  " -; - ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePNRs(tt.raw))
		})
	}
}

func validTicketForm() TicketEmailForm {
	return TicketEmailForm{
		AgentID:      "agent-7",
		Email:        "customer@example.com",
		CustomerName: "Nguyễn Văn A",
		Salutation:   "Mr",
		Phone:        "0901234567",
		PNRs:         "ABC123-DEF456;GHI789",
		Banner:       "Hân hạnh phục vụ quý khách",
	}
}

func TestSendTicketEmail_Success(t *testing.T) {
	proxy := &stubProxy{}
	store := newBannerStore()
	uc := NewTicketUseCase(proxy, store, nil)

	err := uc.SendTicketEmail(context.Background(), validTicketForm())
	require.NoError(t, err)

	require.Len(t, proxy.sent, 1)
	sent := proxy.sent[0]
	assert.Equal(t, []string{"ABC123", "DEF456", "GHI789"}, sent.PNRs)
	assert.Equal(t, "customer@example.com", sent.Email)
	assert.Equal(t, "Nguyễn Văn A", sent.CustomerName)
	assert.Equal(t, "Mr", sent.Salutation)
}

func TestSendTicketEmail_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TicketEmailForm)
	}{
		{"missing email", func(f *TicketEmailForm) { f.Email = "" }},
		{"missing customer name", func(f *TicketEmailForm) { f.CustomerName = "" }},
		{"missing salutation", func(f *TicketEmailForm) { f.Salutation = "" }},
		{"missing pnrs", func(f *TicketEmailForm) { f.PNRs = "" }},
		{"no valid pnr tokens", func(f *TicketEmailForm) { f.PNRs = "AB12-TOOLONG1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy := &stubProxy{}
			uc := NewTicketUseCase(proxy, nil, nil)

			form := validTicketForm()
			tt.mutate(&form)

			err := uc.SendTicketEmail(context.Background(), form)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			assert.Empty(t, proxy.sent, "proxy must not be called for an invalid form")
		})
	}
}

func TestSendTicketEmail_PersistsBannerOnSuccess(t *testing.T) {
	proxy := &stubProxy{}
	store := newBannerStore()
	uc := NewTicketUseCase(proxy, store, nil)

	err := uc.SendTicketEmail(context.Background(), validTicketForm())
	require.NoError(t, err)
	assert.Equal(t, "Hân hạnh phục vụ quý khách", store.banners["agent-7"])
}

func TestSendTicketEmail_NoBannerPersistenceOnRejection(t *testing.T) {
	proxy := &stubProxy{sendErr: domain.ErrProxyRejected}
	store := newBannerStore()
	uc := NewTicketUseCase(proxy, store, nil)

	err := uc.SendTicketEmail(context.Background(), validTicketForm())
	assert.ErrorIs(t, err, domain.ErrProxyRejected)
	assert.Empty(t, store.banners)
}

func TestSendTicketEmail_BannerFailureIsNotSurfaced(t *testing.T) {
	proxy := &stubProxy{}
	store := newBannerStore()
	store.saveErr = assert.AnError
	uc := NewTicketUseCase(proxy, store, nil)

	err := uc.SendTicketEmail(context.Background(), validTicketForm())
	assert.NoError(t, err, "the email is already queued; a store failure is log-only")
}

func TestSendTicketEmail_EmptyBannerIsNotPersisted(t *testing.T) {
	proxy := &stubProxy{}
	store := newBannerStore()
	uc := NewTicketUseCase(proxy, store, nil)

	form := validTicketForm()
	form.Banner = ""

	require.NoError(t, uc.SendTicketEmail(context.Background(), form))
	assert.Empty(t, store.banners)
}

func TestTicketImages(t *testing.T) {
	proxy := &stubProxy{images: []string{"https://tickets.example.com/ABC123/1.png"}}
	uc := NewTicketUseCase(proxy, nil, nil)

	urls, err := uc.TicketImages(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Len(t, urls, 1)
}

func TestTicketImages_RejectsMalformedPNR(t *testing.T) {
	proxy := &stubProxy{}
	uc := NewTicketUseCase(proxy, nil, nil)

	for _, pnr := range []string{"", "ABC12", "ABC1234"} {
		_, err := uc.TicketImages(context.Background(), pnr)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	}
}
