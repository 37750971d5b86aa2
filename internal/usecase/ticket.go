package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
)

// TicketProxy is the outbound contract of the ticket-delivery proxy: queueing
// ticket emails and fetching ticket face images by PNR.
type TicketProxy interface {
	// SendTicketEmail queues one ticket email with the proxy. Returns
	// domain.ErrProxyRejected when the proxy answers anything but success.
	SendTicketEmail(ctx context.Context, req TicketEmailRequest) error

	// TicketImages fetches the ticket face image URLs for one PNR.
	TicketImages(ctx context.Context, pnr string) ([]string, error)
}

// TicketEmailForm is an agent's raw ticket-email submission, prior to
// validation and PNR parsing.
type TicketEmailForm struct {
	// AgentID attributes the submission; the banner is persisted to this
	// agent's profile on success.
	AgentID string `json:"agentId"`

	// Email is the recipient address. Required.
	Email string `json:"email"`

	// CustomerName is the passenger's display name. Required.
	CustomerName string `json:"customerName"`

	// Salutation is the honorific used in the email. Required.
	Salutation string `json:"salutation"`

	// Phone is the passenger's phone number. Optional.
	Phone string `json:"phone,omitempty"`

	// SendCombined sends one email covering all PNRs instead of one email
	// per passenger.
	SendCombined bool `json:"sendCombined"`

	// PNRs is the raw PNR input: one or more 6-character booking references
	// separated by whitespace, "-", or ";".
	PNRs string `json:"pnrs"`

	// Banner is the agent's free-text footer. Persisted for reuse.
	Banner string `json:"banner,omitempty"`
}

// TicketEmailRequest is the validated, parsed submission handed to the proxy.
type TicketEmailRequest struct {
	PNRs         []string
	Email        string
	CustomerName string
	Salutation   string
	Phone        string
	SendCombined bool
	Banner       string
}

// TicketUseCase defines the ticketing-assistance operations.
type TicketUseCase interface {
	// SendTicketEmail validates the form, parses its PNRs, submits to the
	// proxy, and on success persists the agent's banner. Validation failures
	// are rejected before any network call is made.
	SendTicketEmail(ctx context.Context, form TicketEmailForm) error

	// TicketImages fetches ticket face images for one PNR.
	TicketImages(ctx context.Context, pnr string) ([]string, error)
}

type ticketUseCase struct {
	proxy TicketProxy
	store domain.ProfileStore
	log   *logger.Logger
}

// NewTicketUseCase creates a ticket use case. The store may be nil, which
// disables banner persistence.
func NewTicketUseCase(proxy TicketProxy, store domain.ProfileStore, log *logger.Logger) TicketUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ticketUseCase{proxy: proxy, store: store, log: log}
}

// pnrSeparators splits raw PNR input on whitespace, "-", and ";".
var pnrSeparators = regexp.MustCompile(`[\s\-;]+`)

// pnrLength is the exact length of a Passenger Name Record.
const pnrLength = 6

// ParsePNRs splits a raw PNR string into individual booking references.
// Tokens that are not exactly six characters are silently dropped; the
// caller decides whether an empty result is an error.
func ParsePNRs(raw string) []string {
	pnrs := make([]string, 0)
	for _, token := range pnrSeparators.Split(raw, -1) {
		if len(token) == pnrLength {
			pnrs = append(pnrs, token)
		}
	}
	return pnrs
}

// SendTicketEmail implements TicketUseCase.SendTicketEmail.
func (uc *ticketUseCase) SendTicketEmail(ctx context.Context, form TicketEmailForm) error {
	if form.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	if form.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", domain.ErrInvalidRequest)
	}
	if form.Salutation == "" {
		return fmt.Errorf("%w: salutation is required", domain.ErrInvalidRequest)
	}
	if form.PNRs == "" {
		return fmt.Errorf("%w: pnrs is required", domain.ErrInvalidRequest)
	}

	pnrs := ParsePNRs(form.PNRs)
	if len(pnrs) == 0 {
		return fmt.Errorf("%w: at least one valid 6-character PNR is required", domain.ErrInvalidRequest)
	}

	req := TicketEmailRequest{
		PNRs:         pnrs,
		Email:        form.Email,
		CustomerName: form.CustomerName,
		Salutation:   form.Salutation,
		Phone:        form.Phone,
		SendCombined: form.SendCombined,
		Banner:       form.Banner,
	}

	if err := uc.proxy.SendTicketEmail(ctx, req); err != nil {
		return err
	}

	uc.persistBanner(ctx, form.AgentID, form.Banner)
	return nil
}

// TicketImages implements TicketUseCase.TicketImages.
func (uc *ticketUseCase) TicketImages(ctx context.Context, pnr string) ([]string, error) {
	if len(pnr) != pnrLength {
		return nil, fmt.Errorf("%w: pnr must be exactly %d characters", domain.ErrInvalidRequest, pnrLength)
	}
	return uc.proxy.TicketImages(ctx, pnr)
}

// persistBanner saves the banner for reuse on the agent's next submission.
// Persistence failures are logged, never surfaced: the email is already
// queued at this point.
func (uc *ticketUseCase) persistBanner(ctx context.Context, agentID, banner string) {
	if uc.store == nil || agentID == "" || banner == "" {
		return
	}
	if err := uc.store.SaveBanner(ctx, agentID, banner); err != nil {
		uc.log.WithAgent(agentID).Warn().Err(err).Msg("Failed to persist banner")
	}
}

// Ensure ticketUseCase implements TicketUseCase at compile time.
var _ TicketUseCase = (*ticketUseCase)(nil)
