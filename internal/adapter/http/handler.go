package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/hanvietair/flight-fare-service/internal/adapter/http/response"
	"github.com/hanvietair/flight-fare-service/internal/domain"
	"github.com/hanvietair/flight-fare-service/internal/infrastructure/logger"
	"github.com/hanvietair/flight-fare-service/internal/usecase"
)

// recentSearchesLimit is how many history rows the agent endpoints return.
const recentSearchesLimit = 10

// FareHandler handles the fare search, ticketing, and agent endpoints.
type FareHandler struct {
	search  usecase.FareSearchUseCase
	tickets usecase.TicketUseCase
	store   domain.ProfileStore
	log     *logger.Logger
}

// NewFareHandler creates a FareHandler. The store may be nil; agent lookups
// then answer not-found and search results carry base prices.
func NewFareHandler(search usecase.FareSearchUseCase, tickets usecase.TicketUseCase, store domain.ProfileStore, log *logger.Logger) *FareHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FareHandler{
		search:  search,
		tickets: tickets,
		store:   store,
		log:     log,
	}
}

// SearchFares handles POST /api/v1/fares/search
//
// @Summary Search fares
// @Description Queries both airlines concurrently and returns normalized, agent-priced, filtered fares
// @Tags fares
// @Accept json
// @Produce json
// @Param request body SearchFaresRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/fares/search [post]
func (h *FareHandler) SearchFares(c echo.Context) error {
	var req SearchFaresRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	profile := h.loadProfile(ctx, req.AgentID)

	result, err := h.search.Search(ctx, ToDomainCriteria(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchResponseDTO(result, profile))
}

// SendTicketEmail handles POST /api/v1/tickets/email
//
// @Summary Queue a ticket email
// @Description Validates the form, parses PNRs, and queues the email with the ticket proxy
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body TicketEmailDTO true "Ticket email form"
// @Success 202 {object} response.StatusResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Proxy rejected the request"
// @Router /api/v1/tickets/email [post]
func (h *FareHandler) SendTicketEmail(c echo.Context) error {
	var req TicketEmailDTO
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := h.tickets.SendTicketEmail(c.Request().Context(), req.ToForm()); err != nil {
		return h.handleError(c, err)
	}

	return response.Queued(c)
}

// TicketImages handles GET /api/v1/tickets/images/:pnr
//
// @Summary Fetch ticket face images
// @Description Looks up the ticket face image URLs for one PNR
// @Tags tickets
// @Produce json
// @Param pnr path string true "6-character PNR"
// @Success 200 {object} TicketImagesDTO
// @Failure 400 {object} response.ErrorDetail "Malformed PNR"
// @Failure 502 {object} response.ErrorDetail "Proxy rejected the request"
// @Router /api/v1/tickets/images/{pnr} [get]
func (h *FareHandler) TicketImages(c echo.Context) error {
	pnr := c.Param("pnr")

	images, err := h.tickets.TicketImages(c.Request().Context(), pnr)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &TicketImagesDTO{PNR: pnr, Images: images})
}

// GetProfile handles GET /api/v1/agents/:id/profile
//
// @Summary Get an agent profile
// @Description Returns the agent's identity, markups, and saved banner
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} domain.AgentProfile
// @Failure 404 {object} response.ErrorDetail "Unknown agent"
// @Router /api/v1/agents/{id}/profile [get]
func (h *FareHandler) GetProfile(c echo.Context) error {
	if h.store == nil {
		return response.NotFound(c, "agent profile not found")
	}

	profile, err := h.store.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "agent profile not found")
		}
		return h.handleError(c, err)
	}

	return response.OK(c, profile)
}

// RecentSearches handles GET /api/v1/agents/:id/searches
//
// @Summary Get an agent's recent searches
// @Description Returns the agent's latest search history, newest first
// @Tags agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} RecentSearchesDTO
// @Router /api/v1/agents/{id}/searches [get]
func (h *FareHandler) RecentSearches(c echo.Context) error {
	agentID := c.Param("id")

	var searches []domain.SearchRecord
	if h.store != nil {
		var err error
		searches, err = h.store.RecentSearches(c.Request().Context(), agentID, recentSearchesLimit)
		if err != nil {
			return h.handleError(c, err)
		}
	}
	if searches == nil {
		searches = []domain.SearchRecord{}
	}

	return response.OK(c, &RecentSearchesDTO{AgentID: agentID, Searches: searches})
}

// Health handles GET /health.
func (h *FareHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// loadProfile fetches the agent's profile for display pricing. A missing or
// unreadable profile is not an error; the search proceeds with base prices.
func (h *FareHandler) loadProfile(ctx context.Context, agentID string) *domain.AgentProfile {
	if h.store == nil || agentID == "" {
		return nil
	}

	profile, err := h.store.GetProfile(ctx, agentID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			h.log.WithAgent(agentID).Warn().Err(err).Msg("Failed to load agent profile")
		}
		return nil
	}
	return profile
}

// handleValidationError answers 400 with field details when available.
func (h *FareHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *FareHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrProxyRejected):
		return response.ProxyRejected(c)
	case errors.Is(err, domain.ErrNoProviders):
		return response.InternalServerError(c)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return response.GatewayTimeout(c)
	default:
		h.log.Error().Err(err).Msg("Unhandled request error")
		return response.InternalServerError(c)
	}
}
