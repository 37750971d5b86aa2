package domain

import "context"

// AgentProfile holds a ticketing agent's identity and per-agent pricing
// figures. It is read-only to the fare pipeline; the only field this service
// ever writes back is Banner.
type AgentProfile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LinkFacebook string `json:"linkfacebook,omitempty"`
	Role         string `json:"role,omitempty"`
	Status       string `json:"status,omitempty"`

	// Banner is the agent's free-text footer for ticket emails. Persisted
	// after each successful ticket-email submission for reuse.
	Banner string `json:"banner,omitempty"`

	// PriceMarkup is an account-level informational figure. It is surfaced on
	// the profile endpoint but deliberately not part of the per-fare price
	// adjustment.
	PriceMarkup int64 `json:"price_markup"`

	// PriceVJ and PriceVNA are per-airline surcharges added to the base fare.
	PriceVJ  int64 `json:"price_vj"`
	PriceVNA int64 `json:"price_vna"`

	// PriceOW and PriceRT are per-trip-type fees: exactly one of the two is
	// added depending on whether the fare has a return leg.
	PriceOW int64 `json:"price_ow"`
	PriceRT int64 `json:"price_rt"`
}

// ProfileStore is the external agent store this service reads markups from
// and writes banners and search history to. The identity service owns the
// records; this service only touches the fields named here.
type ProfileStore interface {
	// GetProfile loads an agent's profile. Returns ErrProfileNotFound when
	// the agent has no stored profile.
	GetProfile(ctx context.Context, agentID string) (*AgentProfile, error)

	// SaveBanner persists the agent's ticket-email banner for reuse.
	SaveBanner(ctx context.Context, agentID, banner string) error

	// RecordSearch appends one executed search to the agent's history.
	RecordSearch(ctx context.Context, rec SearchRecord) error

	// RecentSearches returns the agent's most recent searches, newest first,
	// capped at limit.
	RecentSearches(ctx context.Context, agentID string, limit int) ([]SearchRecord, error)
}
