package ports

import (
	"context"
	"encoding/json"

	"moments-offers/internal/features/offers/domain"
)

// OffersGateway defines the secondary port for fetching offers from
// the upstream Moments API.
type OffersGateway interface {
	// FetchOffers retrieves the ordered offer set for a request.
	// A successful call may still return an empty set; deciding what
	// that means is the caller's concern.
	FetchOffers(ctx context.Context, req domain.LoadRequest) (*domain.OfferSet, error)
}

// BeaconSink defines the secondary port for firing tracking beacons.
// Fires are fire-and-forget: the sink never reports their outcome.
type BeaconSink interface {
	// Fire dispatches an HTTP GET against the tracking URL without
	// blocking the caller on its completion.
	Fire(ctx context.Context, url string)
}

// SessionService defines the primary port for driving carousel sessions.
type SessionService interface {
	CreateSession(ctx context.Context, req domain.LoadRequest) (*SessionState, error)
	Reload(ctx context.Context, id string) (*SessionState, error)
	State(id string) (*SessionState, error)
	Next(id string) (*NavigationResult, error)
	Previous(id string) (*NavigationResult, error)
	Accept(id string) (*InteractionResult, error)
	Decline(id string) (*InteractionResult, error)
	Close(id string) (*SessionState, error)
	Remove(id string) error
}

// SessionState is a read-only snapshot of one carousel session.
type SessionState struct {
	// ID identifies the session.
	ID string `json:"id"`
	// Phase is the session's lifecycle state.
	Phase domain.Phase `json:"phase"`
	// CurrentOffer is the offer at the current index, if displaying.
	CurrentOffer *domain.Offer `json:"current_offer,omitempty"`
	// Index is the zero-based position of the current offer.
	Index int `json:"index"`
	// Total is the number of offers in the loaded set.
	Total int `json:"total"`
	// HasNext reports whether a next offer exists.
	HasNext bool `json:"has_next"`
	// HasPrevious reports whether a previous offer exists.
	HasPrevious bool `json:"has_previous"`
	// ErrorMessage carries the human-readable fetch failure, if errored.
	ErrorMessage string `json:"error_message,omitempty"`
	// Styles is the opaque style bundle for the rendering layer.
	Styles json.RawMessage `json:"styles,omitempty"`
}

// NavigationResult reports the outcome of a next/previous step.
type NavigationResult struct {
	// AtBoundary is true when the step was a no-op because the carousel
	// was already at the first or last offer.
	AtBoundary bool `json:"at_boundary"`
	// State is the session snapshot after the step.
	State *SessionState `json:"state"`
}

// InteractionResult reports the outcome of an accept/decline interaction.
type InteractionResult struct {
	// OpenURL is the click-through URL the host should open externally.
	// Only set on accept, and only when the offer carries one.
	OpenURL string `json:"open_url,omitempty"`
	// State is the session snapshot after the interaction.
	State *SessionState `json:"state"`
}
