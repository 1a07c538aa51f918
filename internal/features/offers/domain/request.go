package domain

import "errors"

var (
	// ErrMissingAPIKey is returned when a load request carries no API key.
	ErrMissingAPIKey = errors.New("api key is required")
	// ErrInvalidLoyaltyBoost is returned when loyaltyboost is outside {0,1,2}.
	ErrInvalidLoyaltyBoost = errors.New("loyaltyboost must be 0, 1 or 2")
	// ErrInvalidCreative is returned when creative is outside {0,1}.
	ErrInvalidCreative = errors.New("creative must be 0 or 1")
)

// LoadRequest describes one offers fetch against the Moments API.
// LoyaltyBoost and Creative are optional; the empty string means absent.
type LoadRequest struct {
	// APIKey is the publisher's Moments API key.
	APIKey string `json:"api_key"`
	// LoyaltyBoost selects the loyalty-boost placement variant ("0", "1" or "2").
	LoyaltyBoost string `json:"loyaltyboost,omitempty"`
	// Creative selects the creative variant ("0" or "1").
	Creative string `json:"creative,omitempty"`
	// CampaignID targets a specific campaign when set.
	CampaignID string `json:"campaign_id,omitempty"`
	// DevelopmentMode marks the request as a test; it is forwarded
	// upstream as dev="1" in the payload.
	DevelopmentMode bool `json:"development,omitempty"`
	// Payload carries arbitrary extra attributes forwarded verbatim
	// upstream (user fingerprint, publisher user id, placement, ua, ...).
	Payload map[string]string `json:"payload,omitempty"`
}

// Validate checks the request parameters before any network call is made.
func (r LoadRequest) Validate() error {
	if r.APIKey == "" {
		return ErrMissingAPIKey
	}

	switch r.LoyaltyBoost {
	case "", "0", "1", "2":
	default:
		return ErrInvalidLoyaltyBoost
	}

	switch r.Creative {
	case "", "0", "1":
	default:
		return ErrInvalidCreative
	}

	return nil
}
