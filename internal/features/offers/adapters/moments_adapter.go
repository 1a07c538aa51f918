package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moments-offers/internal/core/config"
	"moments-offers/internal/core/httpclient"
	"moments-offers/internal/features/offers/domain"
)

// MomentsAdapter implements the OffersGateway interface against the
// Moments/AdsPostX native offers REST API.
type MomentsAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the Moments API connection details.
	config config.MomentsConfig
}

// NewMomentsAdapter creates a new instance of MomentsAdapter.
func NewMomentsAdapter(cfg config.MomentsConfig) *MomentsAdapter {
	return &MomentsAdapter{
		client: httpclient.NewClient(time.Duration(cfg.TimeoutSeconds) * time.Second),
		config: cfg,
	}
}

// FetchOffers requests the offer set for one load request. The API key
// and variant parameters travel as query parameters; the free-form
// payload goes in the JSON body, with dev="1" added in development mode.
func (a *MomentsAdapter) FetchOffers(ctx context.Context, req domain.LoadRequest) (*domain.OfferSet, error) {
	endpoint, err := a.buildURL(req)
	if err != nil {
		return nil, err
	}

	payload := make(map[string]string, len(req.Payload)+2)
	for k, v := range req.Payload {
		payload[k] = v
	}
	if req.CampaignID != "" {
		payload["campaignId"] = req.CampaignID
	}
	if req.DevelopmentMode {
		payload["dev"] = "1"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach moments api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, fmt.Errorf("invalid api key")
		}
		return nil, fmt.Errorf("moments api returned status %d", resp.StatusCode)
	}

	var wire momentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode moments response: %w", err)
	}

	return mapToDomain(wire), nil
}

// buildURL assembles the offers endpoint with the query parameters.
func (a *MomentsAdapter) buildURL(req domain.LoadRequest) (string, error) {
	base := strings.TrimSuffix(a.config.URL, "/")

	u, err := url.Parse(base + "/native/v2/offers.json")
	if err != nil {
		return "", fmt.Errorf("invalid moments api url: %w", err)
	}

	q := u.Query()
	q.Set("api_key", req.APIKey)
	if req.LoyaltyBoost != "" {
		q.Set("loyaltyboost", req.LoyaltyBoost)
	}
	if req.Creative != "" {
		q.Set("creative", req.Creative)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// mapToDomain converts a raw Moments response into a domain OfferSet.
func mapToDomain(wire momentsResponse) *domain.OfferSet {
	offers := make([]domain.Offer, 0, len(wire.Data.Offers))
	for _, o := range wire.Data.Offers {
		offers = append(offers, domain.Offer{
			ID:          o.ID.String(),
			Title:       o.Title,
			Description: o.Description,
			ImageURL:    o.Image,
			ClickURL:    o.ClickURL,
			CTAYes:      o.CTAYes,
			CTANo:       o.CTANo,
			Pixel:       o.Pixel,
			AdvPixelURL: o.AdvPixelURL,
			Beacons: domain.Beacons{
				Close:         o.Beacons.Close,
				NoThanksClick: o.Beacons.NoThanksClick,
			},
		})
	}

	return &domain.OfferSet{
		Offers: offers,
		Styles: wire.Data.Styles,
	}
}

// internal structs for mapping

// momentsResponse represents the JSON envelope of the offers endpoint.
type momentsResponse struct {
	// Data wraps the offer list and the styling payload.
	Data momentsData `json:"data"`
}

// momentsData holds the offer list and the opaque style bundle.
type momentsData struct {
	// Offers is the ordered list of promotional offers.
	Offers []momentsOffer `json:"offers"`
	// Styles is passed through to renderers without interpretation.
	Styles json.RawMessage `json:"styles"`
}

// momentsOffer represents one offer as returned upstream.
type momentsOffer struct {
	// ID is an offerID because variants of the API serve it as either
	// a string or an integer.
	ID          offerID        `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	ClickURL    string         `json:"click_url"`
	CTAYes      string         `json:"cta_yes"`
	CTANo       string         `json:"cta_no"`
	Pixel       string         `json:"pixel"`
	AdvPixelURL string         `json:"adv_pixel_url"`
	Beacons     momentsBeacons `json:"beacons"`
}

// momentsBeacons holds the per-offer tracking URLs.
type momentsBeacons struct {
	Close         string `json:"close"`
	NoThanksClick string `json:"no_thanks_click"`
}

// offerID is a custom helper type that accepts both string and numeric
// identifiers from the upstream API and keeps them as opaque strings.
type offerID string

// UnmarshalJSON parses a string or integer offer identifier.
func (id *offerID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" {
		*id = ""
		return nil
	}
	*id = offerID(s)
	return nil
}

// String returns the identifier as a plain string.
func (id offerID) String() string {
	return string(id)
}
