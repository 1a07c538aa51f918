package domain

import "encoding/json"

// Beacons holds per-offer tracking URLs fired on lifecycle events.
// An empty URL means "do not fire", never an error.
type Beacons struct {
	// Close is fired when the carousel session ends on this offer.
	Close string `json:"close,omitempty"`
	// NoThanksClick is fired when the user declines this offer.
	NoThanksClick string `json:"no_thanks_click,omitempty"`
}

// Offer is one promotional unit returned by the Moments API.
type Offer struct {
	// ID is the opaque upstream identifier for the offer.
	ID string `json:"id"`
	// Title is the headline shown with the offer.
	Title string `json:"title,omitempty"`
	// Description is the supporting copy shown with the offer.
	Description string `json:"description,omitempty"`
	// ImageURL is the creative image for the offer.
	ImageURL string `json:"image_url,omitempty"`
	// ClickURL is opened externally when the user accepts the offer.
	ClickURL string `json:"click_url,omitempty"`
	// CTAYes is the label for the positive call-to-action button.
	CTAYes string `json:"cta_yes,omitempty"`
	// CTANo is the label for the negative call-to-action button.
	CTANo string `json:"cta_no,omitempty"`
	// Beacons holds the decline/close tracking URLs.
	Beacons Beacons `json:"beacons,omitempty"`
	// Pixel is the impression tracking URL fired when the offer becomes current.
	Pixel string `json:"pixel,omitempty"`
	// AdvPixelURL is the advertiser impression pixel, fired together with Pixel.
	AdvPixelURL string `json:"adv_pixel_url,omitempty"`
}

// ImpressionURLs returns the tracking URLs to fire when this offer
// becomes the currently displayed one. Absent URLs are skipped.
func (o Offer) ImpressionURLs() []string {
	urls := make([]string, 0, 2)
	if o.Pixel != "" {
		urls = append(urls, o.Pixel)
	}
	if o.AdvPixelURL != "" {
		urls = append(urls, o.AdvPixelURL)
	}
	return urls
}

// OfferSet is the ordered, immutable result of one gateway fetch.
// Navigation only ever moves an index over it; the sequence itself
// is never mutated after creation.
type OfferSet struct {
	// Offers is the display-ordered offer sequence, as returned upstream.
	Offers []Offer `json:"offers"`
	// Styles is the opaque style bundle, passed through unmodified
	// to the rendering layer.
	Styles json.RawMessage `json:"styles,omitempty"`
}

// IsEmpty reports whether the set contains no offers.
func (s *OfferSet) IsEmpty() bool {
	return s == nil || len(s.Offers) == 0
}
