package carousel

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"moments-offers/internal/features/offers/domain"
	"moments-offers/internal/features/offers/ports"
)

var (
	// ErrNotDisplaying is returned when a navigation or interaction is
	// attempted while no offer is currently displayed.
	ErrNotDisplaying = errors.New("no offer is currently displaying")
	// ErrCannotClose is returned when Close is attempted outside the
	// DISPLAYING and ERRORED phases.
	ErrCannotClose = errors.New("session cannot be closed in its current phase")
)

// msgNoOffers is the error message surfaced when a fetch succeeds
// but returns zero offers.
const msgNoOffers = "no offers available"

// Interaction is the outcome of an accept or decline on the current offer.
type Interaction struct {
	// OpenURL is the click-through URL the host should open externally.
	// The carousel never performs navigation itself.
	OpenURL string
	// Closed reports whether the interaction ended the session.
	Closed bool
}

// Carousel owns the ordered offer set and the current position for one
// session, and fires tracking beacons as a side effect of transitions.
//
// All state transitions are serialized; beacon fires are delegated to
// the sink and never block a transition. A Carousel is retired by its
// owner, not by any error: every failure leaves it retryable via Load.
type Carousel struct {
	gateway ports.OffersGateway
	sink    ports.BeaconSink

	mu     sync.Mutex
	phase  domain.Phase
	set    *domain.OfferSet
	index  int
	errMsg string
}

// New creates an idle Carousel backed by the given gateway and sink.
func New(gateway ports.OffersGateway, sink ports.BeaconSink) *Carousel {
	return &Carousel{
		gateway: gateway,
		sink:    sink,
		phase:   domain.PhaseIdle,
	}
}

// Load validates the request, fetches offers and, on success, starts
// displaying at index 0, firing the first offer's impression beacons.
//
// Validation failures are returned synchronously without touching the
// phase. Fetch failures and empty offer sets are captured into the
// ERRORED phase instead of being returned; ErrorMessage surfaces them.
// Calling Load while a fetch is already in flight drops the new call.
func (c *Carousel) Load(ctx context.Context, req domain.LoadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.phase == domain.PhaseLoading {
		c.mu.Unlock()
		return nil
	}
	c.phase = domain.PhaseLoading
	c.set = nil
	c.index = 0
	c.errMsg = ""
	c.mu.Unlock()

	set, err := c.gateway.FetchOffers(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.phase = domain.PhaseErrored
		c.errMsg = err.Error()
		return nil
	}

	if set.IsEmpty() {
		c.phase = domain.PhaseErrored
		c.errMsg = msgNoOffers
		return nil
	}

	c.set = set
	c.index = 0
	c.phase = domain.PhaseDisplaying
	c.fireImpressions(ctx, set.Offers[0])

	return nil
}

// GoNext advances to the next offer and fires its impression beacons.
// At the last offer it is a pure peek: the index stays put, nothing
// fires, and atEnd is reported.
func (c *Carousel) GoNext() (atEnd bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseDisplaying {
		return false, ErrNotDisplaying
	}

	if c.index == len(c.set.Offers)-1 {
		return true, nil
	}

	c.index++
	c.fireImpressions(context.Background(), c.set.Offers[c.index])
	return false, nil
}

// GoPrevious moves back one offer and fires its impression beacons.
// At the first offer it is a no-op and reports atStart.
func (c *Carousel) GoPrevious() (atStart bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseDisplaying {
		return false, ErrNotDisplaying
	}

	if c.index == 0 {
		return true, nil
	}

	c.index--
	c.fireImpressions(context.Background(), c.set.Offers[c.index])
	return false, nil
}

// AcceptCurrent handles the positive CTA on the current offer. It
// returns the offer's click-through URL for the host to open. On the
// last offer it fires the offer's close beacon and ends the session;
// otherwise it advances exactly like GoNext.
func (c *Carousel) AcceptCurrent() (Interaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseDisplaying {
		return Interaction{}, ErrNotDisplaying
	}

	offer := c.set.Offers[c.index]
	result := Interaction{OpenURL: offer.ClickURL}
	result.Closed = c.advanceOrClose(offer)
	return result, nil
}

// DeclineCurrent handles the negative CTA on the current offer. It
// fires the offer's no-thanks beacon regardless of position, then
// applies the same boundary rule as AcceptCurrent.
func (c *Carousel) DeclineCurrent() (Interaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseDisplaying {
		return Interaction{}, ErrNotDisplaying
	}

	offer := c.set.Offers[c.index]
	if offer.Beacons.NoThanksClick != "" {
		c.sink.Fire(context.Background(), offer.Beacons.NoThanksClick)
	}

	return Interaction{Closed: c.advanceOrClose(offer)}, nil
}

// CloseCurrent explicitly ends the session. It fires the current
// offer's close beacon when one exists and unconditionally moves to
// CLOSED. Allowed while displaying or errored.
func (c *Carousel) CloseCurrent() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case domain.PhaseDisplaying:
		if url := c.set.Offers[c.index].Beacons.Close; url != "" {
			c.sink.Fire(context.Background(), url)
		}
	case domain.PhaseErrored:
		// no current offer, nothing to fire
	default:
		return ErrCannotClose
	}

	c.phase = domain.PhaseClosed
	return nil
}

// advanceOrClose applies the shared accept/decline transition rule:
// on the last offer fire its close beacon and end the session, else
// step forward and fire the new offer's impression beacons.
// Caller must hold the mutex. Reports whether the session closed.
func (c *Carousel) advanceOrClose(current domain.Offer) bool {
	if c.index == len(c.set.Offers)-1 {
		if current.Beacons.Close != "" {
			c.sink.Fire(context.Background(), current.Beacons.Close)
		}
		c.phase = domain.PhaseClosed
		return true
	}

	c.index++
	c.fireImpressions(context.Background(), c.set.Offers[c.index])
	return false
}

// fireImpressions dispatches the offer's impression pixels. Each URL is
// fired independently; the carousel never observes the outcome.
// Caller must hold the mutex.
func (c *Carousel) fireImpressions(ctx context.Context, offer domain.Offer) {
	for _, url := range offer.ImpressionURLs() {
		c.sink.Fire(ctx, url)
	}
}

// Phase returns the session's lifecycle state.
func (c *Carousel) Phase() domain.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// CurrentOffer returns the offer at the current index, if displaying.
func (c *Carousel) CurrentOffer() (domain.Offer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != domain.PhaseDisplaying {
		return domain.Offer{}, false
	}
	return c.set.Offers[c.index], true
}

// Index returns the zero-based position of the current offer.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Len returns the number of offers in the loaded set.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.set == nil {
		return 0
	}
	return len(c.set.Offers)
}

// HasNext reports whether an offer exists after the current one.
func (c *Carousel) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == domain.PhaseDisplaying && c.index < len(c.set.Offers)-1
}

// HasPrevious reports whether an offer exists before the current one.
func (c *Carousel) HasPrevious() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == domain.PhaseDisplaying && c.index > 0
}

// ErrorMessage returns the human-readable failure of the last fetch.
func (c *Carousel) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Styles returns the opaque style bundle of the loaded offer set.
func (c *Carousel) Styles() json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.set == nil {
		return nil
	}
	return c.set.Styles
}
