package service

import (
	"context"
	"errors"
	"sync"

	"moments-offers/internal/core/logger"
	"moments-offers/internal/features/offers/carousel"
	"moments-offers/internal/features/offers/domain"
	"moments-offers/internal/features/offers/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned when no session exists for an id.
var ErrSessionNotFound = errors.New("session not found")

// session pairs a carousel with the request that created it, so an
// errored session can be reloaded with the same parameters.
type session struct {
	carousel *carousel.Carousel
	request  domain.LoadRequest
}

// SessionServiceImpl implements ports.SessionService. It owns one
// carousel per session id; each carousel serializes its own state
// transitions, so the registry only guards the id map.
type SessionServiceImpl struct {
	gateway ports.OffersGateway
	sink    ports.BeaconSink

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(gateway ports.OffersGateway, sink ports.BeaconSink) *SessionServiceImpl {
	return &SessionServiceImpl{
		gateway:  gateway,
		sink:     sink,
		sessions: make(map[string]*session),
	}
}

// CreateSession validates the request, creates a carousel and performs
// the initial load. Validation failures are returned without creating a
// session; a gateway failure still creates the session in the ERRORED
// phase so the caller can reload it.
func (s *SessionServiceImpl) CreateSession(ctx context.Context, req domain.LoadRequest) (*ports.SessionState, error) {
	c := carousel.New(s.gateway, s.sink)
	if err := c.Load(ctx, req); err != nil {
		return nil, err
	}

	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &session{carousel: c, request: req}
	s.mu.Unlock()

	logger.Get().Info("Carousel session created",
		zap.String("session_id", id),
		zap.String("phase", string(c.Phase())),
	)

	return snapshot(id, c), nil
}

// Reload retries the session's original load request. This is the
// retry path for sessions sitting in the ERRORED phase.
func (s *SessionServiceImpl) Reload(ctx context.Context, id string) (*ports.SessionState, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if err := sess.carousel.Load(ctx, sess.request); err != nil {
		return nil, err
	}

	return snapshot(id, sess.carousel), nil
}

// State returns the current snapshot of a session.
func (s *SessionServiceImpl) State(id string) (*ports.SessionState, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return snapshot(id, sess.carousel), nil
}

// Next advances the session to the next offer.
func (s *SessionServiceImpl) Next(id string) (*ports.NavigationResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	atEnd, err := sess.carousel.GoNext()
	if err != nil {
		return nil, err
	}

	return &ports.NavigationResult{AtBoundary: atEnd, State: snapshot(id, sess.carousel)}, nil
}

// Previous moves the session back to the previous offer.
func (s *SessionServiceImpl) Previous(id string) (*ports.NavigationResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	atStart, err := sess.carousel.GoPrevious()
	if err != nil {
		return nil, err
	}

	return &ports.NavigationResult{AtBoundary: atStart, State: snapshot(id, sess.carousel)}, nil
}

// Accept applies the positive CTA to the current offer.
func (s *SessionServiceImpl) Accept(id string) (*ports.InteractionResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	result, err := sess.carousel.AcceptCurrent()
	if err != nil {
		return nil, err
	}

	return &ports.InteractionResult{OpenURL: result.OpenURL, State: snapshot(id, sess.carousel)}, nil
}

// Decline applies the negative CTA to the current offer.
func (s *SessionServiceImpl) Decline(id string) (*ports.InteractionResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	result, err := sess.carousel.DeclineCurrent()
	if err != nil {
		return nil, err
	}

	return &ports.InteractionResult{OpenURL: result.OpenURL, State: snapshot(id, sess.carousel)}, nil
}

// Close explicitly ends the session. The session stays in the registry
// so its terminal state remains observable until Remove.
func (s *SessionServiceImpl) Close(id string) (*ports.SessionState, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if err := sess.carousel.CloseCurrent(); err != nil {
		return nil, err
	}

	return snapshot(id, sess.carousel), nil
}

// Remove closes the session if it is still open and discards it.
func (s *SessionServiceImpl) Remove(id string) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}

	// best effort: an already closed or never-loaded session is fine
	if err := sess.carousel.CloseCurrent(); err != nil && !errors.Is(err, carousel.ErrCannotClose) {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	logger.Get().Info("Carousel session removed", zap.String("session_id", id))
	return nil
}

// get looks up a session by id.
func (s *SessionServiceImpl) get(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// snapshot captures the carousel's observables into a SessionState.
func snapshot(id string, c *carousel.Carousel) *ports.SessionState {
	state := &ports.SessionState{
		ID:           id,
		Phase:        c.Phase(),
		Index:        c.Index(),
		Total:        c.Len(),
		HasNext:      c.HasNext(),
		HasPrevious:  c.HasPrevious(),
		ErrorMessage: c.ErrorMessage(),
		Styles:       c.Styles(),
	}

	if offer, ok := c.CurrentOffer(); ok {
		state.CurrentOffer = &offer
	}

	return state
}
