package service

import (
	"context"
	"errors"
	"testing"

	"moments-offers/internal/features/offers/carousel"
	"moments-offers/internal/features/offers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOffersGateway is a mock implementation of ports.OffersGateway
type MockOffersGateway struct {
	mock.Mock
}

func (m *MockOffersGateway) FetchOffers(ctx context.Context, req domain.LoadRequest) (*domain.OfferSet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfferSet), args.Error(1)
}

// MockBeaconSink is a mock implementation of ports.BeaconSink
type MockBeaconSink struct {
	mock.Mock
}

func (m *MockBeaconSink) Fire(ctx context.Context, url string) {
	m.Called(ctx, url)
}

func permissiveSink() *MockBeaconSink {
	sink := new(MockBeaconSink)
	sink.On("Fire", mock.Anything, mock.Anything).Return()
	return sink
}

func twoOffers() *domain.OfferSet {
	return &domain.OfferSet{
		Offers: []domain.Offer{
			{ID: "a", ClickURL: "https://shop.example/a", Pixel: "pixel-a"},
			{ID: "b", ClickURL: "https://shop.example/b", Beacons: domain.Beacons{Close: "close-b"}},
		},
		Styles: []byte(`{"popup":{}}`),
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gateway := new(MockOffersGateway)
		gateway.On("FetchOffers", mock.Anything, mock.Anything).Return(twoOffers(), nil).Once()
		svc := NewSessionService(gateway, permissiveSink())

		state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
		require.NoError(t, err)
		require.NotNil(t, state)

		assert.NotEmpty(t, state.ID)
		assert.Equal(t, domain.PhaseDisplaying, state.Phase)
		assert.Equal(t, 0, state.Index)
		assert.Equal(t, 2, state.Total)
		assert.True(t, state.HasNext)
		assert.False(t, state.HasPrevious)
		require.NotNil(t, state.CurrentOffer)
		assert.Equal(t, "a", state.CurrentOffer.ID)
		assert.JSONEq(t, `{"popup":{}}`, string(state.Styles))
	})

	t.Run("ValidationError", func(t *testing.T) {
		gateway := new(MockOffersGateway)
		svc := NewSessionService(gateway, permissiveSink())

		state, err := svc.CreateSession(context.Background(), domain.LoadRequest{LoyaltyBoost: "9"})
		assert.Error(t, err)
		assert.Nil(t, state)
		gateway.AssertNotCalled(t, "FetchOffers", mock.Anything, mock.Anything)
	})

	t.Run("GatewayErrorStillCreatesSession", func(t *testing.T) {
		gateway := new(MockOffersGateway)
		gateway.On("FetchOffers", mock.Anything, mock.Anything).
			Return(nil, errors.New("upstream down")).Once()
		svc := NewSessionService(gateway, permissiveSink())

		state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseErrored, state.Phase)
		assert.Equal(t, "upstream down", state.ErrorMessage)

		// the errored session is still addressable for a retry
		got, err := svc.State(state.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseErrored, got.Phase)
	})
}

func TestSessionService_Reload(t *testing.T) {
	gateway := new(MockOffersGateway)
	gateway.On("FetchOffers", mock.Anything, mock.Anything).
		Return(nil, errors.New("network down")).Once()
	gateway.On("FetchOffers", mock.Anything, mock.Anything).Return(twoOffers(), nil).Once()
	svc := NewSessionService(gateway, permissiveSink())

	state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
	require.NoError(t, err)
	require.Equal(t, domain.PhaseErrored, state.Phase)

	reloaded, err := svc.Reload(context.Background(), state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseDisplaying, reloaded.Phase)
	assert.Equal(t, 0, reloaded.Index)
	gateway.AssertExpectations(t)
}

func TestSessionService_Navigation(t *testing.T) {
	gateway := new(MockOffersGateway)
	gateway.On("FetchOffers", mock.Anything, mock.Anything).Return(twoOffers(), nil).Once()
	svc := NewSessionService(gateway, permissiveSink())

	state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
	require.NoError(t, err)

	next, err := svc.Next(state.ID)
	require.NoError(t, err)
	assert.False(t, next.AtBoundary)
	assert.Equal(t, 1, next.State.Index)

	// already at the last offer
	next, err = svc.Next(state.ID)
	require.NoError(t, err)
	assert.True(t, next.AtBoundary)
	assert.Equal(t, 1, next.State.Index)

	prev, err := svc.Previous(state.ID)
	require.NoError(t, err)
	assert.False(t, prev.AtBoundary)
	assert.Equal(t, 0, prev.State.Index)

	prev, err = svc.Previous(state.ID)
	require.NoError(t, err)
	assert.True(t, prev.AtBoundary)
}

func TestSessionService_AcceptDecline(t *testing.T) {
	gateway := new(MockOffersGateway)
	gateway.On("FetchOffers", mock.Anything, mock.Anything).Return(twoOffers(), nil).Once()
	sink := permissiveSink()
	svc := NewSessionService(gateway, sink)

	state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
	require.NoError(t, err)

	accepted, err := svc.Accept(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/a", accepted.OpenURL)
	assert.Equal(t, domain.PhaseDisplaying, accepted.State.Phase)
	assert.Equal(t, 1, accepted.State.Index)

	declined, err := svc.Decline(state.ID)
	require.NoError(t, err)
	assert.Empty(t, declined.OpenURL)
	assert.Equal(t, domain.PhaseClosed, declined.State.Phase)
	sink.AssertCalled(t, "Fire", mock.Anything, "close-b")
}

func TestSessionService_CloseAndRemove(t *testing.T) {
	gateway := new(MockOffersGateway)
	gateway.On("FetchOffers", mock.Anything, mock.Anything).Return(twoOffers(), nil).Once()
	svc := NewSessionService(gateway, permissiveSink())

	state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
	require.NoError(t, err)

	closed, err := svc.Close(state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseClosed, closed.Phase)

	// closed but not removed: still observable
	got, err := svc.State(state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseClosed, got.Phase)

	require.NoError(t, svc.Remove(state.ID))

	_, err = svc.State(state.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_WrongPhase(t *testing.T) {
	gateway := new(MockOffersGateway)
	gateway.On("FetchOffers", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).Once()
	svc := NewSessionService(gateway, permissiveSink())

	state, err := svc.CreateSession(context.Background(), domain.LoadRequest{APIKey: "pk_test"})
	require.NoError(t, err)

	_, err = svc.Next(state.ID)
	assert.ErrorIs(t, err, carousel.ErrNotDisplaying)

	_, err = svc.Accept(state.ID)
	assert.ErrorIs(t, err, carousel.ErrNotDisplaying)

	// closing an errored session is allowed
	closed, err := svc.Close(state.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseClosed, closed.Phase)
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc := NewSessionService(new(MockOffersGateway), permissiveSink())

	_, err := svc.State("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Next("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.Remove("missing"), ErrSessionNotFound)
}
