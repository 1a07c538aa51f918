package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"moments-offers/internal/core/cache"
	"moments-offers/internal/features/offers/domain"

	"github.com/alicebob/miniredis/v2"
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

func newTestCache(t *testing.T) cache.Cache {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter
}

func TestCachedGateway_FetchOffers(t *testing.T) {
	ctx := context.Background()
	req := domain.LoadRequest{APIKey: "pk_test", Payload: map[string]string{"placement": "checkout"}}
	set := &domain.OfferSet{
		Offers: []domain.Offer{{ID: "1", Title: "Cached Offer"}},
		Styles: []byte(`{"popup":{}}`),
	}

	t.Run("MissThenHit", func(t *testing.T) {
		inner := new(MockOffersGateway)
		inner.On("FetchOffers", mock.Anything, req).Return(set, nil).Once()

		gw := NewCachedGateway(inner, newTestCache(t), time.Minute)

		first, err := gw.FetchOffers(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, set.Offers, first.Offers)

		// second identical request is served from the cache
		second, err := gw.FetchOffers(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, set.Offers, second.Offers)
		assert.JSONEq(t, string(set.Styles), string(second.Styles))

		inner.AssertNumberOfCalls(t, "FetchOffers", 1)
	})

	t.Run("DistinctRequestsDistinctKeys", func(t *testing.T) {
		inner := new(MockOffersGateway)
		inner.On("FetchOffers", mock.Anything, mock.Anything).Return(set, nil).Twice()

		gw := NewCachedGateway(inner, newTestCache(t), time.Minute)

		_, err := gw.FetchOffers(ctx, req)
		require.NoError(t, err)

		other := req
		other.LoyaltyBoost = "1"
		_, err = gw.FetchOffers(ctx, other)
		require.NoError(t, err)

		inner.AssertNumberOfCalls(t, "FetchOffers", 2)
	})

	t.Run("GatewayErrorNotCached", func(t *testing.T) {
		inner := new(MockOffersGateway)
		inner.On("FetchOffers", mock.Anything, req).
			Return(nil, errors.New("upstream down")).Once()
		inner.On("FetchOffers", mock.Anything, req).Return(set, nil).Once()

		gw := NewCachedGateway(inner, newTestCache(t), time.Minute)

		_, err := gw.FetchOffers(ctx, req)
		require.Error(t, err)

		got, err := gw.FetchOffers(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, set.Offers, got.Offers)
		inner.AssertExpectations(t)
	})

	t.Run("RedisDownFallsThrough", func(t *testing.T) {
		mr := miniredis.RunT(t)
		adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
		require.NoError(t, err)
		mr.Close()

		inner := new(MockOffersGateway)
		inner.On("FetchOffers", mock.Anything, req).Return(set, nil).Once()

		gw := NewCachedGateway(inner, adapter, time.Minute)

		got, err := gw.FetchOffers(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, set.Offers, got.Offers)
	})
}

func TestCacheKey_PayloadOrderIndependent(t *testing.T) {
	a := domain.LoadRequest{APIKey: "pk", Payload: map[string]string{"x": "1", "y": "2", "z": "3"}}
	b := domain.LoadRequest{APIKey: "pk", Payload: map[string]string{"z": "3", "y": "2", "x": "1"}}

	assert.Equal(t, cacheKey(a), cacheKey(b))

	c := a
	c.Payload = map[string]string{"x": "1", "y": "2", "z": "different"}
	assert.NotEqual(t, cacheKey(a), cacheKey(c))
}
