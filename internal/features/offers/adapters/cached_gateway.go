package adapters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"moments-offers/internal/core/cache"
	"moments-offers/internal/core/logger"
	"moments-offers/internal/features/offers/domain"
	"moments-offers/internal/features/offers/ports"

	"go.uber.org/zap"
)

// CachedGateway decorates an OffersGateway with a short-lived response
// cache. The cache is best-effort: read and write failures are logged
// and the inner gateway is consulted as if no cache existed.
type CachedGateway struct {
	inner ports.OffersGateway
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedGateway creates a new CachedGateway around inner.
func NewCachedGateway(inner ports.OffersGateway, c cache.Cache, ttl time.Duration) *CachedGateway {
	return &CachedGateway{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// FetchOffers returns a cached offer set for an identical request when
// one is still fresh, and fills the cache on a miss.
func (g *CachedGateway) FetchOffers(ctx context.Context, req domain.LoadRequest) (*domain.OfferSet, error) {
	key := cacheKey(req)

	if data, err := g.cache.Get(ctx, key); err == nil {
		var set domain.OfferSet
		if err := json.Unmarshal(data, &set); err == nil {
			return &set, nil
		}
		// corrupt entry, fall through to the gateway
		logger.Get().Warn("Discarding corrupt cached offer set", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Get().Warn("Offer cache read failed", zap.Error(err))
	}

	set, err := g.inner.FetchOffers(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(set); err == nil {
		if err := g.cache.Set(ctx, key, data, g.ttl); err != nil {
			logger.Get().Warn("Offer cache write failed", zap.Error(err))
		}
	}

	return set, nil
}

// cacheKey fingerprints a load request: the API key, the variant
// parameters and the payload with its keys in deterministic order.
func cacheKey(req domain.LoadRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s|%t",
		req.APIKey, req.LoyaltyBoost, req.Creative, req.CampaignID, req.DevelopmentMode)

	keys := make([]string, 0, len(req.Payload))
	for k := range req.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "|%s=%s", k, req.Payload[k])
	}

	return "offers:" + hex.EncodeToString(h.Sum(nil))
}
