package geocoder

import (
	"context"
	"strings"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedGeocoder remembers successful resolutions. Failures are never cached.
type CachedGeocoder struct {
	cache    *expirable.LRU[string, model.GeoPlace]
	geocoder port.Geocoder
}

// ResolveAddress implements [port.Geocoder].
func (g *CachedGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	key := normalizeAddress(address)

	if place, exists := g.cache.Get(key); exists {
		metrics.GeocodingCache.WithLabelValues(metrics.ResultHit).Inc()
		return place, nil
	}

	metrics.GeocodingCache.WithLabelValues(metrics.ResultMiss).Inc()

	place, err := g.geocoder.ResolveAddress(ctx, address)
	if err != nil {
		return model.GeoPlace{}, err
	}

	g.cache.Add(key, place)

	return place, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func NewCachedGeocoder(geocoder port.Geocoder, size int, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		cache:    expirable.NewLRU[string, model.GeoPlace](size, nil, ttl),
		geocoder: geocoder,
	}
}

var _ port.Geocoder = &CachedGeocoder{}
