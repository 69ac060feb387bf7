package geocoder

import (
	"context"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RateLimitedGeocoder struct {
	limiter  *rate.Limiter
	geocoder port.Geocoder
}

// ResolveAddress implements [port.Geocoder].
func (g *RateLimitedGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.WithStack(err))
	}

	return g.geocoder.ResolveAddress(ctx, address)
}

func NewRateLimitedGeocoder(geocoder port.Geocoder, interval time.Duration, maxBurst int) *RateLimitedGeocoder {
	return &RateLimitedGeocoder{
		limiter:  rate.NewLimiter(rate.Every(interval), maxBurst),
		geocoder: geocoder,
	}
}

var _ port.Geocoder = &RateLimitedGeocoder{}
