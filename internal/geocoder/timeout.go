package geocoder

import (
	"context"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

// TimeoutGeocoder bounds each provider call. Any failure that is not already
// classified by the provider is reported as an unavailable provider.
type TimeoutGeocoder struct {
	timeout  time.Duration
	geocoder port.Geocoder
}

// ResolveAddress implements [port.Geocoder].
func (g *TimeoutGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	place, err := g.geocoder.ResolveAddress(ctx, address)
	if err != nil {
		if port.GeocodeFailureOf(err) == "" {
			return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.WithStack(err))
		}

		return model.GeoPlace{}, err
	}

	return place, nil
}

func NewTimeoutGeocoder(geocoder port.Geocoder, timeout time.Duration) *TimeoutGeocoder {
	return &TimeoutGeocoder{
		timeout:  timeout,
		geocoder: geocoder,
	}
}

var _ port.Geocoder = &TimeoutGeocoder{}
