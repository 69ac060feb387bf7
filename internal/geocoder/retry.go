package geocoder

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/metrics"
	"github.com/pkg/errors"
)

// RetryGeocoder retries lookups that failed because the provider was unavailable.
type RetryGeocoder struct {
	baseDelay  time.Duration
	maxRetries int
	geocoder   port.Geocoder
}

// ResolveAddress implements [port.Geocoder].
func (g *RetryGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	backoff := g.baseDelay
	retries := 0

	for {
		place, err := g.geocoder.ResolveAddress(ctx, address)
		if err == nil {
			return place, nil
		}

		if !errors.Is(err, port.ErrProviderUnavailable) || retries >= g.maxRetries {
			return model.GeoPlace{}, err
		}

		slog.DebugContext(ctx, "geocoding failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

		metrics.GeocodingRetries.Inc()

		retries++

		select {
		case <-ctx.Done():
			return model.GeoPlace{}, err
		case <-time.After(backoff):
		}

		backoff *= 2
	}
}

func NewRetryGeocoder(geocoder port.Geocoder, baseDelay time.Duration, maxRetries int) *RetryGeocoder {
	return &RetryGeocoder{
		baseDelay:  baseDelay,
		maxRetries: maxRetries,
		geocoder:   geocoder,
	}
}

var _ port.Geocoder = &RetryGeocoder{}
