package setup

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/geocoder"
	"github.com/pkg/errors"
)

var Geocoders = NewRegistry[port.Geocoder]()

var getGeocoderFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.Geocoder, error) {
	u, err := url.Parse(conf.Geocoder.URI)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse geocoder uri")
	}

	provider, err := Geocoders.From(conf.Geocoder.URI)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var g port.Geocoder = provider

	if conf.Geocoder.Timeout > 0 {
		g = geocoder.NewTimeoutGeocoder(g, conf.Geocoder.Timeout)
	}

	if conf.Geocoder.RateLimit.Enabled {
		slog.DebugContext(ctx, "using rate limited geocoder", slog.Duration("interval", conf.Geocoder.RateLimit.Interval), slog.Int("max_burst", conf.Geocoder.RateLimit.MaxBurst))
		g = geocoder.NewRateLimitedGeocoder(g, conf.Geocoder.RateLimit.Interval, conf.Geocoder.RateLimit.MaxBurst)
	}

	if conf.Geocoder.MaxRetries > 0 {
		g = geocoder.NewRetryGeocoder(g, conf.Geocoder.BaseBackoff, conf.Geocoder.MaxRetries)
	}

	if conf.Geocoder.Cache.Enabled {
		slog.DebugContext(ctx, "using cached geocoder", slog.Duration("ttl", conf.Geocoder.Cache.TTL), slog.Int("cache_size", conf.Geocoder.Cache.Size))
		g = geocoder.NewCachedGeocoder(g, conf.Geocoder.Cache.Size, conf.Geocoder.Cache.TTL)
	}

	g = geocoder.NewInstrumentedGeocoder(g, u.Scheme)

	return g, nil
})

func GetGeocoderFromConfig(ctx context.Context, conf *config.Config) (port.Geocoder, error) {
	return getGeocoderFromConfig(ctx, conf)
}
