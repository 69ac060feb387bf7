package geocoder

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/metrics"
)

const outcomeSuccess = "success"

type InstrumentedGeocoder struct {
	provider string
	geocoder port.Geocoder
}

// ResolveAddress implements [port.Geocoder].
func (g *InstrumentedGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("geocoder", g.provider))

	start := time.Now()

	place, err := g.geocoder.ResolveAddress(ctx, address)

	metrics.GeocodingDuration.WithLabelValues(g.provider).Observe(time.Since(start).Seconds())

	if err != nil {
		failure := port.GeocodeFailureOf(err)
		if failure == "" {
			failure = port.GeocodeProviderUnavailable
		}

		metrics.GeocodingRequests.WithLabelValues(g.provider, string(failure)).Inc()

		if failure == port.GeocodeNoMatch {
			slog.DebugContext(ctx, "address did not match any place")
		} else {
			slog.WarnContext(ctx, "geocoding provider unavailable", slogx.Error(err))
		}

		return model.GeoPlace{}, err
	}

	metrics.GeocodingRequests.WithLabelValues(g.provider, outcomeSuccess).Inc()

	return place, nil
}

func NewInstrumentedGeocoder(geocoder port.Geocoder, provider string) *InstrumentedGeocoder {
	return &InstrumentedGeocoder{
		provider: provider,
		geocoder: geocoder,
	}
}

var _ port.Geocoder = &InstrumentedGeocoder{}
