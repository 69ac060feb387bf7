package nominatim

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/lifemap/internal/build"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type searchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocoder resolves addresses with the OpenStreetMap Nominatim search API.
type Geocoder struct {
	baseURL    *url.URL
	email      string
	language   string
	httpClient *http.Client
}

// ResolveAddress implements [port.Geocoder].
func (g *Geocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	endpoint := g.baseURL.JoinPath("/search")

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "jsonv2")
	query.Set("limit", "1")

	if g.email != "" {
		query.Set("email", g.email)
	}

	endpoint.RawQuery = query.Encode()

	slog.DebugContext(ctx, "new geocoding request", slog.String("provider", "nominatim"), slog.String("host", endpoint.Host))

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.WithStack(err))
	}

	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", build.UserAgent())

	if g.language != "" {
		req.Header.Set("Accept-Language", g.language)
	}

	res, err := g.httpClient.Do(req)
	if err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.WithStack(err))
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status))
	}

	var results []searchResult
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Wrap(err, "could not decode response"))
	}

	if len(results) == 0 || results[0].DisplayName == "" {
		return model.GeoPlace{}, port.NewNoMatchError(address)
	}

	first := results[0]

	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Wrapf(err, "could not parse latitude '%s'", first.Lat))
	}

	lng, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Wrapf(err, "could not parse longitude '%s'", first.Lon))
	}

	return model.GeoPlace{
		FormattedAddress: first.DisplayName,
		Lat:              lat,
		Lng:              lng,
	}, nil
}

func NewGeocoder(baseURL *url.URL, email, language string, httpClient *http.Client) *Geocoder {
	return &Geocoder{
		baseURL:    baseURL,
		email:      email,
		language:   language,
		httpClient: httpClient,
	}
}

var _ port.Geocoder = &Geocoder{}
