package google

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/lifemap/internal/build"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusUnknownError   = "UNKNOWN_ERROR"
)

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Geocoder resolves addresses with the Google Maps Geocoding API.
type Geocoder struct {
	baseURL    *url.URL
	apiKey     string
	region     string
	language   string
	httpClient *http.Client
}

// ResolveAddress implements [port.Geocoder].
func (g *Geocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	endpoint := g.baseURL.JoinPath("/maps/api/geocode/json")

	query := url.Values{}
	query.Set("address", address)

	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}

	if g.region != "" {
		query.Set("region", g.region)
	}

	if g.language != "" {
		query.Set("language", g.language)
	}

	endpoint.RawQuery = query.Encode()

	slog.DebugContext(ctx, "new geocoding request", slog.String("provider", "google"), slog.String("host", endpoint.Host))

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.WithStack(err))
	}

	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", build.UserAgent())

	res, err := g.httpClient.Do(req)
	if err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.WithStack(err))
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Errorf("unexpected response code %d (%s)", res.StatusCode, res.Status))
	}

	var payload geocodeResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Wrap(err, "could not decode response"))
	}

	switch payload.Status {
	case StatusOK:
	case StatusZeroResults:
		return model.GeoPlace{}, port.NewNoMatchError(address)
	default:
		return model.GeoPlace{}, port.NewProviderUnavailableError(address, errors.Errorf("provider answered with status '%s': %s", payload.Status, payload.ErrorMessage))
	}

	if len(payload.Results) == 0 || payload.Results[0].FormattedAddress == "" {
		return model.GeoPlace{}, port.NewNoMatchError(address)
	}

	first := payload.Results[0]

	return model.GeoPlace{
		FormattedAddress: first.FormattedAddress,
		Lat:              first.Geometry.Location.Lat,
		Lng:              first.Geometry.Location.Lng,
	}, nil
}

func NewGeocoder(baseURL *url.URL, apiKey, region, language string, httpClient *http.Client) *Geocoder {
	return &Geocoder{
		baseURL:    baseURL,
		apiKey:     apiKey,
		region:     region,
		language:   language,
		httpClient: httpClient,
	}
}

var _ port.Geocoder = &Geocoder{}
