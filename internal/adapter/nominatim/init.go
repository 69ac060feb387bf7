package nominatim

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/pkg/errors"
)

const (
	ParamEmail    = "email"
	ParamLanguage = "language"
	ParamInsecure = "insecure"
)

func init() {
	setup.Geocoders.Register("nominatim", createGeocoder)
}

func createGeocoder(u *url.URL) (port.Geocoder, error) {
	query := u.Query()

	host := u.Host
	if host == "" {
		host = "nominatim.openstreetmap.org"
	}

	scheme := "https"
	if rawInsecure := query.Get(ParamInsecure); rawInsecure != "" {
		insecure, err := strconv.ParseBool(rawInsecure)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse '%s' parameter", ParamInsecure)
		}

		if insecure {
			scheme = "http"
		}
	}

	baseURL := &url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   u.Path,
	}

	return NewGeocoder(baseURL, query.Get(ParamEmail), query.Get(ParamLanguage), &http.Client{}), nil
}
