package setup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type staticGeocoder struct{}

// ResolveAddress implements [port.Geocoder].
func (g *staticGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	return model.GeoPlace{
		FormattedAddress: address,
		Lat:              48.8584,
		Lng:              2.2945,
	}, nil
}

func TestNewHTTPServerFromConfig(t *testing.T) {
	Geocoders.Register("static", func(u *url.URL) (port.Geocoder, error) {
		return &staticGeocoder{}, nil
	})

	t.Setenv("LIFEMAP_HTTP_AUTH_USERS", "alice:secret")
	t.Setenv("LIFEMAP_HTTP_AUTH_ADMINS", "alice")
	t.Setenv("LIFEMAP_HTTP_RATE_LIMIT_ENABLED", "false")
	t.Setenv("LIFEMAP_STORAGE_DATABASE_DSN", filepath.Join(t.TempDir(), "lifemap.sqlite"))
	t.Setenv("LIFEMAP_STORAGE_MARKERS_URI", "memory://")
	t.Setenv("LIFEMAP_GEOCODER_URI", "static://")

	conf, err := config.Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := context.Background()

	server, err := NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	do := func(req *http.Request) *httptest.ResponseRecorder {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res
	}

	t.Run("Unauthenticated", func(t *testing.T) {
		res := do(httptest.NewRequest(http.MethodGet, "/api/v1/markers", nil))
		if e, g := http.StatusUnauthorized, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v", e, g)
		}
	})

	t.Run("CreateMarker", func(t *testing.T) {
		body := `{"title":"Eiffel tower visit","dateFrom":"2020-07-14","dateTo":"2020-07-14","locationName":"Eiffel tower","locationAddress":"Champ de Mars, Paris","description":"Fireworks"}`

		req := httptest.NewRequest(http.MethodPost, "/api/v1/markers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth("alice", "secret")

		res := do(req)
		if e, g := http.StatusCreated, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v (%s)", e, g, res.Body.String())
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics/", nil)
		req.SetBasicAuth("alice", "secret")

		res := do(req)
		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v", e, g)
		}
	})
}
