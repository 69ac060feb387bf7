package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

func TestGeocoder(t *testing.T) {
	type testCase struct {
		Name            string
		Body            string
		Status          int
		ExpectedFailure port.GeocodeFailure
	}

	testCases := []testCase{
		{
			Name:   "Match",
			Status: http.StatusOK,
			Body:   `[{"display_name": "Empire State Building, 350, 5th Avenue, Manhattan, New York", "lat": "40.7484", "lon": "-73.9857"}]`,
		},
		{
			Name:            "NoResult",
			Status:          http.StatusOK,
			Body:            `[]`,
			ExpectedFailure: port.GeocodeNoMatch,
		},
		{
			Name:            "InvalidCoordinates",
			Status:          http.StatusOK,
			Body:            `[{"display_name": "Somewhere", "lat": "north", "lon": "-73.9857"}]`,
			ExpectedFailure: port.GeocodeProviderUnavailable,
		},
		{
			Name:            "TooManyRequests",
			Status:          http.StatusTooManyRequests,
			Body:            `{}`,
			ExpectedFailure: port.GeocodeProviderUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if e, g := "/search", r.URL.Path; e != g {
					t.Errorf("r.URL.Path: expected %s, got %s", e, g)
				}

				if e, g := "Empire State Building", r.URL.Query().Get("q"); e != g {
					t.Errorf("q: expected %s, got %s", e, g)
				}

				if r.Header.Get("User-Agent") == "" {
					t.Errorf("User-Agent header should be set")
				}

				w.WriteHeader(tc.Status)
				w.Write([]byte(tc.Body))
			}))
			defer server.Close()

			baseURL, err := url.Parse(server.URL)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			geocoder := NewGeocoder(baseURL, "", "", server.Client())

			place, err := geocoder.ResolveAddress(context.Background(), "Empire State Building")

			if tc.ExpectedFailure != "" {
				if e, g := tc.ExpectedFailure, port.GeocodeFailureOf(err); e != g {
					t.Errorf("port.GeocodeFailureOf(err): expected %s, got %s (%+v)", e, g, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := 40.7484, place.Lat; e != g {
				t.Errorf("place.Lat: expected %v, got %v", e, g)
			}

			if e, g := -73.9857, place.Lng; e != g {
				t.Errorf("place.Lng: expected %v, got %v", e, g)
			}
		})
	}
}
