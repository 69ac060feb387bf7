package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

func TestGeocoder(t *testing.T) {
	type testCase struct {
		Name    string
		Handler http.HandlerFunc
		Timeout time.Duration
		Check   func(t *testing.T, place model.GeoPlace, err error)
	}

	expectFailure := func(failure port.GeocodeFailure) func(t *testing.T, place model.GeoPlace, err error) {
		return func(t *testing.T, place model.GeoPlace, err error) {
			if err == nil {
				t.Fatalf("err: expected %s failure, got nil", failure)
			}

			if e, g := failure, port.GeocodeFailureOf(err); e != g {
				t.Errorf("port.GeocodeFailureOf(err): expected %s, got %s (%+v)", e, g, err)
			}

			if e, g := (model.GeoPlace{}), place; e != g {
				t.Errorf("place: expected zero value, got %+v", g)
			}
		}
	}

	testCases := []testCase{
		{
			Name: "Match",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				if e, g := "/maps/api/geocode/json", r.URL.Path; e != g {
					t.Errorf("r.URL.Path: expected %s, got %s", e, g)
				}

				if e, g := "1 University Dr, Austin", r.URL.Query().Get("address"); e != g {
					t.Errorf("address: expected %s, got %s", e, g)
				}

				if e, g := "secret", r.URL.Query().Get("key"); e != g {
					t.Errorf("key: expected %s, got %s", e, g)
				}

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"status": "OK",
					"results": [
						{"formatted_address": "University of Texas at Austin, Austin, TX 78712, USA", "geometry": {"location": {"lat": 30.2849, "lng": -97.7341}}},
						{"formatted_address": "Elsewhere", "geometry": {"location": {"lat": 1, "lng": 2}}}
					]
				}`))
			},
			Check: func(t *testing.T, place model.GeoPlace, err error) {
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if e, g := "University of Texas at Austin, Austin, TX 78712, USA", place.FormattedAddress; e != g {
					t.Errorf("place.FormattedAddress: expected %s, got %s", e, g)
				}

				if e, g := 30.2849, place.Lat; e != g {
					t.Errorf("place.Lat: expected %v, got %v", e, g)
				}

				if e, g := -97.7341, place.Lng; e != g {
					t.Errorf("place.Lng: expected %v, got %v", e, g)
				}
			},
		},
		{
			Name: "ZeroResults",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
			},
			Check: expectFailure(port.GeocodeNoMatch),
		},
		{
			Name: "EmptyFormattedAddress",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "OK", "results": [{"formatted_address": "", "geometry": {"location": {"lat": 1, "lng": 2}}}]}`))
			},
			Check: expectFailure(port.GeocodeNoMatch),
		},
		{
			Name: "RequestDenied",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`))
			},
			Check: expectFailure(port.GeocodeProviderUnavailable),
		},
		{
			Name: "OverQueryLimit",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "OVER_QUERY_LIMIT", "results": []}`))
			},
			Check: expectFailure(port.GeocodeProviderUnavailable),
		},
		{
			Name: "ServerError",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			Check: expectFailure(port.GeocodeProviderUnavailable),
		},
		{
			Name: "InvalidBody",
			Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>maintenance</html>`))
			},
			Check: expectFailure(port.GeocodeProviderUnavailable),
		},
		{
			Name:    "Timeout",
			Timeout: 50 * time.Millisecond,
			Handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
			Check: expectFailure(port.GeocodeProviderUnavailable),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := httptest.NewServer(tc.Handler)
			defer server.Close()

			baseURL, err := url.Parse(server.URL)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			geocoder := NewGeocoder(baseURL, "secret", "", "", server.Client())

			ctx := context.Background()
			if tc.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tc.Timeout)
				defer cancel()
			}

			place, err := geocoder.ResolveAddress(ctx, "1 University Dr, Austin")

			tc.Check(t, place, err)
		})
	}
}

func TestCreateGeocoder(t *testing.T) {
	u, err := url.Parse("google://localhost:8080?key=secret&insecure=true")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	geocoder, err := createGeocoder(u)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	googleGeocoder, ok := geocoder.(*Geocoder)
	if !ok {
		t.Fatalf("geocoder: expected *Geocoder, got %T", geocoder)
	}

	if e, g := "http://localhost:8080", googleGeocoder.baseURL.String(); e != g {
		t.Errorf("googleGeocoder.baseURL: expected %s, got %s", e, g)
	}

	if e, g := "secret", googleGeocoder.apiKey; e != g {
		t.Errorf("googleGeocoder.apiKey: expected %s, got %s", e, g)
	}
}
