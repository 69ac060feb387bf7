package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/lifemap/internal/adapter/memory"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/service"
	"github.com/bornholm/lifemap/internal/http/handler/api"
	"github.com/bornholm/lifemap/internal/http/middleware/authn"
	"github.com/bornholm/lifemap/internal/http/middleware/bridge"
	"github.com/pkg/errors"
)

type staticGeocoder struct{}

func (g *staticGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	return model.GeoPlace{
		FormattedAddress: "Champ de Mars, 5 Av. Anatole France, 75007 Paris, France",
		Lat:              48.8584,
		Lng:              2.2945,
	}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	markerStore := memory.NewMarkerStore()
	userStore := memory.NewUserStore()

	handler := authn.Middleware(nil, authn.NewBasicAuthenticator(map[string]string{"alice": "secret"}))(
		bridge.Middleware(userStore)(
			api.NewHandler(
				service.NewMarkerPipeline(&staticGeocoder{}, markerStore),
				service.NewMarkerDirectory(markerStore, userStore),
			),
		),
	)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", handler))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestClient(t *testing.T, server *httptest.Server, username, password string) *Client {
	baseURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	baseURL.User = url.UserPassword(username, password)

	return New(WithBaseURL(baseURL))
}

func TestClient(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server, "alice", "secret")

	ctx := context.Background()

	form := model.MarkerForm{
		Title:           "Eiffel tower visit",
		DateFrom:        "2020-07-14",
		DateTo:          "2020-07-14",
		LocationName:    "Eiffel tower",
		LocationAddress: "Champ de Mars, Paris",
		Description:     "Fireworks",
	}

	created, err := client.CreateMarker(ctx, form)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 48.8584, created.Location.Lat; e != g {
		t.Errorf("created.Location.Lat: expected %v, got %v", e, g)
	}

	form.Title = "Bastille day"

	updated, err := client.UpdateMarker(ctx, created.ID, form)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Bastille day", updated.Title; e != g {
		t.Errorf("updated.Title: expected %v, got %v", e, g)
	}

	markers, err := client.ListMarkers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(markers); e != g {
		t.Fatalf("len(markers): expected %v, got %v", e, g)
	}

	persons, err := client.ListPersons(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(persons); e != g {
		t.Fatalf("len(persons): expected %v, got %v", e, g)
	}

	personMarkers, err := client.ListPersonMarkers(ctx, persons[0].ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.ID, personMarkers[0].ID; e != g {
		t.Errorf("personMarkers[0].ID: expected %v, got %v", e, g)
	}

	t.Run("ValidationError", func(t *testing.T) {
		_, err := client.CreateMarker(ctx, model.MarkerForm{})
		if err == nil {
			t.Fatalf("expected an error")
		}

		apiErr, ok := APIErrorOf(err)
		if !ok {
			t.Fatalf("expected an api error, got %+v", err)
		}

		if e, g := http.StatusUnprocessableEntity, apiErr.StatusCode; e != g {
			t.Errorf("apiErr.StatusCode: expected %v, got %v", e, g)
		}

		if e, g := 5, len(apiErr.Fields); e != g {
			t.Errorf("len(apiErr.Fields): expected %v, got %v", e, g)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		_, err := newTestClient(t, server, "alice", "wrong").ListMarkers(ctx)

		apiErr, ok := APIErrorOf(err)
		if !ok {
			t.Fatalf("expected an api error, got %+v", err)
		}

		if e, g := http.StatusUnauthorized, apiErr.StatusCode; e != g {
			t.Errorf("apiErr.StatusCode: expected %v, got %v", e, g)
		}
	})
}

func TestRetryTransport(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := &http.Client{
		Transport: &RetryTransport{
			MaxRetries:  2,
			DefaultWait: 10 * time.Millisecond,
		},
	}

	res, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	defer res.Body.Close()

	if e, g := http.StatusOK, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %v, got %v", e, g)
	}

	if e, g := int32(2), calls.Load(); e != g {
		t.Errorf("calls: expected %v, got %v", e, g)
	}
}
