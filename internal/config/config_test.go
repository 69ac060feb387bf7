package config

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Setenv("LIFEMAP_HTTP_AUTH_USERS", "alice:secret,bob:password")
	t.Setenv("LIFEMAP_HTTP_AUTH_ADMINS", "alice")
	t.Setenv("LIFEMAP_GEOCODER_URI", "google://maps.googleapis.com?key=secret")
	t.Setenv("LIFEMAP_GEOCODER_TIMEOUT", "2s")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := ":3002", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected %s, got %s", e, g)
	}

	if e, g := "secret", conf.HTTP.Auth.Users["alice"]; e != g {
		t.Errorf("conf.HTTP.Auth.Users[alice]: expected %s, got %s", e, g)
	}

	if e, g := "password", conf.HTTP.Auth.Users["bob"]; e != g {
		t.Errorf("conf.HTTP.Auth.Users[bob]: expected %s, got %s", e, g)
	}

	if e, g := 1, len(conf.HTTP.Auth.Admins); e != g {
		t.Errorf("len(conf.HTTP.Auth.Admins): expected %d, got %d", e, g)
	}

	if e, g := "google://maps.googleapis.com?key=secret", conf.Geocoder.URI; e != g {
		t.Errorf("conf.Geocoder.URI: expected %s, got %s", e, g)
	}

	if e, g := 2*time.Second, conf.Geocoder.Timeout; e != g {
		t.Errorf("conf.Geocoder.Timeout: expected %v, got %v", e, g)
	}

	if e, g := 2, conf.Geocoder.MaxRetries; e != g {
		t.Errorf("conf.Geocoder.MaxRetries: expected %d, got %d", e, g)
	}

	if e, g := "sqlite://data.sqlite", conf.Storage.Markers.URI; e != g {
		t.Errorf("conf.Storage.Markers.URI: expected %s, got %s", e, g)
	}
}
