package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Path)
	})

	server := NewServer(
		WithBaseURL("/lifemap/"),
		WithMount("/api/v1/", echo),
		WithAllowedOrigins("https://example.org"),
	)

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Run("Healthz", func(t *testing.T) {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/lifemap/healthz", nil))

		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v", e, g)
		}
	})

	t.Run("Mount", func(t *testing.T) {
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/lifemap/api/v1/markers", nil))

		if e, g := http.StatusOK, res.Code; e != g {
			t.Errorf("res.Code: expected %v, got %v", e, g)
		}

		if e, g := "/markers", res.Body.String(); e != g {
			t.Errorf("res.Body: expected %v, got %v", e, g)
		}
	})

	t.Run("CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/lifemap/healthz", nil)
		req.Header.Set("Origin", "https://example.org")

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if e, g := "https://example.org", res.Header().Get("Access-Control-Allow-Origin"); e != g {
			t.Errorf("Access-Control-Allow-Origin: expected %v, got %v", e, g)
		}
	})
}
