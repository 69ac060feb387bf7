package api

import (
	"net/http"

	"github.com/bornholm/lifemap/internal/core/service"
	"github.com/bornholm/lifemap/internal/http/middleware/authz"
)

type Handler struct {
	pipeline  *service.MarkerPipeline
	directory *service.MarkerDirectory
	mux       *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(pipeline *service.MarkerPipeline, directory *service.MarkerDirectory) *Handler {
	h := &Handler{
		pipeline:  pipeline,
		directory: directory,
		mux:       &http.ServeMux{},
	}

	assertUser := authz.Middleware(nil, authz.Has(authz.RoleUser))

	h.mux.Handle("GET /markers", assertUser(http.HandlerFunc(h.handleListMarkers)))
	h.mux.Handle("POST /markers", assertUser(http.HandlerFunc(h.handleCreateMarker)))
	h.mux.Handle("GET /markers/{markerID}", assertUser(http.HandlerFunc(h.handleGetMarker)))
	h.mux.Handle("PUT /markers/{markerID}", assertUser(http.HandlerFunc(h.handleUpdateMarker)))
	h.mux.Handle("POST /markers/{markerID}", assertUser(http.HandlerFunc(h.handleUpdateMarker)))

	h.mux.Handle("GET /persons", assertUser(http.HandlerFunc(h.handleListPersons)))
	h.mux.Handle("GET /persons/{userID}/markers", assertUser(http.HandlerFunc(h.handleListPersonMarkers)))

	return h
}

var _ http.Handler = &Handler{}
