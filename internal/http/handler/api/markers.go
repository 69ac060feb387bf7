package api

import (
	"net/http"

	"github.com/bornholm/lifemap/internal/core/model"
	httpCtx "github.com/bornholm/lifemap/internal/http/context"
)

func (h *Handler) handleListMarkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	markers, err := h.directory.ListOwnerMarkers(ctx, user.ID())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ListMarkersResponse{
		Markers: MarkersFrom(markers),
	})
}

func (h *Handler) handleCreateMarker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	form, err := decodeMarkerForm(w, r)
	if err != nil {
		handleDecodeError(w, r, err)
		return
	}

	marker, err := h.pipeline.CreateMarker(ctx, user.ID(), form)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, MarkerResponse{
		Marker: MarkerFrom(marker),
	})
}

func (h *Handler) handleGetMarker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	markerID := model.MarkerID(r.PathValue("markerID"))

	marker, err := h.directory.GetMarker(ctx, user.ID(), markerID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, MarkerResponse{
		Marker: MarkerFrom(marker),
	})
}

func (h *Handler) handleUpdateMarker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	markerID := model.MarkerID(r.PathValue("markerID"))

	form, err := decodeMarkerForm(w, r)
	if err != nil {
		handleDecodeError(w, r, err)
		return
	}

	marker, err := h.pipeline.UpdateMarker(ctx, markerID, user.ID(), form)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, MarkerResponse{
		Marker: MarkerFrom(marker),
	})
}
