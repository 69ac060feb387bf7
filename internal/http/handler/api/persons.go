package api

import (
	"net/http"

	"github.com/bornholm/lifemap/internal/core/model"
)

func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	persons, err := h.directory.ListPersons(ctx)
	if err != nil {
		handleError(w, r, err)
		return
	}

	res := ListPersonsResponse{
		Persons: make([]Person, 0, len(persons)),
	}

	for _, p := range persons {
		res.Persons = append(res.Persons, toPerson(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleListPersonMarkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := model.UserID(r.PathValue("userID"))

	markers, err := h.directory.ListPersonMarkers(ctx, userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ListMarkersResponse{
		Markers: MarkersFrom(markers),
	})
}
