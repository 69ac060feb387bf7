package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/core/service"
	"github.com/pkg/errors"
)

const (
	errorValidation                 = "validation"
	errorGeocodeNoMatch             = "geocode_no_match"
	errorGeocodeProviderUnavailable = "geocode_provider_unavailable"
	errorNotFound                   = "not_found"
	errorForbidden                  = "forbidden"
	errorBadRequest                 = "bad_request"
	errorUnsupportedMediaType       = "unsupported_media_type"
)

// Seconds a client should wait before retrying when the geocoding provider is down
const retryAfterProviderUnavailable = 30

type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

// handleError renders err with the status code matching its pipeline error kind.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	if pipelineErr, ok := service.PipelineErrorOf(err); ok {
		switch pipelineErr.Kind {
		case service.KindValidation:
			writeJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
				Error:  errorValidation,
				Fields: pipelineErr.Fields,
			})
			return

		case service.KindGeocode:
			if port.GeocodeFailureOf(err) == port.GeocodeNoMatch {
				writeJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{Error: errorGeocodeNoMatch})
				return
			}

			slog.WarnContext(ctx, "geocoding provider unavailable", slogx.Error(err))

			w.Header().Set("Retry-After", strconv.Itoa(retryAfterProviderUnavailable))
			writeJSON(w, r, http.StatusServiceUnavailable, ErrorResponse{Error: errorGeocodeProviderUnavailable})
			return

		case service.KindNotFound:
			writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: errorNotFound})
			return

		case service.KindForbidden:
			writeJSON(w, r, http.StatusForbidden, ErrorResponse{Error: errorForbidden})
			return
		}
	}

	if errors.Is(err, port.ErrNotFound) {
		writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: errorNotFound})
		return
	}

	slog.ErrorContext(ctx, "unexpected error", slogx.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	slog.DebugContext(r.Context(), "could not decode request", slogx.Error(err))

	if errors.Is(err, errUnsupportedMediaType) {
		writeJSON(w, r, http.StatusUnsupportedMediaType, ErrorResponse{Error: errorUnsupportedMediaType})
		return
	}

	writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: errorBadRequest})
}
