package api

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/pkg/errors"
)

const maxBodySize = 1 << 20

var errUnsupportedMediaType = errors.New("unsupported media type")

// markerPayload accepts both the current field names and the legacy ones
// (from, to, address, private).
type markerPayload struct {
	Title           string `json:"title"`
	DateFrom        string `json:"dateFrom"`
	From            string `json:"from"`
	DateTo          string `json:"dateTo"`
	To              string `json:"to"`
	LocationName    string `json:"locationName"`
	LocationAddress string `json:"locationAddress"`
	Address         string `json:"address"`
	Description     string `json:"description"`
	IsPrivate       *bool  `json:"isPrivate"`
	Private         *bool  `json:"private"`
}

func (p markerPayload) form() model.MarkerForm {
	form := model.MarkerForm{
		Title:           p.Title,
		DateFrom:        firstNonEmpty(p.DateFrom, p.From),
		DateTo:          firstNonEmpty(p.DateTo, p.To),
		LocationName:    p.LocationName,
		LocationAddress: firstNonEmpty(p.LocationAddress, p.Address),
		Description:     p.Description,
	}

	switch {
	case p.IsPrivate != nil:
		form.IsPrivate = *p.IsPrivate
	case p.Private != nil:
		form.IsPrivate = *p.Private
	}

	return form
}

func decodeMarkerForm(w http.ResponseWriter, r *http.Request) (model.MarkerForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	contentType := r.Header.Get("Content-Type")
	mediaType := "application/json"

	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return model.MarkerForm{}, errors.Wrapf(errUnsupportedMediaType, "could not parse content type '%s'", contentType)
		}

		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		var payload markerPayload

		decoder := json.NewDecoder(r.Body)
		if err := decoder.Decode(&payload); err != nil {
			return model.MarkerForm{}, errors.Wrap(err, "could not decode json payload")
		}

		return payload.form(), nil

	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodySize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return model.MarkerForm{}, errors.Wrap(err, "could not parse form")
		}

		return formPayload(r.PostForm).form(), nil

	default:
		return model.MarkerForm{}, errors.Wrapf(errUnsupportedMediaType, "media type '%s'", mediaType)
	}
}

func formPayload(values url.Values) markerPayload {
	payload := markerPayload{
		Title:           values.Get("title"),
		DateFrom:        values.Get("dateFrom"),
		From:            values.Get("from"),
		DateTo:          values.Get("dateTo"),
		To:              values.Get("to"),
		LocationName:    values.Get("locationName"),
		LocationAddress: values.Get("locationAddress"),
		Address:         values.Get("address"),
		Description:     values.Get("description"),
	}

	if values.Has("isPrivate") {
		isPrivate := parseCheckbox(values.Get("isPrivate"))
		payload.IsPrivate = &isPrivate
	}

	if values.Has("private") {
		private := parseCheckbox(values.Get("private"))
		payload.Private = &private
	}

	return payload
}

// parseCheckbox follows the html checkbox convention: "on" is checked.
func parseCheckbox(raw string) bool {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "on" || raw == "yes" {
		return true
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}

	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
