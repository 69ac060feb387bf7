package model

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// MarkerForm is the raw submission of a marker, as typed by its owner.
type MarkerForm struct {
	Title           string `json:"title" yaml:"title"`
	DateFrom        string `json:"dateFrom" yaml:"dateFrom"`
	DateTo          string `json:"dateTo" yaml:"dateTo"`
	LocationName    string `json:"locationName" yaml:"locationName"`
	LocationAddress string `json:"locationAddress" yaml:"locationAddress"`
	Description     string `json:"description" yaml:"description"`
	IsPrivate       bool   `json:"isPrivate" yaml:"isPrivate"`
}

// Normalize returns a copy of the form with surrounding whitespace removed.
func (f MarkerForm) Normalize() MarkerForm {
	return MarkerForm{
		Title:           strings.TrimSpace(f.Title),
		DateFrom:        strings.TrimSpace(f.DateFrom),
		DateTo:          strings.TrimSpace(f.DateTo),
		LocationName:    strings.TrimSpace(f.LocationName),
		LocationAddress: strings.TrimSpace(f.LocationAddress),
		Description:     strings.TrimSpace(f.Description),
		IsPrivate:       f.IsPrivate,
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var ErrInvalidDate = errors.New("invalid date")

// ParseMarkerDate accepts calendar dates ("2006-01-02") and RFC 3339
// timestamps. Timestamps keep the calendar day of their own offset, the
// result is that day at midnight UTC.
func ParseMarkerDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	for _, layout := range []string{DateLayout, time.RFC3339} {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "could not parse '%s'", raw)
}
