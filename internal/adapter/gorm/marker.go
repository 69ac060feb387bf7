package gorm

import (
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
)

type Marker struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerID string `gorm:"index;not null"`

	Title       string `gorm:"not null"`
	DateFrom    time.Time
	DateTo      time.Time
	Description string

	LocationName    string
	LocationAddress string
	Lat             float64
	Lng             float64

	Private bool `gorm:"index"`
}

type wrappedMarker struct {
	m *Marker
}

// ID implements model.PersistedMarker.
func (w *wrappedMarker) ID() model.MarkerID {
	return model.MarkerID(w.m.ID)
}

// OwnerID implements model.PersistedMarker.
func (w *wrappedMarker) OwnerID() model.UserID {
	return model.UserID(w.m.OwnerID)
}

// Title implements model.PersistedMarker.
func (w *wrappedMarker) Title() string {
	return w.m.Title
}

// DateRange implements model.PersistedMarker.
func (w *wrappedMarker) DateRange() model.DateRange {
	return model.DateRange{
		From: w.m.DateFrom.UTC(),
		To:   w.m.DateTo.UTC(),
	}
}

// Location implements model.PersistedMarker.
func (w *wrappedMarker) Location() model.Location {
	return model.Location{
		Name:    w.m.LocationName,
		Address: w.m.LocationAddress,
		Lat:     w.m.Lat,
		Lng:     w.m.Lng,
	}
}

// Description implements model.PersistedMarker.
func (w *wrappedMarker) Description() string {
	return w.m.Description
}

// Private implements model.PersistedMarker.
func (w *wrappedMarker) Private() bool {
	return w.m.Private
}

// CreatedAt implements model.PersistedMarker.
func (w *wrappedMarker) CreatedAt() time.Time {
	return w.m.CreatedAt
}

// UpdatedAt implements model.PersistedMarker.
func (w *wrappedMarker) UpdatedAt() time.Time {
	return w.m.UpdatedAt
}

var _ model.PersistedMarker = &wrappedMarker{}

func applyFields(m *Marker, fields model.MarkerFields) {
	m.Title = fields.Title
	m.DateFrom = fields.DateRange.From
	m.DateTo = fields.DateRange.To
	m.Description = fields.Description
	m.LocationName = fields.Location.Name
	m.LocationAddress = fields.Location.Address
	m.Lat = fields.Location.Lat
	m.Lng = fields.Location.Lng
	m.Private = fields.Private
}
