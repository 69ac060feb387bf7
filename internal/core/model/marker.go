package model

import (
	"time"

	"github.com/rs/xid"
)

type MarkerID string

func NewMarkerID() MarkerID {
	return MarkerID(xid.New().String())
}

type DateRange struct {
	From time.Time
	To   time.Time
}

// Location is where a marker happened. Address, Lat and Lng always come
// from the geocoding provider, Name is the label typed by the owner.
type Location struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

// GeoPlace is a resolved address as returned by a geocoding provider.
type GeoPlace struct {
	FormattedAddress string
	Lat              float64
	Lng              float64
}

// MarkerFields holds the mutable part of a marker.
type MarkerFields struct {
	Title       string
	DateRange   DateRange
	Location    Location
	Description string
	Private     bool
}

type Marker interface {
	WithID[MarkerID]
	WithOwner

	Title() string
	DateRange() DateRange
	Location() Location
	Description() string
	Private() bool
}

type PersistedMarker interface {
	Marker
	WithLifecycle
}

type BaseMarker struct {
	id        MarkerID
	ownerID   UserID
	fields    MarkerFields
	createdAt time.Time
	updatedAt time.Time
}

// ID implements PersistedMarker.
func (m *BaseMarker) ID() MarkerID {
	return m.id
}

// OwnerID implements PersistedMarker.
func (m *BaseMarker) OwnerID() UserID {
	return m.ownerID
}

// Title implements PersistedMarker.
func (m *BaseMarker) Title() string {
	return m.fields.Title
}

// DateRange implements PersistedMarker.
func (m *BaseMarker) DateRange() DateRange {
	return m.fields.DateRange
}

// Location implements PersistedMarker.
func (m *BaseMarker) Location() Location {
	return m.fields.Location
}

// Description implements PersistedMarker.
func (m *BaseMarker) Description() string {
	return m.fields.Description
}

// Private implements PersistedMarker.
func (m *BaseMarker) Private() bool {
	return m.fields.Private
}

// CreatedAt implements PersistedMarker.
func (m *BaseMarker) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt implements PersistedMarker.
func (m *BaseMarker) UpdatedAt() time.Time {
	return m.updatedAt
}

var _ PersistedMarker = &BaseMarker{}

func NewBaseMarker(id MarkerID, ownerID UserID, fields MarkerFields, createdAt, updatedAt time.Time) *BaseMarker {
	return &BaseMarker{
		id:        id,
		ownerID:   ownerID,
		fields:    fields,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// FieldsOf extracts the mutable fields of the given marker.
func FieldsOf(m Marker) MarkerFields {
	return MarkerFields{
		Title:       m.Title(),
		DateRange:   m.DateRange(),
		Location:    m.Location(),
		Description: m.Description(),
		Private:     m.Private(),
	}
}
