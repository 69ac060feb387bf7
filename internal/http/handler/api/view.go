package api

import (
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/service"
)

type Marker struct {
	ID          string    `json:"id" yaml:"id"`
	OwnerID     string    `json:"ownerId" yaml:"ownerId"`
	Title       string    `json:"title" yaml:"title"`
	DateFrom    string    `json:"dateFrom" yaml:"dateFrom"`
	DateTo      string    `json:"dateTo" yaml:"dateTo"`
	Location    Location  `json:"location" yaml:"location"`
	Description string    `json:"description" yaml:"description"`
	IsPrivate   bool      `json:"isPrivate" yaml:"isPrivate"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type Location struct {
	Name    string  `json:"name" yaml:"name"`
	Address string  `json:"address" yaml:"address"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
}

type Person struct {
	ID            string `json:"id" yaml:"id"`
	DisplayName   string `json:"displayName" yaml:"displayName"`
	PublicMarkers int    `json:"publicMarkers" yaml:"publicMarkers"`
}

type MarkerResponse struct {
	Marker Marker `json:"marker" yaml:"marker"`
}

type ListMarkersResponse struct {
	Markers []Marker `json:"markers" yaml:"markers"`
}

type ListPersonsResponse struct {
	Persons []Person `json:"persons" yaml:"persons"`
}

// MarkerFrom converts a persisted marker to its api representation.
func MarkerFrom(m model.PersistedMarker) Marker {
	dateRange := m.DateRange()
	location := m.Location()

	return Marker{
		ID:          string(m.ID()),
		OwnerID:     string(m.OwnerID()),
		Title:       m.Title(),
		DateFrom:    dateRange.From.Format(model.DateLayout),
		DateTo:      dateRange.To.Format(model.DateLayout),
		Location:    Location(location),
		Description: m.Description(),
		IsPrivate:   m.Private(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}

func MarkersFrom(markers []model.PersistedMarker) []Marker {
	views := make([]Marker, 0, len(markers))
	for _, m := range markers {
		views = append(views, MarkerFrom(m))
	}
	return views
}

func toPerson(p *service.Person) Person {
	return Person{
		ID:            string(p.User.ID()),
		DisplayName:   p.User.DisplayName(),
		PublicMarkers: p.PublicMarkers,
	}
}
