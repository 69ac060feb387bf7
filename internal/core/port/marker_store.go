package port

import (
	"context"

	"github.com/bornholm/lifemap/internal/core/model"
)

type MarkerStore interface {
	// CreateMarker persists a new marker owned by the given user and assigns its identifier and timestamps
	CreateMarker(ctx context.Context, ownerID model.UserID, fields model.MarkerFields) (model.PersistedMarker, error)

	// QueryMarkersByOwner returns all the markers of the given owner, private ones included
	QueryMarkersByOwner(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error)

	// QueryMarkers returns every marker in the store. Callers are responsible for filtering private markers.
	QueryMarkers(ctx context.Context) ([]model.PersistedMarker, error)

	// GetMarkerByID finds a marker by its ID, or returns ErrNotFound
	GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error)

	// UpdateMarker replaces the mutable fields of a marker, or returns ErrNotFound
	UpdateMarker(ctx context.Context, id model.MarkerID, fields model.MarkerFields) (model.PersistedMarker, error)
}
