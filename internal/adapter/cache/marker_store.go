package cache

import (
	"context"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
)

// MarkerStore caches single marker lookups of its backend. Listings are
// always delegated since they must reflect every write.
type MarkerStore struct {
	backend     port.MarkerStore
	markerCache *MultiIndexCache[*CacheableMarker]
}

// CreateMarker implements [port.MarkerStore].
func (s *MarkerStore) CreateMarker(ctx context.Context, ownerID model.UserID, fields model.MarkerFields) (model.PersistedMarker, error) {
	marker, err := s.backend.CreateMarker(ctx, ownerID, fields)
	if err != nil {
		return nil, err
	}

	s.cacheMarker(marker)

	return marker, nil
}

// GetMarkerByID implements [port.MarkerStore].
func (s *MarkerStore) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	if marker, exists := s.markerCache.Get(getMarkerCacheKey(id)); exists {
		return marker.PersistedMarker, nil
	}

	marker, err := s.backend.GetMarkerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheMarker(marker)

	return marker, nil
}

// QueryMarkers implements [port.MarkerStore].
func (s *MarkerStore) QueryMarkers(ctx context.Context) ([]model.PersistedMarker, error) {
	return s.backend.QueryMarkers(ctx)
}

// QueryMarkersByOwner implements [port.MarkerStore].
func (s *MarkerStore) QueryMarkersByOwner(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	return s.backend.QueryMarkersByOwner(ctx, ownerID)
}

// UpdateMarker implements [port.MarkerStore].
func (s *MarkerStore) UpdateMarker(ctx context.Context, id model.MarkerID, fields model.MarkerFields) (model.PersistedMarker, error) {
	marker, err := s.backend.UpdateMarker(ctx, id, fields)
	if err != nil {
		s.markerCache.Remove(getMarkerCacheKey(id))
		return nil, err
	}

	s.cacheMarker(marker)

	return marker, nil
}

// cacheMarker never replaces a cached record with an older revision, so a
// lookup racing an update cannot reinstate the previous version.
func (s *MarkerStore) cacheMarker(marker model.PersistedMarker) {
	s.markerCache.AddUnless(NewCacheableMarker(marker), func(current, candidate *CacheableMarker) bool {
		return current.UpdatedAt().After(candidate.UpdatedAt())
	})
}

func NewMarkerStore(backend port.MarkerStore, size int, ttl time.Duration) *MarkerStore {
	return &MarkerStore{
		backend:     backend,
		markerCache: NewMultiIndexCache[*CacheableMarker]("markers", size, ttl),
	}
}

var _ port.MarkerStore = &MarkerStore{}
