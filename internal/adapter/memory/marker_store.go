package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type MarkerStore struct {
	mutex   sync.RWMutex
	markers map[model.MarkerID]*model.BaseMarker
	now     func() time.Time
}

// CreateMarker implements [port.MarkerStore].
func (s *MarkerStore) CreateMarker(ctx context.Context, ownerID model.UserID, fields model.MarkerFields) (model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	marker := model.NewBaseMarker(model.NewMarkerID(), ownerID, fields, now, now)

	s.markers[marker.ID()] = marker

	return marker, nil
}

// GetMarkerByID implements [port.MarkerStore].
func (s *MarkerStore) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	marker, exists := s.markers[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return marker, nil
}

// QueryMarkers implements [port.MarkerStore].
func (s *MarkerStore) QueryMarkers(ctx context.Context) ([]model.PersistedMarker, error) {
	return s.query(func(m *model.BaseMarker) bool { return true }), nil
}

// QueryMarkersByOwner implements [port.MarkerStore].
func (s *MarkerStore) QueryMarkersByOwner(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	return s.query(func(m *model.BaseMarker) bool { return m.OwnerID() == ownerID }), nil
}

// UpdateMarker implements [port.MarkerStore].
func (s *MarkerStore) UpdateMarker(ctx context.Context, id model.MarkerID, fields model.MarkerFields) (model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, exists := s.markers[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	marker := model.NewBaseMarker(existing.ID(), existing.OwnerID(), fields, existing.CreatedAt(), s.now())

	s.markers[id] = marker

	return marker, nil
}

func (s *MarkerStore) query(match func(m *model.BaseMarker) bool) []model.PersistedMarker {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	markers := make([]model.PersistedMarker, 0)
	for _, m := range s.markers {
		if !match(m) {
			continue
		}

		markers = append(markers, m)
	}

	sort.Slice(markers, func(i, j int) bool {
		return markers[i].CreatedAt().Before(markers[j].CreatedAt())
	})

	return markers
}

func NewMarkerStore() *MarkerStore {
	return &MarkerStore{
		markers: make(map[model.MarkerID]*model.BaseMarker),
		now:     time.Now,
	}
}

var _ port.MarkerStore = &MarkerStore{}
