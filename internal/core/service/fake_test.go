package service

import (
	"context"
	"sync"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type fakeGeocoder struct {
	place model.GeoPlace
	err   error

	calls     int
	addresses []string
}

// ResolveAddress implements port.Geocoder.
func (g *fakeGeocoder) ResolveAddress(ctx context.Context, address string) (model.GeoPlace, error) {
	g.calls++
	g.addresses = append(g.addresses, address)

	if g.err != nil {
		return model.GeoPlace{}, g.err
	}

	return g.place, nil
}

var _ port.Geocoder = &fakeGeocoder{}

type fakeMarkerStore struct {
	mutex   sync.Mutex
	markers map[model.MarkerID]*model.BaseMarker
	err     error

	createCalls int
	getCalls    int
	updateCalls int
}

// CreateMarker implements port.MarkerStore.
func (s *fakeMarkerStore) CreateMarker(ctx context.Context, ownerID model.UserID, fields model.MarkerFields) (model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.createCalls++

	if s.err != nil {
		return nil, s.err
	}

	now := time.Now()
	marker := model.NewBaseMarker(model.NewMarkerID(), ownerID, fields, now, now)
	s.markers[marker.ID()] = marker

	return marker, nil
}

// GetMarkerByID implements port.MarkerStore.
func (s *fakeMarkerStore) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.getCalls++

	if s.err != nil {
		return nil, s.err
	}

	marker, exists := s.markers[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return marker, nil
}

// QueryMarkers implements port.MarkerStore.
func (s *fakeMarkerStore) QueryMarkers(ctx context.Context) ([]model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	markers := make([]model.PersistedMarker, 0, len(s.markers))
	for _, m := range s.markers {
		markers = append(markers, m)
	}

	return markers, nil
}

// QueryMarkersByOwner implements port.MarkerStore.
func (s *fakeMarkerStore) QueryMarkersByOwner(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	markers := make([]model.PersistedMarker, 0)
	for _, m := range s.markers {
		if m.OwnerID() != ownerID {
			continue
		}
		markers = append(markers, m)
	}

	return markers, nil
}

// UpdateMarker implements port.MarkerStore.
func (s *fakeMarkerStore) UpdateMarker(ctx context.Context, id model.MarkerID, fields model.MarkerFields) (model.PersistedMarker, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.updateCalls++

	if s.err != nil {
		return nil, s.err
	}

	existing, exists := s.markers[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	marker := model.NewBaseMarker(existing.ID(), existing.OwnerID(), fields, existing.CreatedAt(), time.Now())
	s.markers[id] = marker

	return marker, nil
}

var _ port.MarkerStore = &fakeMarkerStore{}

func newFakeMarkerStore() *fakeMarkerStore {
	return &fakeMarkerStore{
		markers: map[model.MarkerID]*model.BaseMarker{},
	}
}

type fakeUserStore struct {
	users map[model.UserID]model.User
}

// FindOrCreateUser implements port.UserStore.
func (s *fakeUserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	for _, u := range s.users {
		if u.Provider() == provider && u.Subject() == subject {
			return u, nil
		}
	}

	user := model.NewUser(model.NewUserID(), provider, subject, subject)
	s.users[user.ID()] = user

	return user, nil
}

// GetUserByID implements port.UserStore.
func (s *fakeUserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// SaveUser implements port.UserStore.
func (s *fakeUserStore) SaveUser(ctx context.Context, user model.User) error {
	s.users[user.ID()] = user
	return nil
}

var _ port.UserStore = &fakeUserStore{}
