package gorm

import (
	"context"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateMarker implements port.MarkerStore.
func (s *Store) CreateMarker(ctx context.Context, ownerID model.UserID, fields model.MarkerFields) (model.PersistedMarker, error) {
	marker := &Marker{
		ID:      string(model.NewMarkerID()),
		OwnerID: string(ownerID),
	}

	applyFields(marker, fields)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(marker).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedMarker{marker}, nil
}

// GetMarkerByID implements port.MarkerStore.
func (s *Store) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	var marker Marker

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&marker, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedMarker{&marker}, nil
}

// QueryMarkers implements port.MarkerStore.
func (s *Store) QueryMarkers(ctx context.Context) ([]model.PersistedMarker, error) {
	var markers []*Marker

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Order("date_from ASC, created_at ASC").Find(&markers).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapMarkers(markers), nil
}

// QueryMarkersByOwner implements port.MarkerStore.
func (s *Store) QueryMarkersByOwner(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	var markers []*Marker

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Where("owner_id = ?", string(ownerID)).Order("date_from ASC, created_at ASC")

		if err := query.Find(&markers).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapMarkers(markers), nil
}

// UpdateMarker implements port.MarkerStore.
func (s *Store) UpdateMarker(ctx context.Context, id model.MarkerID, fields model.MarkerFields) (model.PersistedMarker, error) {
	var marker Marker

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&marker, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		applyFields(&marker, fields)

		if err := db.Save(&marker).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedMarker{&marker}, nil
}

func wrapMarkers(markers []*Marker) []model.PersistedMarker {
	wrapped := make([]model.PersistedMarker, 0, len(markers))
	for _, m := range markers {
		wrapped = append(wrapped, &wrappedMarker{m})
	}
	return wrapped
}
