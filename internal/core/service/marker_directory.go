package service

import (
	"context"
	"sort"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/metrics"
	"github.com/pkg/errors"
)

type Person struct {
	User          model.User
	PublicMarkers int
}

// MarkerDirectory exposes the read side of the markers: the owner's own map,
// single marker lookups and the aggregated view of every person's public markers.
type MarkerDirectory struct {
	store     port.MarkerStore
	userStore port.UserStore
}

func (d *MarkerDirectory) ListOwnerMarkers(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	metrics.MarkerViews.WithLabelValues("owner").Inc()

	markers, err := d.store.QueryMarkersByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sortByDate(markers)

	return markers, nil
}

// GetMarker returns the marker if the viewer is allowed to see it. Private markers
// of other owners are reported as not found.
func (d *MarkerDirectory) GetMarker(ctx context.Context, viewerID model.UserID, markerID model.MarkerID) (model.PersistedMarker, error) {
	metrics.MarkerViews.WithLabelValues("detail").Inc()

	marker, err := d.store.GetMarkerByID(ctx, markerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if marker.Private() && marker.OwnerID() != viewerID {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return marker, nil
}

func (d *MarkerDirectory) ListPersons(ctx context.Context) ([]*Person, error) {
	metrics.MarkerViews.WithLabelValues("persons").Inc()

	markers, err := d.store.QueryMarkers(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	counts := map[model.UserID]int{}
	for _, m := range markers {
		if m.Private() {
			continue
		}

		counts[m.OwnerID()]++
	}

	persons := make([]*Person, 0, len(counts))
	for ownerID, count := range counts {
		user, err := d.userStore.GetUserByID(ctx, ownerID)
		if err != nil {
			if !errors.Is(err, port.ErrNotFound) {
				return nil, errors.WithStack(err)
			}

			user = model.NewUser(ownerID, "", "", string(ownerID))
		}

		persons = append(persons, &Person{
			User:          user,
			PublicMarkers: count,
		})
	}

	sort.Slice(persons, func(i, j int) bool {
		if persons[i].User.DisplayName() == persons[j].User.DisplayName() {
			return persons[i].User.ID() < persons[j].User.ID()
		}

		return persons[i].User.DisplayName() < persons[j].User.DisplayName()
	})

	return persons, nil
}

// ListPersonMarkers returns the public markers of the given person.
func (d *MarkerDirectory) ListPersonMarkers(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	metrics.MarkerViews.WithLabelValues("person").Inc()

	markers, err := d.store.QueryMarkersByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	public := make([]model.PersistedMarker, 0, len(markers))
	for _, m := range markers {
		if m.Private() {
			continue
		}

		public = append(public, m)
	}

	sortByDate(public)

	return public, nil
}

func sortByDate(markers []model.PersistedMarker) {
	sort.SliceStable(markers, func(i, j int) bool {
		fi, fj := markers[i].DateRange().From, markers[j].DateRange().From
		if fi.Equal(fj) {
			return markers[i].CreatedAt().Before(markers[j].CreatedAt())
		}

		return fi.Before(fj)
	})
}

func NewMarkerDirectory(store port.MarkerStore, userStore port.UserStore) *MarkerDirectory {
	return &MarkerDirectory{
		store:     store,
		userStore: userStore,
	}
}
