package service

import (
	"context"
	"testing"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

func TestMarkerDirectory(t *testing.T) {
	ctx := context.Background()

	store := newFakeMarkerStore()
	users := &fakeUserStore{users: map[model.UserID]model.User{}}

	alice := model.NewUser(model.NewUserID(), "local", "alice", "Alice")
	bob := model.NewUser(model.NewUserID(), "local", "bob", "Bob")
	carol := model.NewUser(model.NewUserID(), "local", "carol", "Carol")

	for _, u := range []model.User{alice, bob, carol} {
		if err := users.SaveUser(ctx, u); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	pipeline := NewMarkerPipeline(&fakeGeocoder{place: austin}, store)

	create := func(owner model.User, title, from string, private bool) model.PersistedMarker {
		form := graduationForm()
		form.Title = title
		form.DateFrom = from
		form.DateTo = from
		form.IsPrivate = private

		marker, err := pipeline.CreateMarker(ctx, owner.ID(), form)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		return marker
	}

	create(bob, "Moved out", "2015-09-01", false)
	create(bob, "Birth", "1990-02-11", false)
	bobSecret := create(bob, "Secret", "2001-01-01", true)
	create(alice, "Wedding", "2018-06-23", false)
	create(carol, "Diary", "2020-03-01", true)

	directory := NewMarkerDirectory(store, users)

	t.Run("ListOwnerMarkers", func(t *testing.T) {
		markers, err := directory.ListOwnerMarkers(ctx, bob.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		expected := []string{"Birth", "Secret", "Moved out"}

		if e, g := len(expected), len(markers); e != g {
			t.Fatalf("len(markers): expected %d, got %d", e, g)
		}

		for i, title := range expected {
			if e, g := title, markers[i].Title(); e != g {
				t.Errorf("markers[%d].Title(): expected %s, got %s", i, e, g)
			}
		}
	})

	t.Run("ListPersons", func(t *testing.T) {
		persons, err := directory.ListPersons(ctx)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 2, len(persons); e != g {
			t.Fatalf("len(persons): expected %d, got %d", e, g)
		}

		if e, g := "Alice", persons[0].User.DisplayName(); e != g {
			t.Errorf("persons[0].User.DisplayName(): expected %s, got %s", e, g)
		}

		if e, g := 1, persons[0].PublicMarkers; e != g {
			t.Errorf("persons[0].PublicMarkers: expected %d, got %d", e, g)
		}

		if e, g := "Bob", persons[1].User.DisplayName(); e != g {
			t.Errorf("persons[1].User.DisplayName(): expected %s, got %s", e, g)
		}

		if e, g := 2, persons[1].PublicMarkers; e != g {
			t.Errorf("persons[1].PublicMarkers: expected %d, got %d", e, g)
		}
	})

	t.Run("ListPersonMarkers", func(t *testing.T) {
		markers, err := directory.ListPersonMarkers(ctx, bob.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 2, len(markers); e != g {
			t.Fatalf("len(markers): expected %d, got %d", e, g)
		}

		for _, m := range markers {
			if m.Private() {
				t.Errorf("marker '%s' should not be listed", m.Title())
			}
		}
	})

	t.Run("GetPrivateMarkerAsOwner", func(t *testing.T) {
		marker, err := directory.GetMarker(ctx, bob.ID(), bobSecret.ID())
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := bobSecret.ID(), marker.ID(); e != g {
			t.Errorf("marker.ID(): expected %s, got %s", e, g)
		}
	})

	t.Run("GetPrivateMarkerAsOther", func(t *testing.T) {
		_, err := directory.GetMarker(ctx, alice.ID(), bobSecret.ID())
		if !errors.Is(err, port.ErrNotFound) {
			t.Errorf("err: expected port.ErrNotFound, got %+v", err)
		}
	})
}
