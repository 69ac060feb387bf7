package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestMarkerStore(t *testing.T, factory func(t *testing.T) (port.MarkerStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.MarkerStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateThenGet",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				owner := model.NewUserID()
				fields := graduationFields()

				created, err := store.CreateMarker(ctx, owner, fields)
				if err != nil {
					return errors.WithStack(err)
				}

				if created.ID() == "" {
					t.Errorf("created.ID(): should not be empty")
				}

				if created.CreatedAt().IsZero() {
					t.Errorf("created.CreatedAt(): should not be zero value")
				}

				if created.UpdatedAt().IsZero() {
					t.Errorf("created.UpdatedAt(): should not be zero value")
				}

				found, err := store.GetMarkerByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("found: %s", spew.Sdump(model.FieldsOf(found)))

				if e, g := created.ID(), found.ID(); e != g {
					t.Errorf("found.ID(): expected %s, got %s", e, g)
				}

				if e, g := owner, found.OwnerID(); e != g {
					t.Errorf("found.OwnerID(): expected %s, got %s", e, g)
				}

				assertFields(t, fields, model.FieldsOf(found))

				return nil
			},
		},
		{
			Name: "CreateTwice",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				owner := model.NewUserID()

				first, err := store.CreateMarker(ctx, owner, graduationFields())
				if err != nil {
					return errors.WithStack(err)
				}

				second, err := store.CreateMarker(ctx, owner, graduationFields())
				if err != nil {
					return errors.WithStack(err)
				}

				if first.ID() == second.ID() {
					t.Errorf("second.ID(): expected a new identifier, got %s twice", first.ID())
				}

				return nil
			},
		},
		{
			Name: "QueryMarkersByOwner",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				alice := model.NewUserID()
				bob := model.NewUserID()

				for range 3 {
					if _, err := store.CreateMarker(ctx, alice, graduationFields()); err != nil {
						return errors.WithStack(err)
					}
				}

				if _, err := store.CreateMarker(ctx, bob, graduationFields()); err != nil {
					return errors.WithStack(err)
				}

				markers, err := store.QueryMarkersByOwner(ctx, alice)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 3, len(markers); e != g {
					t.Errorf("len(markers): expected %d, got %d", e, g)
				}

				for _, m := range markers {
					if e, g := alice, m.OwnerID(); e != g {
						t.Errorf("m.OwnerID(): expected %s, got %s", e, g)
					}
				}

				markers, err = store.QueryMarkersByOwner(ctx, model.NewUserID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(markers); e != g {
					t.Errorf("len(markers): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "QueryMarkersIncludesPrivate",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				public := graduationFields()

				private := graduationFields()
				private.Private = true

				if _, err := store.CreateMarker(ctx, model.NewUserID(), public); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreateMarker(ctx, model.NewUserID(), private); err != nil {
					return errors.WithStack(err)
				}

				markers, err := store.QueryMarkers(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 2, len(markers); e != g {
					t.Fatalf("len(markers): expected %d, got %d", e, g)
				}

				privates := 0
				for _, m := range markers {
					if m.Private() {
						privates++
					}
				}

				if e, g := 1, privates; e != g {
					t.Errorf("privates: expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetUnknownMarker",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				_, err := store.GetMarkerByID(ctx, model.NewMarkerID())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "UpdateMarker",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				owner := model.NewUserID()

				created, err := store.CreateMarker(ctx, owner, graduationFields())
				if err != nil {
					return errors.WithStack(err)
				}

				fields := model.MarkerFields{
					Title: "First job",
					DateRange: model.DateRange{
						From: time.Date(2011, 1, 3, 0, 0, 0, 0, time.UTC),
						To:   time.Date(2014, 6, 30, 0, 0, 0, 0, time.UTC),
					},
					Location: model.Location{
						Name:    "Office",
						Address: "500 W 2nd St, Austin, TX 78701",
						Lat:     30.2651,
						Lng:     -97.7481,
					},
					Description: "",
					Private:     true,
				}

				updated, err := store.UpdateMarker(ctx, created.ID(), fields)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := created.ID(), updated.ID(); e != g {
					t.Errorf("updated.ID(): expected %s, got %s", e, g)
				}

				if e, g := owner, updated.OwnerID(); e != g {
					t.Errorf("updated.OwnerID(): expected %s, got %s", e, g)
				}

				if updated.UpdatedAt().Before(created.UpdatedAt()) {
					t.Errorf("updated.UpdatedAt(): expected %v to be after %v", updated.UpdatedAt(), created.UpdatedAt())
				}

				assertFields(t, fields, model.FieldsOf(updated))

				found, err := store.GetMarkerByID(ctx, created.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := owner, found.OwnerID(); e != g {
					t.Errorf("found.OwnerID(): expected %s, got %s", e, g)
				}

				assertFields(t, fields, model.FieldsOf(found))

				return nil
			},
		},
		{
			Name: "UpdateUnknownMarker",
			Run: func(t *testing.T, ctx context.Context, store port.MarkerStore) error {
				_, err := store.UpdateMarker(ctx, model.NewMarkerID(), graduationFields())
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected port.ErrNotFound, got %+v", err)
				}

				markers, err := store.QueryMarkers(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(markers); e != g {
					t.Errorf("len(markers): expected %d, got %d", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}

func graduationFields() model.MarkerFields {
	return model.MarkerFields{
		Title: "Graduation",
		DateRange: model.DateRange{
			From: time.Date(2010, 5, 1, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2010, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		Location: model.Location{
			Name:    "Campus",
			Address: "1 University Dr, Austin, TX 78712",
			Lat:     30.2849,
			Lng:     -97.7341,
		},
		Description: "Finally done",
		Private:     false,
	}
}

func assertFields(t *testing.T, expected, got model.MarkerFields) {
	t.Helper()

	if e, g := expected.Title, got.Title; e != g {
		t.Errorf("Title: expected %s, got %s", e, g)
	}

	if e, g := expected.DateRange.From, got.DateRange.From; !e.Equal(g) {
		t.Errorf("DateRange.From: expected %v, got %v", e, g)
	}

	if e, g := expected.DateRange.To, got.DateRange.To; !e.Equal(g) {
		t.Errorf("DateRange.To: expected %v, got %v", e, g)
	}

	if e, g := expected.Location, got.Location; e != g {
		t.Errorf("Location: expected %+v, got %+v", e, g)
	}

	if e, g := expected.Description, got.Description; e != g {
		t.Errorf("Description: expected %s, got %s", e, g)
	}

	if e, g := expected.Private, got.Private; e != g {
		t.Errorf("Private: expected %v, got %v", e, g)
	}
}
