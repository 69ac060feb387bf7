package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bornholm/lifemap/internal/adapter/memory"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/core/port/testsuite"
	"github.com/pkg/errors"
)

func TestMarkerStore(t *testing.T) {
	testsuite.TestMarkerStore(t, func(t *testing.T) (port.MarkerStore, error) {
		return NewMarkerStore(memory.NewMarkerStore(), 10, time.Minute), nil
	})
}

type countingMarkerStore struct {
	port.MarkerStore
	gets int
}

func (s *countingMarkerStore) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	s.gets++
	return s.MarkerStore.GetMarkerByID(ctx, id)
}

func TestMarkerStoreInvalidation(t *testing.T) {
	ctx := context.Background()

	backend := &countingMarkerStore{MarkerStore: memory.NewMarkerStore()}
	store := NewMarkerStore(backend, 10, time.Minute)

	created, err := backend.CreateMarker(ctx, model.NewUserID(), model.MarkerFields{Title: "Before"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for range 3 {
		if _, err := store.GetMarkerByID(ctx, created.ID()); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := 1, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}

	if _, err := store.UpdateMarker(ctx, created.ID(), model.MarkerFields{Title: "After"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := store.GetMarkerByID(ctx, created.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "After", found.Title(); e != g {
		t.Errorf("found.Title(): expected %s, got %s", e, g)
	}

	if e, g := 1, backend.gets; e != g {
		t.Errorf("backend.gets: expected %d, got %d", e, g)
	}
}

// stallingMarkerStore holds the first lookup between the backend read and
// its return, so an update can land in between.
type stallingMarkerStore struct {
	port.MarkerStore
	read    chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *stallingMarkerStore) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	marker, err := s.MarkerStore.GetMarkerByID(ctx, id)

	s.once.Do(func() {
		close(s.read)
		<-s.release
	})

	return marker, err
}

func TestMarkerStoreConcurrentUpdate(t *testing.T) {
	ctx := context.Background()

	backend := &stallingMarkerStore{
		MarkerStore: memory.NewMarkerStore(),
		read:        make(chan struct{}),
		release:     make(chan struct{}),
	}
	store := NewMarkerStore(backend, 10, time.Minute)

	created, err := backend.CreateMarker(ctx, model.NewUserID(), model.MarkerFields{Title: "Before"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	done := make(chan error)

	go func() {
		_, err := store.GetMarkerByID(ctx, created.ID())
		done <- err
	}()

	<-backend.read

	time.Sleep(time.Millisecond)

	if _, err := store.UpdateMarker(ctx, created.ID(), model.MarkerFields{Title: "After"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	close(backend.release)

	if err := <-done; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := store.GetMarkerByID(ctx, created.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "After", found.Title(); e != g {
		t.Errorf("found.Title(): expected %s, got %s", e, g)
	}
}
