package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/lifemap/internal/adapter/memory"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type countingUserStore struct {
	port.UserStore
	finds int
}

func (s *countingUserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	s.finds++
	return s.UserStore.FindOrCreateUser(ctx, provider, subject)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	backend := &countingUserStore{UserStore: memory.NewUserStore()}
	store := NewUserStore(backend, 10, time.Minute)

	user, err := store.FindOrCreateUser(ctx, "local", "alice")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	again, err := store.FindOrCreateUser(ctx, "local", "alice")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := user.ID(), again.ID(); e != g {
		t.Errorf("again.ID(): expected %v, got %v", e, g)
	}

	if e, g := 1, backend.finds; e != g {
		t.Errorf("backend.finds: expected %d, got %d", e, g)
	}

	updatable := model.CopyUser(user)
	updatable.SetDisplayName("Alice")

	if err := store.SaveUser(ctx, updatable); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	found, err := store.GetUserByID(ctx, user.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Alice", found.DisplayName(); e != g {
		t.Errorf("found.DisplayName(): expected %s, got %s", e, g)
	}
}
