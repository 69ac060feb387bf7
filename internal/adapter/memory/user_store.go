package memory

import (
	"context"
	"sync"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type UserStore struct {
	mutex sync.RWMutex
	users map[model.UserID]*model.BaseUser
}

// FindOrCreateUser implements [port.UserStore].
func (s *UserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, u := range s.users {
		if u.Provider() == provider && u.Subject() == subject {
			return model.CopyUser(u), nil
		}
	}

	user := model.NewUser(model.NewUserID(), provider, subject, subject)
	s.users[user.ID()] = user

	return model.CopyUser(user), nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return model.CopyUser(user), nil
}

// SaveUser implements [port.UserStore].
func (s *UserStore) SaveUser(ctx context.Context, user model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.users[user.ID()] = model.CopyUser(user)

	return nil
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[model.UserID]*model.BaseUser),
	}
}

var _ port.UserStore = &UserStore{}
