package cache

import (
	"context"
	"time"

	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
)

type UserStore struct {
	backend   port.UserStore
	userCache *MultiIndexCache[*CacheableUser]
}

// FindOrCreateUser implements [port.UserStore].
func (s *UserStore) FindOrCreateUser(ctx context.Context, provider string, subject string) (model.User, error) {
	if user, exists := s.userCache.Get(getUserProviderSubjectCacheKey(provider, subject)); exists {
		return user, nil
	}

	user, err := s.backend.FindOrCreateUser(ctx, provider, subject)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.userCache.Get(getUserIDCacheKey(userID)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// SaveUser implements [port.UserStore].
func (s *UserStore) SaveUser(ctx context.Context, user model.User) error {
	defer s.userCache.Remove(getUserIDCacheKey(user.ID()))

	return s.backend.SaveUser(ctx, user)
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend:   backend,
		userCache: NewMultiIndexCache[*CacheableUser]("users", size, ttl),
	}
}

var _ port.UserStore = &UserStore{}
