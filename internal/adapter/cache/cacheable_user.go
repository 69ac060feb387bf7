package cache

import (
	"github.com/bornholm/lifemap/internal/core/model"
)

type CacheableUser struct {
	model.User
}

// CacheKeys implements [Cacheable].
func (u *CacheableUser) CacheKeys() []string {
	return []string{
		getUserProviderSubjectCacheKey(u.Provider(), u.Subject()),
		getUserIDCacheKey(u.ID()),
	}
}

func NewCacheableUser(user model.User) *CacheableUser {
	return &CacheableUser{user}
}

var (
	_ model.User = &CacheableUser{}
	_ Cacheable  = &CacheableUser{}
)

func getUserProviderSubjectCacheKey(provider string, subject string) string {
	return getCompositeCacheKey("user", provider, subject)
}

func getUserIDCacheKey(id model.UserID) string {
	return getCompositeCacheKey("user", id)
}
