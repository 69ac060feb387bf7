package cache

import (
	"github.com/bornholm/lifemap/internal/core/model"
)

type CacheableMarker struct {
	model.PersistedMarker
}

// CacheKeys implements [Cacheable].
func (m *CacheableMarker) CacheKeys() []string {
	return []string{
		getMarkerCacheKey(m.ID()),
	}
}

func NewCacheableMarker(marker model.PersistedMarker) *CacheableMarker {
	return &CacheableMarker{marker}
}

var (
	_ model.PersistedMarker = &CacheableMarker{}
	_ Cacheable             = &CacheableMarker{}
)

func getMarkerCacheKey(id model.MarkerID) string {
	return getCompositeCacheKey("marker", id)
}
