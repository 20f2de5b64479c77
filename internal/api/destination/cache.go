package destination

import (
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// ProfileCache stores inferred and fallback profiles for the process lifetime.
type ProfileCache interface {
	Get(key string) (types.DestinationProfile, bool)
	Set(key string, profile types.DestinationProfile)
	Len() int
}

var _ ProfileCache = (*MemoryCache)(nil)

// MemoryCache is a ProfileCache backed by go-cache with no expiration.
type MemoryCache struct {
	c *cache.Cache
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{c: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryCache) Get(key string) (types.DestinationProfile, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return types.DestinationProfile{}, false
	}
	p, ok := v.(types.DestinationProfile)
	return p, ok
}

// Set overwrites any previous entry; concurrent writers for the same key are last-writer-wins.
func (m *MemoryCache) Set(key string, profile types.DestinationProfile) {
	m.c.Set(key, profile, cache.NoExpiration)
}

func (m *MemoryCache) Len() int { return m.c.ItemCount() }
