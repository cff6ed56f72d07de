package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"acredge/internal/domain/service"
)

// TokenCache remembers the last validated session token per identity.
type TokenCache struct {
	cache *gocache.Cache
}

func NewTokenCache(ttl time.Duration) *TokenCache {
	return &TokenCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *TokenCache) Get(identity string) (string, bool) {
	v, ok := c.cache.Get(identity)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

func (c *TokenCache) Set(identity, token string) {
	c.cache.SetDefault(identity, token)
}

func (c *TokenCache) Evict(identity string) {
	c.cache.Delete(identity)
}

var _ service.TokenCache = (*TokenCache)(nil)
