package search

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"acredge/internal/domain/service"
	"acredge/pkg/logger"
)

const generationKey = "search:generation"

// CachedIndex serves repeated searches from Redis. Every mutation bumps a
// generation counter that is part of the cache key, so stale pages are
// never read back. The bump happens after the wrapped index returns, which
// for Algolia is after the indexing task is published.
type CachedIndex struct {
	service.SearchIndex
	rdb *redis.Client
	ttl time.Duration
}

func NewCachedIndex(next service.SearchIndex, rdb *redis.Client, ttl time.Duration) *CachedIndex {
	return &CachedIndex{SearchIndex: next, rdb: rdb, ttl: ttl}
}

func (c *CachedIndex) Index(ctx context.Context, id string, record map[string]interface{}) error {
	defer c.bump(ctx)
	return c.SearchIndex.Index(ctx, id, record)
}

func (c *CachedIndex) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	defer c.bump(ctx)
	return c.SearchIndex.Update(ctx, id, partial)
}

func (c *CachedIndex) Delete(ctx context.Context, id string) error {
	defer c.bump(ctx)
	return c.SearchIndex.Delete(ctx, id)
}

func (c *CachedIndex) Replace(ctx context.Context, records []map[string]interface{}) error {
	defer c.bump(ctx)
	return c.SearchIndex.Replace(ctx, records)
}

func (c *CachedIndex) Search(ctx context.Context, query service.SearchQuery) (*service.SearchResult, error) {
	key, err := c.key(ctx, query)
	if err != nil {
		logger.Warn("Search cache unavailable: %v", err)
		return c.SearchIndex.Search(ctx, query)
	}

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var cached service.SearchResult
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	} else if err != redis.Nil {
		logger.Warn("Search cache read failed: %v", err)
	}

	result, err := c.SearchIndex.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			logger.Warn("Search cache write failed: %v", err)
		}
	}
	return result, nil
}

func (c *CachedIndex) key(ctx context.Context, query service.SearchQuery) (string, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Result()
	if err == redis.Nil {
		gen = "0"
	} else if err != nil {
		return "", err
	}

	raw, err := json.Marshal(query)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(raw)
	return "search:" + gen + ":" + hex.EncodeToString(sum[:]), nil
}

func (c *CachedIndex) bump(ctx context.Context) {
	if err := c.rdb.Incr(context.WithoutCancel(ctx), generationKey).Err(); err != nil {
		logger.Warn("Failed to invalidate search cache: %v", err)
	}
}
