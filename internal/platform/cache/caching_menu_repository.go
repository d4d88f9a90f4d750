// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"coffee_backend/internal/feature/menu/domain/entity"
	"coffee_backend/internal/feature/menu/usecase"
)

var _ usecase.MenuRepository = (*CachingMenuRepository)(nil)

// CachingMenuRepository decorates a MenuRepository with Redis caching.
// Reads (List, Search) are served from Redis when possible; every mutation
// drops all cached menu entries.
type CachingMenuRepository struct {
	inner     usecase.MenuRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMenuRepository decorates a MenuRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "menu".
// A nil rdb disables caching.
func NewCachingMenuRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MenuRepository, namespace string) *CachingMenuRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "menu"
	}
	return &CachingMenuRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingMenuRepository) List(ctx context.Context) ([]entity.MenuItem, error) {
	return c.read(ctx, c.namespace+":list", func() ([]entity.MenuItem, error) {
		return c.inner.List(ctx)
	})
}

func (c *CachingMenuRepository) Search(ctx context.Context, q string) ([]entity.MenuItem, error) {
	return c.read(ctx, c.namespace+":search:"+safe(q), func() ([]entity.MenuItem, error) {
		return c.inner.Search(ctx, q)
	})
}

func (c *CachingMenuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if err := c.inner.Create(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMenuRepository) Update(ctx context.Context, id uint, item *entity.MenuItem) error {
	if err := c.inner.Update(ctx, id, item); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingMenuRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// read checks the cache first, then falls back to load and stores its result.
func (c *CachingMenuRepository) read(ctx context.Context, key string, load func() ([]entity.MenuItem, error)) ([]entity.MenuItem, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.MenuItem
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingMenuRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	// Best effort: entries expire after ttl anyway
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMenuRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes a search query into a key segment. Search ignores case,
// so queries differing only in case share an entry.
func safe(s string) string {
	return url.QueryEscape(strings.ToLower(s))
}
