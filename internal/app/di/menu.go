// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	menuadapters "coffee_backend/internal/feature/menu/adapters"
	"coffee_backend/internal/feature/menu/usecase"
	"coffee_backend/internal/platform/cache"
)

// NewMenuRepository creates a MenuRepository implementation.
// If Redis is available, reads go through a Redis cache in front of the database.
func NewMenuRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.MenuRepository {
	repo := menuadapters.NewMenuRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingMenuRepository(rdb, ttl, repo, "menu")
}
