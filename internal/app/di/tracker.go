// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	trackeradapters "goal_tracker/internal/feature/tracker/adapters"
	"goal_tracker/internal/feature/tracker/usecase"
	"goal_tracker/internal/platform/cache"
	"goal_tracker/internal/platform/db"
)

// NewTrackerRepository creates a TrackerRepository implementation.
// If Redis is available, track lists are cached in it for ttl.
// Otherwise, the SQL repository is used directly.
func NewTrackerRepository(rdb *redis.Client, store *db.Store, ttl time.Duration) usecase.TrackerRepository {
	repo := trackeradapters.NewTrackerSQL(store)
	if rdb != nil {
		return cache.NewCachingTrackRepository(rdb, ttl, repo, "tracks")
	}
	return repo
}
