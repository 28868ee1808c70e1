// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"goal_tracker/internal/feature/tracker/domain/entity"
	"goal_tracker/internal/feature/tracker/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "tracks"
)

// CachingTrackRepository decorates a TrackerRepository with a Redis read-through cache
// of each user's track list. Goal and task methods go straight to the inner repository.
type CachingTrackRepository struct {
	usecase.TrackerRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.TrackerRepository = (*CachingTrackRepository)(nil)

// NewCachingTrackRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tracks".
// A nil rdb disables caching.
func NewCachingTrackRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TrackerRepository, namespace string) *CachingTrackRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingTrackRepository{
		TrackerRepository: inner,
		rdb:               rdb,
		ttl:               ttl,
		namespace:         namespace,
	}
}

// ListTracks returns the cached list when present, otherwise loads and caches it.
//
// Entries are stored under the user's current generation, read before the load.
// A write bumps the generation after it commits, so a load that raced the write
// lands under a generation nobody reads any more.
func (c *CachingTrackRepository) ListTracks(ctx context.Context, userID int64) ([]entity.Track, error) {
	if c.rdb == nil {
		return c.TrackerRepository.ListTracks(ctx, userID)
	}

	gen, err := c.rdb.Get(ctx, c.genKey(userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("track cache unavailable", "user_id", userID, "error", err)
		return c.TrackerRepository.ListTracks(ctx, userID)
	}
	key := c.dataKey(userID, gen)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Track
		if err := json.Unmarshal(b, &out); err == nil {
			if out == nil {
				out = []entity.Track{}
			}
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.TrackerRepository.ListTracks(ctx, userID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("track cache write failed", "user_id", userID, "error", err)
		}
	}
	return out, nil
}

// CreateTrack creates the track and drops the user's cached list.
func (c *CachingTrackRepository) CreateTrack(ctx context.Context, userID int64, in entity.NewTrack) (*entity.Track, error) {
	t, err := c.TrackerRepository.CreateTrack(ctx, userID, in)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, userID)
	return t, nil
}

// UpdateTrack updates the track and drops the user's cached list.
func (c *CachingTrackRepository) UpdateTrack(ctx context.Context, userID, trackID int64, patch entity.TrackPatch) (*entity.Track, error) {
	t, err := c.TrackerRepository.UpdateTrack(ctx, userID, trackID, patch)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, userID)
	return t, nil
}

// DeleteTrack deletes the track and drops the user's cached list.
func (c *CachingTrackRepository) DeleteTrack(ctx context.Context, userID, trackID int64) error {
	if err := c.TrackerRepository.DeleteTrack(ctx, userID, trackID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// invalidate moves the user to a new generation. It is best effort; if it fails,
// the current entry expires after ttl.
func (c *CachingTrackRepository) invalidate(ctx context.Context, userID int64) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, c.genKey(userID)).Err(); err != nil {
		slog.Warn("track cache invalidation failed", "user_id", userID, "error", err)
	}
}

// genKey returns "<namespace>:user:<id>:gen". It has no expiry: a reset to 0 could
// revive an entry written under generation 0.
func (c *CachingTrackRepository) genKey(userID int64) string {
	return c.namespace + ":user:" + strconv.FormatInt(userID, 10) + ":gen"
}

// dataKey returns "<namespace>:user:<id>:v<gen>".
func (c *CachingTrackRepository) dataKey(userID, gen int64) string {
	return c.namespace + ":user:" + strconv.FormatInt(userID, 10) + ":v" + strconv.FormatInt(gen, 10)
}
