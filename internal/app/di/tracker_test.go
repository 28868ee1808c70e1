package di

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"goal_tracker/internal/platform/cache"
	"goal_tracker/internal/platform/db/dbtest"
)

func TestNewTrackerRepository(t *testing.T) {
	store := dbtest.NewStore(t)

	repo := NewTrackerRepository(nil, store, time.Minute)
	_, cached := repo.(*cache.CachingTrackRepository)
	assert.False(t, cached, "without redis the SQL repository is used directly")

	rdb, _ := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	repo = NewTrackerRepository(rdb, store, time.Minute)
	assert.IsType(t, &cache.CachingTrackRepository{}, repo)
}
