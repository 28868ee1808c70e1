package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authadapters "goal_tracker/internal/feature/auth/adapters"
	authusecase "goal_tracker/internal/feature/auth/usecase"
	trackeradapters "goal_tracker/internal/feature/tracker/adapters"
	"goal_tracker/internal/platform/db/dbtest"
)

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) {
	return "", errors.New("boom")
}

func TestSeedIfEmpty_Idempotent(t *testing.T) {
	store := dbtest.NewStore(t)
	ctx := context.Background()
	hasher := authusecase.NewPasswordHasher(bcrypt.MinCost)

	inserted, err := SeedIfEmpty(ctx, store, hasher)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = SeedIfEmpty(ctx, store, hasher)
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.Equal(t, 1, dbtest.Count(t, store, "users"))
	assert.Equal(t, 7, dbtest.Count(t, store, "tracks"))
	assert.Equal(t, 1, dbtest.Count(t, store, "goals"))
	assert.Equal(t, 3, dbtest.Count(t, store, "tasks"))
}

func TestSeedIfEmpty_Content(t *testing.T) {
	store := dbtest.NewStore(t)
	ctx := context.Background()
	hasher := authusecase.NewPasswordHasher(bcrypt.MinCost)

	_, err := SeedIfEmpty(ctx, store, hasher)
	require.NoError(t, err)

	u, err := authadapters.NewUserSQL(store).FindByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	assert.Equal(t, DemoName, u.Name)
	ok, upgrade := hasher.Verify(u.PasswordHash, DemoPassword)
	assert.True(t, ok)
	assert.False(t, upgrade)

	repo := trackeradapters.NewTrackerSQL(store)
	tracks, err := repo.ListTracks(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 7)
	assert.Equal(t, "Morning Routine", tracks[0].Name)
	assert.Equal(t, "#10B981", tracks[0].Color)
	assert.Equal(t, "Evening Wind-down", tracks[6].Name)

	goals, err := repo.ListGoals(ctx, u.ID, tracks[0].ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Wake up early", goals[0].Title)
	assert.Equal(t, 7, goals[0].TargetValue)
	assert.Equal(t, 0, goals[0].CurrentValue)
	assert.Equal(t, "days per week", goals[0].Unit)

	tasks, err := repo.ListTasks(ctx, u.ID, goals[0].ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Set alarm for 6 AM", tasks[0].Title)
	assert.Equal(t, "No snoozing allowed", tasks[1].Description)
	for _, k := range tasks {
		assert.False(t, k.Completed)
	}

	for _, tr := range tracks[1:] {
		gs, err := repo.ListGoals(ctx, u.ID, tr.ID)
		require.NoError(t, err)
		assert.Empty(t, gs, tr.Name)
	}
}

func TestSeedIfEmpty_HashFailureWritesNothing(t *testing.T) {
	store := dbtest.NewStore(t)

	_, err := SeedIfEmpty(context.Background(), store, failingHasher{})
	assert.Error(t, err)
	assert.Equal(t, 0, dbtest.Count(t, store, "users"))
}
