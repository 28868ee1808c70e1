package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal_tracker/internal/feature/auth/domain/entity"
	"goal_tracker/internal/feature/auth/usecase"
	"goal_tracker/internal/platform/db/dbtest"
)

func TestNewUserSQL(t *testing.T) {
	store := dbtest.NewStore(t)

	repo := NewUserSQL(store)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.store, "store is nil")
}

func TestUserSQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		repo := NewUserSQL(dbtest.NewStore(t))

		user := &entity.User{Email: "test@example.com", PasswordHash: "hashed_password", Name: "Test"}
		err := repo.Create(context.Background(), user)

		require.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.Equal(t, "Test", user.Name)
	})

	t.Run("duplicate email error", func(t *testing.T) {
		store := dbtest.NewStore(t)
		repo := NewUserSQL(store)

		err := repo.Create(context.Background(), &entity.User{Email: "duplicate@example.com", PasswordHash: "p1", Name: "One"})
		require.NoError(t, err, "failed to create first user")

		err = repo.Create(context.Background(), &entity.User{Email: "duplicate@example.com", PasswordHash: "p2", Name: "Two"})

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
		assert.Equal(t, 1, dbtest.Count(t, store, "users"))
	})
}

func TestUserSQL_FindByEmail(t *testing.T) {
	repo := NewUserSQL(dbtest.NewStore(t))
	ctx := context.Background()

	created := &entity.User{Email: "find@example.com", PasswordHash: "hash", Name: "Finder"}
	require.NoError(t, repo.Create(ctx, created))

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "hash", found.PasswordHash)
		assert.Equal(t, "Finder", found.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserSQL_FindByID(t *testing.T) {
	repo := NewUserSQL(dbtest.NewStore(t))
	ctx := context.Background()

	created := &entity.User{Email: "id@example.com", PasswordHash: "hash", Name: "By ID"}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "id@example.com", found.Email)

	_, err = repo.FindByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestUserSQL_UpdatePasswordHash(t *testing.T) {
	repo := NewUserSQL(dbtest.NewStore(t))
	ctx := context.Background()

	created := &entity.User{Email: "up@example.com", PasswordHash: "old", Name: "Up"}
	require.NoError(t, repo.Create(ctx, created))

	require.NoError(t, repo.UpdatePasswordHash(ctx, created.ID, "new"))
	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, 999, "x"), usecase.ErrUserNotFound)
}

func TestUserSQL_LegacyNullCreatedAt(t *testing.T) {
	store := dbtest.NewLegacyStore(t)
	dbtest.Exec(t, store,
		`INSERT INTO users (email, password_hash, name, created_at) VALUES ('old@example.com', 'hash', 'Old', NULL)`)
	repo := NewUserSQL(store)

	found, err := repo.FindByEmail(context.Background(), "old@example.com")

	require.NoError(t, err)
	assert.Equal(t, "Old", found.Name)
	assert.True(t, found.CreatedAt.IsZero())
}

func TestUserSQL_FindByEmailIsExact(t *testing.T) {
	repo := NewUserSQL(dbtest.NewStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "Alice@Example.com", PasswordHash: "hash", Name: "Alice"}))

	found, err := repo.FindByEmail(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice@Example.com", found.Email)

	_, err = repo.FindByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
