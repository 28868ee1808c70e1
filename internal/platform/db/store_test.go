package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"goal_tracker/internal/shared/apperr"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := NewStore(gdb, sqliteDialect{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, EnsureSchema(context.Background(), store))
	return store
}

type userRow struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	Email        string     `gorm:"column:email"`
	PasswordHash string     `gorm:"column:password_hash"`
	Name         string     `gorm:"column:name"`
	CreatedAt    *time.Time `gorm:"column:created_at;<-:false"`
}

func (userRow) TableName() string {
	return "users"
}

func createUser(q Querier, email string) (int64, error) {
	u := userRow{Email: email, PasswordHash: "hash", Name: "Test User"}
	err := q.DB(context.Background()).Create(&u).Error
	return u.ID, err
}

func insertUser(t *testing.T, q Querier, email string) int64 {
	t.Helper()
	id, err := createUser(q, email)
	require.NoError(t, err)
	return id
}

func countUsers(t *testing.T, s *Store) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.DB(context.Background()).Model(&userRow{}).Count(&n).Error)
	return n
}

func TestStore_CreateAndFind(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	first := insertUser(t, store, "a@example.com")
	second := insertUser(t, store, "b@example.com")
	assert.Greater(t, second, first)

	var got userRow
	require.NoError(t, store.DB(ctx).Where("id = ?", first).Take(&got).Error)
	assert.Equal(t, "a@example.com", got.Email)
	require.NotNil(t, got.CreatedAt, "created_at should be filled by the column default")
	assert.False(t, got.CreatedAt.IsZero())

	err := store.DB(ctx).Where("id = ?", 9999).Take(&got).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var all []userRow
	require.NoError(t, store.DB(ctx).Order("created_at ASC, id ASC").Find(&all).Error)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID)
	assert.Equal(t, second, all[1].ID)
}

func TestStore_TransactionCommits(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	err := store.Transaction(context.Background(), func(q Querier) error {
		insertUser(t, q, "a@example.com")
		insertUser(t, q, "b@example.com")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), countUsers(t, store))
}

func TestStore_TransactionRollsBackOnError(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	boom := apperr.Validation("boom")

	err := store.Transaction(context.Background(), func(q Querier) error {
		insertUser(t, q, "a@example.com")
		return boom
	})
	assert.ErrorIs(t, err, apperr.ErrValidation, "classified errors pass through unchanged")
	assert.Equal(t, int64(0), countUsers(t, store))
}

func TestStore_TransactionRollsBackOnPanic(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	assert.Panics(t, func() {
		_ = store.Transaction(context.Background(), func(q Querier) error {
			insertUser(t, q, "a@example.com")
			panic("boom")
		})
	})
	assert.Equal(t, int64(0), countUsers(t, store))

	// The single pooled connection must have been released.
	insertUser(t, store, "b@example.com")
	assert.Equal(t, int64(1), countUsers(t, store))
}

func TestStore_UniqueViolationIsDetectable(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	insertUser(t, store, "dup@example.com")
	_, err := createUser(store, "dup@example.com")
	require.Error(t, err)
	assert.True(t, store.Dialect().IsUniqueViolation(err))

	err = store.Transaction(context.Background(), func(q Querier) error {
		_, err := createUser(q, "dup@example.com")
		return err
	})
	assert.ErrorIs(t, err, apperr.ErrStorage)
	assert.True(t, store.Dialect().IsUniqueViolation(err), "the cause stays reachable through the storage error")
}

func TestStore_UpdateReportsAffectedRows(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	id := insertUser(t, store, "a@example.com")
	res := store.DB(ctx).Model(&userRow{}).Where("id = ?", id).Update("name", "Renamed")
	require.NoError(t, res.Error)
	assert.Equal(t, int64(1), res.RowsAffected)

	res = store.DB(ctx).Model(&userRow{}).Where("id = ?", id+100).Update("name", "Renamed")
	require.NoError(t, res.Error)
	assert.Equal(t, int64(0), res.RowsAffected)
}

func TestStore_DBCarriesContext(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var n int64
	err := store.DB(ctx).Model(&userRow{}).Count(&n).Error
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	insertUser(t, store, "a@example.com")
	require.NoError(t, EnsureSchema(context.Background(), store))
	assert.Equal(t, int64(1), countUsers(t, store), "re-running schema keeps existing rows")
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	require.NoError(t, store.Ping(context.Background()))
	require.NoError(t, store.Close())
	assert.Error(t, store.Ping(context.Background()))
}
