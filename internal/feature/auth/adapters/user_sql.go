// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"goal_tracker/internal/feature/auth/domain/entity"
	"goal_tracker/internal/feature/auth/usecase"
	"goal_tracker/internal/platform/db"
	"goal_tracker/internal/shared/apperr"
)

// userModel maps the users table. created_at is nullable in tables created by
// older deployments and is always filled by the column default.
type userModel struct {
	ID           int64      `gorm:"column:id;primaryKey"`
	Email        string     `gorm:"column:email"`
	PasswordHash string     `gorm:"column:password_hash"`
	Name         string     `gorm:"column:name"`
	CreatedAt    *time.Time `gorm:"column:created_at;<-:false"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() *entity.User {
	u := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
	}
	if m.CreatedAt != nil {
		u.CreatedAt = *m.CreatedAt
	}
	return u
}

// userSQL is the UserRepository implementation over the dialect-aware store.
type userSQL struct {
	store *db.Store
}

// Compile-time check that userSQL implements UserRepository.
var _ usecase.UserRepository = (*userSQL)(nil)

// NewUserSQL creates a userSQL bound to store.
func NewUserSQL(store *db.Store) *userSQL {
	return &userSQL{store: store}
}

// Create inserts the user and fills in ID and CreatedAt.
// It returns usecase.ErrEmailAlreadyExists if the email is already registered.
func (r *userSQL) Create(ctx context.Context, u *entity.User) error {
	return r.store.Transaction(ctx, func(q db.Querier) error {
		created, err := InsertUser(ctx, q, u.Email, u.PasswordHash, u.Name)
		if err != nil {
			return err
		}
		*u = *created
		return nil
	})
}

// InsertUser inserts a user row through q and returns it as stored.
// It is exported for callers that need the insert inside their own transaction.
func InsertUser(ctx context.Context, q db.Querier, email, passwordHash, name string) (*entity.User, error) {
	m := userModel{Email: email, PasswordHash: passwordHash, Name: name}
	if err := q.DB(ctx).Create(&m).Error; err != nil {
		if q.Dialect().IsUniqueViolation(err) {
			return nil, usecase.ErrEmailAlreadyExists
		}
		return nil, apperr.Storage(err)
	}
	return findUser(q.DB(ctx).Where("id = ?", m.ID))
}

// FindByEmail returns usecase.ErrUserNotFound if no user has the email.
// The match is exact: addresses are stored as registered.
func (r *userSQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findUser(r.store.DB(ctx).Where("email = ?", email))
}

// FindByID returns usecase.ErrUserNotFound if no user has the id.
func (r *userSQL) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return findUser(r.store.DB(ctx).Where("id = ?", id))
}

// UpdatePasswordHash replaces the stored hash.
func (r *userSQL) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	res := r.store.DB(ctx).Model(&userModel{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return apperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

func findUser(tx *gorm.DB) (*entity.User, error) {
	var m userModel
	if err := tx.Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, apperr.Storage(err)
	}
	return m.toEntity(), nil
}
