// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"goal_tracker/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum password length accepted at registration.
	minPasswordLength = 8

	bearerPrefix = "Bearer "
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and fills in its ID and CreatedAt.
	// It returns ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// UpdatePasswordHash replaces the stored hash for the user.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

// TokenService signs and verifies access tokens.
type TokenService interface {
	GenerateToken(userID int64, email string) (string, error)
	ParseToken(token string) (int64, error)
}

// LoginResult is returned by Login and Register.
type LoginResult struct {
	Token string
	User  *entity.User
}

// authUsecase implements authentication business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenService
	hasher *PasswordHasher
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenService, hasher *PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

// normalizeEmail trims surrounding whitespace. Case is kept: addresses are stored
// and matched exactly as registered.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Login authenticates a user and returns a signed token.
// An unknown email and a wrong password produce the same error, and a bcrypt
// comparison runs in both cases.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		u.hasher.Burn(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, needsUpgrade := u.hasher.Verify(user.PasswordHash, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if needsUpgrade {
		u.upgradeHash(ctx, user, password)
	}

	return u.issue(user)
}

// upgradeHash replaces a legacy digest with bcrypt. Failure leaves the legacy
// digest in place, which still verifies, so login proceeds either way.
func (u *authUsecase) upgradeHash(ctx context.Context, user *entity.User, password string) {
	hashed, err := u.hasher.Hash(password)
	if err == nil {
		err = u.users.UpdatePasswordHash(ctx, user.ID, hashed)
	}
	if err != nil {
		slog.Warn("password hash upgrade failed", "user_id", user.ID, "error", err)
		return
	}
	user.PasswordHash = hashed
	slog.Info("password hash upgraded to bcrypt", "user_id", user.ID)
}

// Register creates an account and logs it in.
func (u *authUsecase) Register(ctx context.Context, email, password, name string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, "<> ") {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{Email: email, PasswordHash: hashed, Name: name}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issue(user)
}

// Authenticate verifies a token, with or without the "Bearer " prefix, and returns its user id.
func (u *authUsecase) Authenticate(token string) (int64, error) {
	token = strings.TrimPrefix(token, bearerPrefix)
	userID, err := u.tokens.ParseToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return userID, nil
}

// CurrentUser returns the account behind an authenticated user id.
func (u *authUsecase) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

func (u *authUsecase) issue(user *entity.User) (*LoginResult, error) {
	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{Token: token, User: user}, nil
}
