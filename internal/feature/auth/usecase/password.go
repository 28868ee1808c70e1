package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the user does not exist so that login
// takes the same time whether or not the email is registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordHasher hashes new passwords with bcrypt and verifies both bcrypt hashes
// and the unsalted SHA-256 hex digests written by earlier versions of the service.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost; a non-positive cost selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a bcrypt hash of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches stored. needsUpgrade is true when stored
// is a legacy digest and should be replaced by a bcrypt hash.
func (h *PasswordHasher) Verify(stored, password string) (ok, needsUpgrade bool) {
	if isLegacyDigest(stored) {
		sum := sha256.Sum256([]byte(password))
		want := hex.EncodeToString(sum[:])
		match := subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(stored))) == 1
		return match, match
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
}

// Burn performs a comparison against a fixed hash and discards the result.
func (h *PasswordHasher) Burn(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}

func isLegacyDigest(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}
