package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_KindMatching(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", Validation("name is required"), ErrValidation},
		{"unauthorized", Unauthorized("Token is invalid"), ErrUnauthorized},
		{"not found", NotFound("Track not found"), ErrNotFound},
		{"conflict", Conflict("Email already registered"), ErrConflict},
		{"too many requests", TooManyRequests("slow down"), ErrTooManyRequests},
		{"storage", Storage(errors.New("connection reset")), ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.kind)
		})
	}
}

func TestError_SentinelIdentity(t *testing.T) {
	t.Parallel()

	trackNotFound := NotFound("Track not found")
	goalNotFound := NotFound("Goal not found")

	err := fmt.Errorf("list goals: %w", trackNotFound)

	assert.ErrorIs(t, err, trackNotFound)
	assert.NotErrorIs(t, err, goalNotFound, "distinct sentinels of the same kind must not match")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, Storage(nil))
	})

	t.Run("keeps the cause reachable", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("dial tcp: refused")
		err := Storage(cause)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "Internal server error", Message(err))
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		t.Parallel()
		notFound := NotFound("Goal not found")
		err := Storage(fmt.Errorf("tx: %w", notFound))
		assert.ErrorIs(t, err, notFound)
		assert.NotErrorIs(t, err, ErrStorage)
	})
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Track not found", Message(fmt.Errorf("x: %w", NotFound("Track not found"))))
	assert.Equal(t, "Internal server error", Message(errors.New("boom")))
}
