package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		status   int
	}{
		{"validation", NewValidationError("blog", "name", "duplicate"), ErrValidation, 400},
		{"not found", NewNotFound("entry"), ErrNotFound, 404},
		{"invalid state", NewInvalidState("entry must be persisted"), ErrInvalidState, 409},
		{"integrity", NewIntegrityError("blog", "idx_blogs_name_slug", errors.New("duplicate key")), ErrIntegrity, 409},
		{"database", NewDatabaseError("list", "comments", errors.New("broken pipe")), ErrDatabase, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(tc.err, tc.sentinel))

			var apiErr *ApiErr
			assert.True(t, errors.As(tc.err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
		})
	}
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("tag", "slug", "bad format")))
	assert.True(t, IsNotFound(NewNotFound("blog")))
	assert.True(t, IsInvalidState(NewInvalidState("unsaved")))
	assert.True(t, IsIntegrity(NewIntegrityError("user_profile", "phone", nil)))
	assert.False(t, IsNotFound(NewValidationError("tag", "slug", "bad format")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := errors.New("duplicate key value violates unique constraint")
	err := NewIntegrityError("blog", "blogs_name_key", inner)
	assert.Contains(t, err.GetFullError(), "duplicate key value")
}
