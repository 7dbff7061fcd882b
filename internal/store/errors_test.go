package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogapi/internal/store"
)

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	t.Run("entity errors unwrap to generic kinds", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
		assert.ErrorIs(t, store.ErrBlogNotFound, store.ErrNotFound)
		assert.ErrorIs(t, store.ErrEmailExists, store.ErrDuplicate)
	})

	t.Run("wrapped errors still match", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("lookup failed: %w", store.ErrBlogNotFound)
		assert.True(t, store.IsNotFoundError(err))
		assert.False(t, store.IsDuplicateError(err))
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		t.Parallel()
		err := errors.New("connection refused")
		assert.False(t, store.IsNotFoundError(err))
		assert.False(t, store.IsDuplicateError(err))
	})
}
