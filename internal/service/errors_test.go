package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, NewServiceError("op", "message", nil))
	})

	t.Run("sentinels pass through bare", func(t *testing.T) {
		for _, sentinel := range sentinels {
			err := NewServiceError("op", "message", sentinel)
			assert.Equal(t, sentinel, err)
		}
	})

	t.Run("wrapped sentinels are unwrapped to the sentinel", func(t *testing.T) {
		wrapped := NewServiceError("op", "message",
			errors.Join(errors.New("context"), ErrDocumentNotFound))
		assert.Equal(t, ErrDocumentNotFound, wrapped)
	})

	t.Run("unknown errors are wrapped with operation context", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewServiceError("select_answer", "failed to persist selection", cause)

		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "select_answer", svcErr.Operation)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "select_answer failed")
	})
}
