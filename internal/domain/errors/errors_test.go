package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError_JoinsMessagesInOrder(t *testing.T) {
	err := NewValidationError("rating must be at least 1", "comment must be at least 10 characters long")

	assert.Equal(t, "rating must be at least 1, comment must be at least 10 characters long", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, ErrValidationFailed))
}

func TestBaseError_IsMatchesCopies(t *testing.T) {
	wrapped := ErrCartItemNotFound.WithDetails("item belongs to another cart").WrapMessage("remove item")

	assert.True(t, errors.Is(wrapped, ErrCartItemNotFound))
	assert.False(t, errors.Is(wrapped, ErrCartNotFound))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	err := NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to load cart")

	assert.Equal(t, "database execution failed", err.Message())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "connection refused")
}
