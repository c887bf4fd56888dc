package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NewNotFoundError("account", "a1"), http.StatusNotFound},
		{"validation", NewValidationError("narration is required"), http.StatusBadRequest},
		{"invalid amount", fmt.Errorf("%w: abc", ErrInvalidAmount), http.StatusBadRequest},
		{"same account", ErrSameAccount, http.StatusBadRequest},
		{"unbalanced", fmt.Errorf("%w: 500 != 400", ErrUnbalancedEntry), http.StatusUnprocessableEntity},
		{"invalid state", NewInvalidStateError("entry is POSTED"), http.StatusConflict},
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"conflict", ErrConcurrencyConflict, http.StatusConflict},
		{"internal", NewInternalError("db down", errors.New("boom")), http.StatusInternalServerError},
		{"app error code", NewAppError(http.StatusServiceUnavailable, "busy", nil), http.StatusServiceUnavailable},
		{"unknown", errors.New("what"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestInternalErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("failed to save entry", cause)
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save entry")
}
