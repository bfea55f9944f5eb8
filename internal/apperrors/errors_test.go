package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     int
	}{
		{name: "not found", err: apperrors.NewNotFoundError("client missing"), sentinel: apperrors.ErrNotFound, code: http.StatusNotFound},
		{name: "conflict", err: apperrors.NewConflictError("document taken"), sentinel: apperrors.ErrDuplicate, code: http.StatusConflict},
		{name: "validation", err: apperrors.NewValidationFailedError("bad input"), sentinel: apperrors.ErrValidation, code: http.StatusBadRequest},
		{name: "unauthorized", err: apperrors.NewUnauthorizedError("bad token"), sentinel: apperrors.ErrUnauthorized, code: http.StatusUnauthorized},
		{name: "bare code", err: apperrors.NewAppError(http.StatusForbidden, "nope", nil), sentinel: apperrors.ErrForbidden, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			var appErr *apperrors.AppError
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestAppError_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to query clients", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to query clients: connection reset", err.Error())
}
