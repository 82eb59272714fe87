package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	err := NewNotFoundError("plan not found")
	assert.Equal(t, "not_found: plan not found", err.Error())

	withDetails := NewConflictError("plan has assigned clients", "4 clients")
	assert.Equal(t, "conflict: plan has assigned clients (4 clients)", withDetails.Error())
}

func TestConstructorsSetHTTPCodes(t *testing.T) {
	tests := []struct {
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{NewConflictError("exists"), ErrorTypeConflict, http.StatusConflict},
		{NewUnauthorizedError("who"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{NewForbiddenError("no"), ErrorTypeForbidden, http.StatusForbidden},
		{NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{NewBadRequestError("nope"), ErrorTypeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantType), func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestGetAppError_UnwrapsChains(t *testing.T) {
	base := NewForbiddenError("settings are locked on the current plan")
	wrapped := fmt.Errorf("save settings: %w", base)

	require.True(t, IsAppError(wrapped))
	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeForbidden, appErr.Type)

	assert.False(t, IsAppError(stderrors.New("plain")))
	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsConflictError(NewConflictError("exists")))
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
	assert.True(t, IsValidationError(NewValidationError("bad")))
	assert.True(t, IsForbiddenError(NewForbiddenError("no")))
	assert.False(t, IsConflictError(NewNotFoundError("missing")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'webhook' for key 'slug'")))
	assert.True(t, IsDuplicateError(stderrors.New("ERROR: duplicate key value violates unique constraint \"idx_features_slug\"")))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: features.slug")))
	assert.False(t, IsDuplicateError(stderrors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
