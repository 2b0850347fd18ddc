package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Validation error: %s is required", "Name")

	assert.Equal(t, "Validation error: Name is required", err.Error())
	assert.Equal(t, CodeValidationError, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestNewServiceError_InheritsFromRepositoryCause(t *testing.T) {
	cause := NewDocumentNotFoundError("employees", "999")
	err := NewServiceError("Failed to delete employee 999: "+cause.Error(), cause)

	assert.Equal(t, CodeDocumentNotFound, err.Code)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Contains(t, err.Error(), "999")

	var repoErr *RepositoryError
	require.True(t, stderrors.As(err, &repoErr), "cause should stay reachable through Unwrap")
	assert.Equal(t, cause, repoErr)
}

func TestNewServiceError_UnknownCauseFallsBack(t *testing.T) {
	err := NewServiceError("Failed to get branch 1: boom", stderrors.New("boom"))

	assert.Equal(t, CodeUnknownError, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
}

func TestIsNotFound(t *testing.T) {
	notFound := NewDocumentNotFoundError("branches", "42")
	wrapped := NewServiceError("Failed to get branch 42: "+notFound.Error(), notFound)

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsNotFound(NewRepositoryError("connection reset", nil)))
	assert.False(t, IsNotFound(stderrors.New("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestGetStatusCode_Defaults(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(stderrors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(NewRepositoryError("down", nil)))
	assert.Equal(t, http.StatusBadRequest, GetStatusCode(NewValidationError("bad")))
}
