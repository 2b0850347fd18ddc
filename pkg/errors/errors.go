package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to clients in the "code" field of the error envelope.
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeRepositoryError  = "REPOSITORY_ERROR"
	CodeDocumentNotFound = "DOCUMENT_NOT_FOUND"
	CodeUnknownError     = "UNKNOWN_ERROR"
)

// ValidationError is malformed or missing input, rejected before any store access.
type ValidationError struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Message:    fmt.Sprintf(format, args...),
		Code:       CodeValidationError,
		StatusCode: http.StatusBadRequest,
	}
}

// RepositoryError is a document-store level failure.
type RepositoryError struct {
	Message    string
	Code       string
	StatusCode int
	Err        error
}

func (e *RepositoryError) Error() string { return e.Message }
func (e *RepositoryError) Unwrap() error { return e.Err }

func NewRepositoryError(message string, err error) *RepositoryError {
	return &RepositoryError{
		Message:    message,
		Code:       CodeRepositoryError,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewDocumentNotFoundError(collection, id string) *RepositoryError {
	return &RepositoryError{
		Message:    fmt.Sprintf("document with ID %s not found in collection %s", id, collection),
		Code:       CodeDocumentNotFound,
		StatusCode: http.StatusNotFound,
	}
}

// ServiceError wraps a repository failure at the business layer. Code and
// status are inherited from the cause when it carries them.
type ServiceError struct {
	Message    string
	Code       string
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string { return e.Message }
func (e *ServiceError) Unwrap() error { return e.Err }

func NewServiceError(message string, cause error) *ServiceError {
	return &ServiceError{
		Message:    message,
		Code:       GetErrorCode(cause),
		StatusCode: GetStatusCode(cause),
		Err:        cause,
	}
}

func GetErrorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func GetErrorCode(err error) string {
	var validationErr *ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.Code
	}
	var repoErr *RepositoryError
	if stderrors.As(err, &repoErr) {
		return repoErr.Code
	}
	var svcErr *ServiceError
	if stderrors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeUnknownError
}

func GetStatusCode(err error) int {
	var validationErr *ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.StatusCode
	}
	var repoErr *RepositoryError
	if stderrors.As(err, &repoErr) {
		return repoErr.StatusCode
	}
	var svcErr *ServiceError
	if stderrors.As(err, &svcErr) {
		return svcErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err was caused by a missing document.
func IsNotFound(err error) bool {
	return GetErrorCode(err) == CodeDocumentNotFound
}
