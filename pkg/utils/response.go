package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "employee-directory/pkg/errors"
)

// APIResponse is the uniform envelope around every JSON response.
type APIResponse struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func SuccessResponse(ctx echo.Context, data interface{}, message string, code int) error {
	return ctx.JSON(code, &APIResponse{
		Status:  "success",
		Data:    data,
		Message: message,
	})
}

// NewHTTPErrorHandler returns the centralized error normalizer, installed as
// echo's HTTPErrorHandler. It is the single point where internal error shapes
// become the wire contract: nothing beyond message and code leaks out.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		statusCode := http.StatusInternalServerError
		message := "Internal server error"
		errorCode := ""

		var validationErr *apperrors.ValidationError
		var serviceErr *apperrors.ServiceError
		var repoErr *apperrors.RepositoryError
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &validationErr):
			statusCode = validationErr.StatusCode
			message = validationErr.Message
			errorCode = validationErr.Code
		case errors.As(err, &serviceErr):
			statusCode = serviceErr.StatusCode
			message = serviceErr.Message
			errorCode = serviceErr.Code
		case errors.As(err, &repoErr):
			statusCode = repoErr.StatusCode
			message = repoErr.Message
			errorCode = repoErr.Code
		case errors.As(err, &httpErr):
			statusCode = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		default:
			logger.Error("unexpected error", zap.Error(err))
		}

		response := &APIResponse{
			Status:  "error",
			Message: message,
			Code:    errorCode,
		}

		if writeErr := ctx.JSON(statusCode, response); writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
