package controllers

import (
	"github.com/labstack/echo/v4"

	apperrors "employee-directory/pkg/errors"
)

// bindPayload decodes the request body into the plain key-value object the
// schema validator consumes. An empty body yields an empty map, so required
// fields still fail validation with their own message.
func bindPayload(ctx echo.Context) (map[string]any, error) {
	payload := map[string]any{}
	if err := ctx.Bind(&payload); err != nil {
		return nil, apperrors.NewValidationError("Validation error: request body must be a JSON object")
	}
	return payload, nil
}
