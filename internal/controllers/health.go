package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health is the plain-text liveness signal.
func (c *HealthController) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Server is healthy")
}
