package routes

import (
	"github.com/labstack/echo/v4"

	"employee-directory/internal/controllers"
)

func registerBranchRoutes(e *echo.Echo, ctrl *controllers.BranchController) {
	e.POST("/branch", ctrl.CreateBranch)
	e.GET("/branch", ctrl.GetBranches)
	e.GET("/branch/:id", ctrl.FindBranch)
	e.PUT("/branch/:id", ctrl.UpdateBranch)
	e.DELETE("/branch/:id", ctrl.DeleteBranch)
}
