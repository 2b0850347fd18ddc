package routes

import (
	"github.com/labstack/echo/v4"

	"employee-directory/internal/controllers"
)

func registerEmployeeRoutes(e *echo.Echo, ctrl *controllers.EmployeeController) {
	e.POST("/employee", ctrl.CreateEmployee)
	e.GET("/employee", ctrl.GetEmployees)
	e.GET("/employee/branch/:branchId", ctrl.GetEmployeesByBranch)
	e.GET("/employee/department/:department", ctrl.GetEmployeesByDepartment)
	e.GET("/employee/:id", ctrl.FindEmployee)
	e.PUT("/employee/:id", ctrl.UpdateEmployee)
	e.DELETE("/employee/:id", ctrl.DeleteEmployee)
}
