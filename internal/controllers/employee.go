package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-directory/internal/schemas"
	"employee-directory/internal/services"
	"employee-directory/pkg/utils"
)

type EmployeeController struct {
	employeeService *services.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeController(employeeService *services.EmployeeService, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		logger:          logger,
	}
}

func (c *EmployeeController) CreateEmployee(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return err
	}
	if err := schemas.PostEmployee.Validate(payload); err != nil {
		c.logger.Debug("employee payload rejected", zap.Error(err))
		return err
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request().Context(), payload)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, employee, "Employee Created", http.StatusCreated)
}

func (c *EmployeeController) GetEmployees(ctx echo.Context) error {
	employees, err := c.employeeService.GetEmployees(ctx.Request().Context())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, employees, "Employees Retrieved", http.StatusOK)
}

func (c *EmployeeController) FindEmployee(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := schemas.GetEmployeeByID.Validate(map[string]any{"id": id}); err != nil {
		return err
	}

	employee, err := c.employeeService.FindEmployee(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, employee, fmt.Sprintf("employee with ID %q retrieved successfully", id), http.StatusOK)
}

func (c *EmployeeController) UpdateEmployee(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return err
	}

	id := ctx.Param("id")
	payload["id"] = id
	if err := schemas.PutEmployee.Validate(payload); err != nil {
		c.logger.Debug("employee payload rejected", zap.Error(err))
		return err
	}
	delete(payload, "id")

	employee, err := c.employeeService.UpdateEmployee(ctx.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, employee, "Employee Updated", http.StatusOK)
}

func (c *EmployeeController) DeleteEmployee(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := schemas.DeleteEmployee.Validate(map[string]any{"id": id}); err != nil {
		return err
	}

	if err := c.employeeService.DeleteEmployee(ctx.Request().Context(), id); err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, nil, "Employee Deleted", http.StatusOK)
}

// GetEmployeesByBranch lists the employees referencing a branch. An unknown
// branch id simply yields an empty list.
func (c *EmployeeController) GetEmployeesByBranch(ctx echo.Context) error {
	branchID := ctx.Param("branchId")
	if err := schemas.GetEmployeesByBranch.Validate(map[string]any{"branchId": branchID}); err != nil {
		return err
	}

	limit := utils.ParseLimit(ctx.QueryParam("limit"))
	employees, err := c.employeeService.GetEmployeesByField(ctx.Request().Context(), "branchId", branchID, limit)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, employees, "Employees Retrieved", http.StatusOK)
}

func (c *EmployeeController) GetEmployeesByDepartment(ctx echo.Context) error {
	department := ctx.Param("department")
	if err := schemas.GetEmployeesByDepartment.Validate(map[string]any{"department": department}); err != nil {
		return err
	}

	limit := utils.ParseLimit(ctx.QueryParam("limit"))
	employees, err := c.employeeService.GetEmployeesByField(ctx.Request().Context(), "department", department, limit)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, employees, "Employees Retrieved", http.StatusOK)
}
