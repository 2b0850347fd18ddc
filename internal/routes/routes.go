package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-directory/internal/controllers"
	"employee-directory/internal/repositories"
	"employee-directory/internal/services"
)

// InitRouter wires repository -> services -> controllers -> routes. It takes
// the repository interface rather than a pool so the same wiring serves the
// Postgres backend in production and the in-memory backend in tests.
func InitRouter(e *echo.Echo, repository repositories.DocumentRepositoryInterface, logger *zap.Logger) {
	branchService := services.NewBranchService(repository, logger)
	employeeService := services.NewEmployeeService(repository, logger)

	branchController := controllers.NewBranchController(branchService, logger)
	employeeController := controllers.NewEmployeeController(employeeService, logger)
	healthController := controllers.NewHealthController()

	e.GET("/health", healthController.Health)

	registerBranchRoutes(e, branchController)
	registerEmployeeRoutes(e, employeeController)
}
