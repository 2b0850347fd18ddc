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

type BranchController struct {
	branchService *services.BranchService
	logger        *zap.Logger
}

func NewBranchController(branchService *services.BranchService, logger *zap.Logger) *BranchController {
	return &BranchController{
		branchService: branchService,
		logger:        logger,
	}
}

func (c *BranchController) CreateBranch(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return err
	}
	if err := schemas.PostBranch.Validate(payload); err != nil {
		c.logger.Debug("branch payload rejected", zap.Error(err))
		return err
	}

	branch, err := c.branchService.CreateBranch(ctx.Request().Context(), payload)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, branch, "Branch Created", http.StatusCreated)
}

func (c *BranchController) GetBranches(ctx echo.Context) error {
	branches, err := c.branchService.GetBranches(ctx.Request().Context())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, branches, "Branches Retrieved", http.StatusOK)
}

func (c *BranchController) FindBranch(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := schemas.GetBranchByID.Validate(map[string]any{"id": id}); err != nil {
		return err
	}

	branch, err := c.branchService.FindBranch(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, branch, fmt.Sprintf("branch with ID %q retrieved successfully", id), http.StatusOK)
}

func (c *BranchController) UpdateBranch(ctx echo.Context) error {
	payload, err := bindPayload(ctx)
	if err != nil {
		return err
	}

	id := ctx.Param("id")
	payload["id"] = id
	if err := schemas.PutBranch.Validate(payload); err != nil {
		c.logger.Debug("branch payload rejected", zap.Error(err))
		return err
	}
	// The id is immutable and lives outside the document fields.
	delete(payload, "id")

	branch, err := c.branchService.UpdateBranch(ctx.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, branch, "Branch Updated", http.StatusOK)
}

func (c *BranchController) DeleteBranch(ctx echo.Context) error {
	id := ctx.Param("id")
	if err := schemas.DeleteBranch.Validate(map[string]any{"id": id}); err != nil {
		return err
	}

	if err := c.branchService.DeleteBranch(ctx.Request().Context(), id); err != nil {
		return err
	}

	return utils.SuccessResponse(ctx, nil, "Branch Deleted", http.StatusOK)
}
