package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"employee-directory/internal/dto"
	"employee-directory/internal/repositories"
	apperrors "employee-directory/pkg/errors"
)

const branchesCollection = "branches"

type BranchService struct {
	repository repositories.DocumentRepositoryInterface
	logger     *zap.Logger
}

func NewBranchService(repository repositories.DocumentRepositoryInterface, logger *zap.Logger) *BranchService {
	return &BranchService{
		repository: repository,
		logger:     logger,
	}
}

// CreateBranch persists the validated fields and returns the generated id plus
// the input projection. The stored document is not re-read.
func (s *BranchService) CreateBranch(ctx context.Context, fields map[string]any) (*dto.BranchDTO, error) {
	id, err := s.repository.Create(ctx, branchesCollection, fields)
	if err != nil {
		s.logger.Error("failed to create branch", zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to create branch: %s", apperrors.GetErrorMessage(err)), err)
	}

	branch := dto.NewBranchDTO(id, fields)
	return &branch, nil
}

func (s *BranchService) GetBranches(ctx context.Context) ([]dto.BranchDTO, error) {
	docs, err := s.repository.GetAll(ctx, branchesCollection)
	if err != nil {
		s.logger.Error("failed to get branches", zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to get all branches: %s", apperrors.GetErrorMessage(err)), err)
	}

	branches := make([]dto.BranchDTO, 0, len(docs))
	for _, doc := range docs {
		branches = append(branches, dto.NewBranchDTO(doc.ID, doc.Fields))
	}
	return branches, nil
}

func (s *BranchService) FindBranch(ctx context.Context, id string) (*dto.BranchDTO, error) {
	doc, err := s.repository.GetByID(ctx, branchesCollection, id)
	if err != nil {
		s.logger.Error("failed to find branch", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to get branch %s: %s", id, apperrors.GetErrorMessage(err)), err)
	}

	branch := dto.NewBranchDTO(doc.ID, doc.Fields)
	return &branch, nil
}

// UpdateBranch merges the supplied fields over the stored document. The result
// is the id plus the supplied fields only, not a re-read of the merged state.
func (s *BranchService) UpdateBranch(ctx context.Context, id string, fields map[string]any) (*dto.BranchDTO, error) {
	if err := s.repository.Update(ctx, branchesCollection, id, fields); err != nil {
		s.logger.Error("failed to update branch", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to update branch %s: %s", id, apperrors.GetErrorMessage(err)), err)
	}

	branch := dto.NewBranchDTO(id, fields)
	return &branch, nil
}

func (s *BranchService) DeleteBranch(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, branchesCollection, id); err != nil {
		s.logger.Error("failed to delete branch", zap.String("id", id), zap.Error(err))
		return apperrors.NewServiceError(fmt.Sprintf("Failed to delete branch %s: %s", id, apperrors.GetErrorMessage(err)), err)
	}
	return nil
}
