package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"employee-directory/internal/dto"
	"employee-directory/internal/repositories"
	apperrors "employee-directory/pkg/errors"
)

const employeesCollection = "employees"

type EmployeeService struct {
	repository repositories.DocumentRepositoryInterface
	logger     *zap.Logger
}

func NewEmployeeService(repository repositories.DocumentRepositoryInterface, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repository: repository,
		logger:     logger,
	}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, fields map[string]any) (*dto.EmployeeDTO, error) {
	id, err := s.repository.Create(ctx, employeesCollection, fields)
	if err != nil {
		s.logger.Error("failed to create employee", zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to create employee: %s", apperrors.GetErrorMessage(err)), err)
	}

	employee := dto.NewEmployeeDTO(id, fields)
	return &employee, nil
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]dto.EmployeeDTO, error) {
	docs, err := s.repository.GetAll(ctx, employeesCollection)
	if err != nil {
		s.logger.Error("failed to get employees", zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to get all employees: %s", apperrors.GetErrorMessage(err)), err)
	}

	employees := make([]dto.EmployeeDTO, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, dto.NewEmployeeDTO(doc.ID, doc.Fields))
	}
	return employees, nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id string) (*dto.EmployeeDTO, error) {
	doc, err := s.repository.GetByID(ctx, employeesCollection, id)
	if err != nil {
		s.logger.Error("failed to find employee", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to get employee %s: %s", id, apperrors.GetErrorMessage(err)), err)
	}

	employee := dto.NewEmployeeDTO(doc.ID, doc.Fields)
	return &employee, nil
}

// GetEmployeesByField filters employees by field equality. No matches is an
// empty list, never an error.
func (s *EmployeeService) GetEmployeesByField(ctx context.Context, field, value string, limit int) ([]dto.EmployeeDTO, error) {
	docs, err := s.repository.GetByFieldValue(ctx, employeesCollection, field, value, limit)
	if err != nil {
		s.logger.Error("failed to get employees by field",
			zap.String("field", field), zap.String("value", value), zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to get employees by %s %s: %s", field, value, apperrors.GetErrorMessage(err)), err)
	}

	employees := make([]dto.EmployeeDTO, 0, len(docs))
	for _, doc := range docs {
		employees = append(employees, dto.NewEmployeeDTO(doc.ID, doc.Fields))
	}
	return employees, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, fields map[string]any) (*dto.EmployeeDTO, error) {
	if err := s.repository.Update(ctx, employeesCollection, id, fields); err != nil {
		s.logger.Error("failed to update employee", zap.String("id", id), zap.Error(err))
		return nil, apperrors.NewServiceError(fmt.Sprintf("Failed to update employee %s: %s", id, apperrors.GetErrorMessage(err)), err)
	}

	employee := dto.NewEmployeeDTO(id, fields)
	return &employee, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.repository.Delete(ctx, employeesCollection, id); err != nil {
		s.logger.Error("failed to delete employee", zap.String("id", id), zap.Error(err))
		return apperrors.NewServiceError(fmt.Sprintf("Failed to delete employee %s: %s", id, apperrors.GetErrorMessage(err)), err)
	}
	return nil
}
