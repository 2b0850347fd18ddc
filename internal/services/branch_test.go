package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-directory/internal/repositories"
	apperrors "employee-directory/pkg/errors"
)

// failingRepository answers every call with the same repository error.
type failingRepository struct {
	err error
}

func (r *failingRepository) GetAll(context.Context, string) ([]repositories.Document, error) {
	return nil, r.err
}

func (r *failingRepository) GetByID(context.Context, string, string) (*repositories.Document, error) {
	return nil, r.err
}

func (r *failingRepository) GetByFieldValue(context.Context, string, string, string, int) ([]repositories.Document, error) {
	return nil, r.err
}

func (r *failingRepository) Create(context.Context, string, map[string]any) (string, error) {
	return "", r.err
}

func (r *failingRepository) Update(context.Context, string, string, map[string]any) error {
	return r.err
}

func (r *failingRepository) Delete(context.Context, string, string) error {
	return r.err
}

func newBranchService() *BranchService {
	return NewBranchService(repositories.NewMemoryDocumentRepository(), zap.NewNop())
}

func TestBranchService_CreateReturnsInputProjection(t *testing.T) {
	svc := newBranchService()

	branch, err := svc.CreateBranch(context.Background(), map[string]any{
		"name":    "Main",
		"address": "123 Main St",
		"phone":   "123-456-7890",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, branch.ID)
	assert.Equal(t, "Main", branch.Name)
	assert.Equal(t, "123 Main St", branch.Address)
	assert.Equal(t, "123-456-7890", branch.Phone)
}

func TestBranchService_GetBranchesShapesDocuments(t *testing.T) {
	svc := newBranchService()
	ctx := context.Background()

	first, err := svc.CreateBranch(ctx, map[string]any{"name": "First", "address": "1 A St", "phone": "111-111-1111"})
	require.NoError(t, err)
	_, err = svc.CreateBranch(ctx, map[string]any{"name": "Second", "address": "2 B St", "phone": "222-222-2222"})
	require.NoError(t, err)

	branches, err := svc.GetBranches(ctx)
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, first.ID, branches[0].ID)
	assert.Equal(t, "First", branches[0].Name)
}

func TestBranchService_FindBranchNotFound(t *testing.T) {
	svc := newBranchService()

	_, err := svc.FindBranch(context.Background(), "999")
	require.Error(t, err)

	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Message, "Failed to get branch 999")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBranchService_UpdatePartialProjection(t *testing.T) {
	svc := newBranchService()
	ctx := context.Background()

	created, err := svc.CreateBranch(ctx, map[string]any{"name": "Main", "address": "123 Main St", "phone": "123-456-7890"})
	require.NoError(t, err)

	updated, err := svc.UpdateBranch(ctx, created.ID, map[string]any{"address": "456 Oak Ave"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "456 Oak Ave", updated.Address)
	assert.Empty(t, updated.Name, "update result carries only the supplied fields")

	stored, err := svc.FindBranch(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Main", stored.Name, "unspecified fields are not cleared")
	assert.Equal(t, "456 Oak Ave", stored.Address)
}

func TestBranchService_DeleteThenFindBranch(t *testing.T) {
	svc := newBranchService()
	ctx := context.Background()

	created, err := svc.CreateBranch(ctx, map[string]any{"name": "Main", "address": "123 Main St", "phone": "123-456-7890"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBranch(ctx, created.ID))

	_, err = svc.FindBranch(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), created.ID)
}

func TestBranchService_WrapsRepositoryFailures(t *testing.T) {
	cause := apperrors.NewRepositoryError("connection reset", errors.New("reset"))
	svc := NewBranchService(&failingRepository{err: cause}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.CreateBranch(ctx, map[string]any{"name": "Main"})
	require.Error(t, err)
	assert.Equal(t, "Failed to create branch: connection reset", err.Error())

	_, err = svc.GetBranches(ctx)
	require.Error(t, err)
	assert.Equal(t, "Failed to get all branches: connection reset", err.Error())

	_, err = svc.UpdateBranch(ctx, "1", map[string]any{"name": "X"})
	require.Error(t, err)
	assert.Equal(t, "Failed to update branch 1: connection reset", err.Error())

	err = svc.DeleteBranch(ctx, "1")
	require.Error(t, err)
	assert.Equal(t, "Failed to delete branch 1: connection reset", err.Error())

	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, apperrors.CodeRepositoryError, svcErr.Code)
	assert.Equal(t, 500, svcErr.StatusCode)
}
