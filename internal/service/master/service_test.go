package master

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/branch"
	"github.com/cmlabs-hris/retail-hr/internal/domain/master/department"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) MasterService {
	st := store.NewMemoryStore()
	employeeRepo := ledger.NewEmployeeRepository(st)
	_, err := employeeRepo.Save(context.Background(), employee.NewRoster([]employee.Employee{
		{ID: "e1", Department: "Sales", Branch: "Riyadh Mall"},
	}, 0))
	require.NoError(t, err)
	return NewMasterService(store.NewLocker(), ledger.NewBranchRepository(st), ledger.NewDepartmentRepository(st), employeeRepo)
}

func TestDeleteBranch_RefusedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	used, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Riyadh Mall"})
	require.NoError(t, err)
	free, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Dammam"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteBranch(ctx, used.ID), branch.ErrBranchInUse)
	require.NoError(t, svc.DeleteBranch(ctx, free.ID))

	list, err := svc.ListBranches(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, used.ID, list[0].ID)
}

func TestCreateBranch_DuplicateName(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Jeddah"})
	require.NoError(t, err)
	_, err = svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "jeddah"})
	assert.ErrorIs(t, err, branch.ErrBranchNameExists)
}

func TestDeleteDepartment_RefusedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	sales, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "Sales"})
	require.NoError(t, err)
	hr, err := svc.CreateDepartment(ctx, department.CreateDepartmentRequest{Name: "HR"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteDepartment(ctx, sales.ID), department.ErrDepartmentInUse)
	require.NoError(t, svc.DeleteDepartment(ctx, hr.ID))

	list, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
