package leave

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/leave"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) leave.LeaveService {
	st := store.NewMemoryStore()
	employeeRepo := ledger.NewEmployeeRepository(st)
	_, err := employeeRepo.Save(context.Background(), employee.NewRoster([]employee.Employee{{ID: "e1", Name: "Ali"}}, 0))
	require.NoError(t, err)
	return NewLeaveService(store.NewLocker(), ledger.NewLeaveRepository(st), employeeRepo)
}

func TestLeaveService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateLeave(ctx, leave.CreateLeaveRequest{
		EmployeeID: "e1", Type: "annual", StartDate: "2024-05-01", EndDate: "2024-05-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, 5, created.Days)
	assert.Equal(t, "Ali", created.EmployeeName)

	approved, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	reverted, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{ID: created.ID, Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "pending", reverted.Status)

	list, err := svc.ListLeaves(ctx, leave.LeaveFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteLeave(ctx, created.ID))
	_, err = svc.GetLeave(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestLeaveService_ReversedRangeIsZeroDays(t *testing.T) {
	svc := newService(t)

	created, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "e1", Type: "sick", StartDate: "2024-05-05", EndDate: "2024-05-01",
	})
	require.NoError(t, err)
	assert.Zero(t, created.Days)
}

func TestLeaveService_UnknownEmployee(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateLeave(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: "ghost", Type: "sick", StartDate: "2024-05-01", EndDate: "2024-05-01",
	})
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)
}
