package shift

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (shift.ShiftService, employee.EmployeeRepository) {
	st := store.NewMemoryStore()
	employeeRepo := ledger.NewEmployeeRepository(st)
	return NewShiftService(store.NewLocker(), ledger.NewShiftRepository(st), employeeRepo), employeeRepo
}

func TestCreateShift_ClassifiesHours(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{
		Name: "Long", Department: "Warehouse", StartTime: "07:00", EndTime: "17:30",
	})
	require.NoError(t, err)
	assert.Equal(t, 10.5, resp.WorkHours)
	assert.Equal(t, string(shift.CompliantNonCitizensOnly), resp.Compliance)
	assert.NotEmpty(t, resp.Warning)
}

func TestUpdateShift_KeepsWorkHours(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.CreateShift(ctx, shift.CreateShiftRequest{Name: "Day", Department: "Sales", StartTime: "08:00", EndTime: "16:00"})
	require.NoError(t, err)

	end := "22:00"
	updated, err := svc.UpdateShift(ctx, shift.UpdateShiftRequest{ID: created.ID, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, "22:00", updated.EndTime)
	assert.Equal(t, 8.0, updated.WorkHours)
}

func TestDeleteShift_InUse(t *testing.T) {
	ctx := context.Background()
	svc, employeeRepo := newService()

	created, err := svc.CreateShift(ctx, shift.CreateShiftRequest{Name: "Day", Department: "Sales", StartTime: "08:00", EndTime: "16:00"})
	require.NoError(t, err)

	roster, err := employeeRepo.Load(ctx)
	require.NoError(t, err)
	id := created.ID
	_, err = employeeRepo.Save(ctx, roster.Put(employee.Employee{ID: "e1", ShiftID: &id}))
	require.NoError(t, err)

	err = svc.DeleteShift(ctx, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftInUse)

	list, err := svc.ListShifts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteShift(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.CreateShift(ctx, shift.CreateShiftRequest{Name: "Day", Department: "Sales", StartTime: "08:00", EndTime: "16:00"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteShift(ctx, created.ID))
	_, err = svc.GetShift(ctx, created.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}
