package adjustment

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) adjustment.AdjustmentService {
	st := store.NewMemoryStore()
	employeeRepo := ledger.NewEmployeeRepository(st)
	_, err := employeeRepo.Save(context.Background(), employee.NewRoster([]employee.Employee{{ID: "e1", Name: "Ali"}}, 0))
	require.NoError(t, err)
	return NewAdjustmentService(store.NewLocker(), ledger.NewAdjustmentRepository(st), employeeRepo)
}

func TestAdjustmentService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for _, req := range []adjustment.CreateAdjustmentRequest{
		{EmployeeID: "e1", Type: "bonus", Amount: decimal.NewFromInt(1000), Date: "2024-01-10"},
		{EmployeeID: "e1", Type: "transport-allowance", Amount: decimal.NewFromInt(200), Date: "2024-01-10"},
		{EmployeeID: "e1", Type: "advance", Amount: decimal.NewFromInt(500), Date: "2024-01-11"},
	} {
		_, err := svc.CreateAdjustment(ctx, req)
		require.NoError(t, err)
	}

	sum, err := svc.GetSummary(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, sum.TotalBonuses.Equal(decimal.NewFromInt(1200)))
	assert.True(t, sum.TotalDeductions.Equal(decimal.NewFromInt(500)))
	assert.True(t, sum.NetBalance.Equal(decimal.NewFromInt(700)))
}

func TestAdjustmentService_DeleteExcludesFromSums(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateAdjustment(ctx, adjustment.CreateAdjustmentRequest{EmployeeID: "e1", Type: "deduction", Amount: decimal.NewFromInt(300), Date: "2024-02-01"})
	require.NoError(t, err)
	assert.False(t, created.Additive)

	require.NoError(t, svc.DeleteAdjustment(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteAdjustment(ctx, created.ID), adjustment.ErrAdjustmentNotFound)

	list, err := svc.ListAdjustments(ctx, adjustment.AdjustmentFilter{EmployeeID: "e1"})
	require.NoError(t, err)
	assert.Empty(t, list)

	sum, err := svc.GetSummary(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, sum.TotalDeductions.IsZero())
}

func TestAdjustmentService_RejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.CreateAdjustment(ctx, adjustment.CreateAdjustmentRequest{EmployeeID: "e1", Type: "gift", Amount: decimal.Zero, Date: "x"})
	assert.Error(t, err)

	_, err = svc.CreateAdjustment(ctx, adjustment.CreateAdjustmentRequest{EmployeeID: "ghost", Type: "bonus", Amount: decimal.NewFromInt(1), Date: "2024-01-01"})
	assert.ErrorIs(t, err, adjustment.ErrEmployeeNotFound)
}
