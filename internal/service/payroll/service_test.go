package payroll

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc            payroll.PayrollService
	adjustmentRepo adjustment.AdjustmentRepository
	store          store.Store
}

func newFixture(t *testing.T) fixture {
	st := store.NewMemoryStore()
	employeeRepo := ledger.NewEmployeeRepository(st)
	_, err := employeeRepo.Save(context.Background(), employee.NewRoster([]employee.Employee{
		{ID: "e1", Name: "Ali", Department: "Sales", Salary: decimal.NewFromInt(10000)},
		{ID: "e2", Name: "Sara", Department: "HR", Salary: decimal.NewFromInt(8000)},
	}, 0))
	require.NoError(t, err)

	adjustmentRepo := ledger.NewAdjustmentRepository(st)
	return fixture{
		svc:            NewPayrollService(employeeRepo, adjustmentRepo, ledger.NewSettingsRepository(st)),
		adjustmentRepo: adjustmentRepo,
		store:          st,
	}
}

func TestComputePayroll_FiltersAndSummarizes(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.ComputePayroll(context.Background(), payroll.ComputePayrollRequest{
		StartMonth: "2024-01", EndMonth: "2024-01", Department: "Sales",
	})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "e1", resp.Records[0].EmployeeID)
	assert.True(t, resp.Records[0].Net.Equal(decimal.NewFromInt(12600)))
	assert.Equal(t, 1, resp.Summary.TotalEmployees)
	assert.Equal(t, "Jan 2024", resp.Label)
	assert.Equal(t, "SAR", resp.Currency)
}

func TestComputePayroll_RecomputesFromCurrentLedgers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := payroll.ComputePayrollRequest{StartMonth: "2024-01", EndMonth: "2024-01"}

	before, err := f.svc.GetPayslip(ctx, "e2", req)
	require.NoError(t, err)

	l, err := f.adjustmentRepo.Load(ctx)
	require.NoError(t, err)
	_, err = f.adjustmentRepo.Save(ctx, l.Append(adjustment.Adjustment{
		ID: "a1", EmployeeID: "e2", Type: adjustment.TypeBonus, Amount: decimal.NewFromInt(400), Date: "2024-01-20",
	}))
	require.NoError(t, err)

	after, err := f.svc.GetPayslip(ctx, "e2", req)
	require.NoError(t, err)
	assert.True(t, after.Net.Sub(before.Net).Equal(decimal.NewFromInt(400)))
}

func TestComputePayroll_UsesSettingsRates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	settingsRepo := ledger.NewSettingsRepository(f.store)
	cfg, err := settingsRepo.Load(ctx)
	require.NoError(t, err)
	cfg.HousingRate = decimal.Zero
	_, err = settingsRepo.Save(ctx, cfg)
	require.NoError(t, err)

	slip, err := f.svc.GetPayslip(ctx, "e1", payroll.ComputePayrollRequest{StartMonth: "2024-01", EndMonth: "2024-01"})
	require.NoError(t, err)
	assert.True(t, slip.Housing.IsZero())
	assert.True(t, slip.Net.Equal(decimal.NewFromInt(10100)))
}

func TestGetPayslip_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.GetPayslip(ctx, "ghost", payroll.ComputePayrollRequest{StartMonth: "2024-01", EndMonth: "2024-01"})
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotFound)

	_, err = f.svc.ComputePayroll(ctx, payroll.ComputePayrollRequest{StartMonth: "2024", EndMonth: "2024-01"})
	assert.Error(t, err)
}
