package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/career"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/store"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"github.com/cmlabs-hris/retail-hr/internal/repository/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc        employee.EmployeeService
	shiftRepo  shift.ShiftRepository
	careerRepo career.CareerRepository
}

func newFixture() fixture {
	st := store.NewMemoryStore()
	shiftRepo := ledger.NewShiftRepository(st)
	careerRepo := ledger.NewCareerRepository(st)
	return fixture{
		svc:        NewEmployeeService(store.NewLocker(), ledger.NewEmployeeRepository(st), shiftRepo, careerRepo),
		shiftRepo:  shiftRepo,
		careerRepo: careerRepo,
	}
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	resp, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:       "  Ali Hassan ",
		Department: "Sales",
		Branch:     "Riyadh",
		Position:   "Cashier",
		Salary:     decimal.NewFromInt(6000),
		IBAN:       "sa03 8000 0000 6080 1016 7519",
		JoinDate:   "2024-01-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ali Hassan", resp.Name)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "SA0380000000608010167519", resp.IBAN)

	path, err := f.careerRepo.Load(ctx)
	require.NoError(t, err)
	hires := path.Path(resp.ID)
	require.Len(t, hires, 1)
	assert.Equal(t, career.TypeHire, hires[0].Type)
	assert.Equal(t, "2024-01-15", hires[0].Date)
}

func TestCreateEmployee_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{Salary: decimal.NewFromInt(-1)})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "name")
	assert.Contains(t, verrs.ToMap(), "salary")
}

func TestCreateEmployee_UnknownShift(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name: "Sara", Department: "HR", Salary: decimal.NewFromInt(5000), ShiftID: strPtr("nope"),
	})
	assert.ErrorIs(t, err, employee.ErrShiftNotFound)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	req := employee.CreateEmployeeRequest{Name: "A", Department: "HR", Salary: decimal.NewFromInt(1), Email: "a@shop.com"}
	_, err := f.svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	req.Email = "A@SHOP.com"
	_, err = f.svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdateEmployee_RecordsCareerChanges(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name: "Omar", Department: "Sales", Branch: "Riyadh", Position: "Cashier", Salary: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	salary := decimal.NewFromInt(6500)
	updated, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Position: strPtr("Supervisor"),
		Salary:   &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, "Supervisor", updated.Position)

	path, err := f.careerRepo.Load(ctx)
	require.NoError(t, err)
	types := map[career.Type]bool{}
	for _, m := range path.Path(created.ID) {
		types[m.Type] = true
	}
	assert.True(t, types[career.TypeHire])
	assert.True(t, types[career.TypePromotion])
	assert.True(t, types[career.TypeSalaryChange])
	assert.False(t, types[career.TypeTransfer])
}

func TestUpdateEmployee_ClearShift(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	catalog, err := f.shiftRepo.Load(ctx)
	require.NoError(t, err)
	_, err = f.shiftRepo.Save(ctx, catalog.Put(shift.New("s1", "Morning", "Sales", "08:00", "16:00")))
	require.NoError(t, err)

	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name: "Lina", Department: "Sales", Salary: decimal.NewFromInt(4000), ShiftID: strPtr("s1"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.ShiftID)

	updated, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: created.ID, ClearShift: true})
	require.NoError(t, err)
	assert.Nil(t, updated.ShiftID)
}

func TestListAndDeleteEmployees(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for _, name := range []string{"Ali", "Alia", "Sara"} {
		_, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{Name: name, Department: "Sales", Salary: decimal.NewFromInt(1000)})
		require.NoError(t, err)
	}

	list, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{Name: "ali"})
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, f.svc.DeleteEmployee(ctx, list[0].ID))
	_, err = f.svc.GetEmployee(ctx, list[0].ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, f.svc.DeleteEmployee(ctx, list[0].ID), employee.ErrEmployeeNotFound)
}
