package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDecimal(t *testing.T, want int64, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %d, got %s", field, want, got)
}

func TestComputePayroll_SingleMonthNoAdjustments(t *testing.T) {
	emps := []employee.Employee{{ID: "e1", Name: "Ali", Salary: dec(10000)}}

	records := ComputePayroll(emps, nil, Period{Start: "2024-01", End: "2024-01"}, DefaultRates())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, 1, r.MonthCount)
	assertDecimal(t, 10000, r.Basic, "basic")
	assertDecimal(t, 2500, r.Housing, "housing")
	assertDecimal(t, 1000, r.Transport, "transport")
	assertDecimal(t, 900, r.Insurance, "insurance")
	assertDecimal(t, 12600, r.Net, "net")
}

func TestComputePayroll_MonthCount(t *testing.T) {
	emps := []employee.Employee{{ID: "e1", Salary: dec(1000)}}

	records := ComputePayroll(emps, nil, Period{Start: "2024-01", End: "2024-03"}, DefaultRates())
	assert.Equal(t, 3, records[0].MonthCount)
	assertDecimal(t, 3000, records[0].Basic, "basic")

	records = ComputePayroll(emps, nil, Period{Start: "2023-11", End: "2024-02"}, DefaultRates())
	assert.Equal(t, 4, records[0].MonthCount)
}

func TestComputePayroll_ReversedRangeClampsToZero(t *testing.T) {
	emps := []employee.Employee{{ID: "e1", Salary: dec(5000)}}
	adjs := []adjustment.Adjustment{
		{ID: "a1", EmployeeID: "e1", Type: adjustment.TypeBonus, Amount: dec(100), Date: "2024-02-10"},
	}

	records := ComputePayroll(emps, adjs, Period{Start: "2024-03", End: "2024-01"}, DefaultRates())
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].MonthCount)
	assert.True(t, records[0].Basic.IsZero())
	assert.True(t, records[0].TotalBonuses.IsZero())
	assert.True(t, records[0].Net.IsZero())
}

func TestComputePayroll_Adjustments(t *testing.T) {
	deleted := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	emps := []employee.Employee{
		{ID: "e1", Salary: dec(10000)},
		{ID: "e2", Salary: dec(8000)},
	}
	adjs := []adjustment.Adjustment{
		{ID: "a1", EmployeeID: "e1", Type: adjustment.TypeBonus, Amount: dec(500), Date: "2024-01-15"},
		{ID: "a2", EmployeeID: "e1", Type: adjustment.TypeHousingAllowance, Amount: dec(300), Date: "2024-02-28"},
		{ID: "a3", EmployeeID: "e1", Type: adjustment.TypeAdvance, Amount: dec(1000), Date: "2024-02-01"},
		{ID: "a4", EmployeeID: "e1", Type: adjustment.TypeDeduction, Amount: dec(50), Date: "2024-03-01"},
		{ID: "a5", EmployeeID: "e1", Type: adjustment.TypeBonus, Amount: dec(999), Date: "2024-01-20", DeletedAt: &deleted},
		{ID: "a6", EmployeeID: "e2", Type: adjustment.TypeDeduction, Amount: dec(200), Date: "2024-01-05"},
	}

	records := ComputePayroll(emps, adjs, Period{Start: "2024-01", End: "2024-02"}, DefaultRates())
	require.Len(t, records, 2)

	e1 := records[0]
	assertDecimal(t, 800, e1.TotalBonuses, "bonuses")
	assertDecimal(t, 1000, e1.TotalDeductions, "deductions")
	// 20000 + 5000 + 2000 - 1800 + 800 - 1000
	assertDecimal(t, 25000, e1.Net, "net")

	e2 := records[1]
	assertDecimal(t, 200, e2.TotalDeductions, "deductions")
	assertDecimal(t, 16000+4000+1600-1440-200, e2.Net, "net")
}

func TestComputePayroll_NetRoundsHalfAwayFromZero(t *testing.T) {
	emps := []employee.Employee{{ID: "e1", Salary: decimal.RequireFromString("1000.5")}}
	rates := Rates{Housing: decimal.Zero, Transport: decimal.Zero, Insurance: decimal.Zero}

	records := ComputePayroll(emps, nil, Period{Start: "2024-01", End: "2024-01"}, rates)
	assertDecimal(t, 1001, records[0].Net, "net")
}

func TestComputePayroll_IsDeterministic(t *testing.T) {
	emps := []employee.Employee{{ID: "e1", Salary: dec(7000)}, {ID: "e2", Salary: dec(4000)}}
	adjs := []adjustment.Adjustment{
		{ID: "a1", EmployeeID: "e2", Type: adjustment.TypeBonus, Amount: dec(123), Date: "2024-05-02"},
	}
	p := Period{Start: "2024-05", End: "2024-06"}

	first := ComputePayroll(emps, adjs, p, DefaultRates())
	second := ComputePayroll(emps, adjs, p, DefaultRates())
	assert.Equal(t, first, second)
}

func TestPeriod(t *testing.T) {
	p := Period{Start: "2024-01", End: "2024-03"}
	assert.True(t, p.Contains("2024-01-01"))
	assert.True(t, p.Contains("2024-03-31"))
	assert.False(t, p.Contains("2023-12-31"))
	assert.False(t, p.Contains("2024-04-01"))

	assert.Equal(t, "Jan 2024 - Mar 2024", p.Label())
	assert.Equal(t, "Jan 2024", Period{Start: "2024-01", End: "2024-01"}.Label())
}

func TestSummarize(t *testing.T) {
	emps := []employee.Employee{{ID: "e1", Salary: dec(10000)}, {ID: "e2", Salary: dec(5000)}}
	records := ComputePayroll(emps, nil, Period{Start: "2024-01", End: "2024-01"}, DefaultRates())

	totals := Summarize(records)
	assert.Equal(t, 2, totals.Employees)
	assertDecimal(t, 15000, totals.Basic, "basic")
	assertDecimal(t, 12600+6300, totals.Net, "net")
}

func TestFilter_Apply(t *testing.T) {
	emps := []employee.Employee{
		{ID: "e1", Name: "Ali Hassan", Department: "Sales"},
		{ID: "e2", Name: "Sara Ali", Department: "HR"},
		{ID: "e3", Name: "Omar", Department: "Sales"},
	}

	got := Filter{Name: "ali"}.Apply(emps)
	assert.Len(t, got, 2)

	got = Filter{Name: "ali", Department: "Sales"}.Apply(emps)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}
