package export

import (
	"bytes"
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRun() payroll.Run {
	records := payroll.ComputePayroll(
		[]employee.Employee{
			{ID: "e1", Name: "Ali", Department: "Sales", Salary: decimal.NewFromInt(10000)},
			{ID: "e2", Name: "Sara", Department: "HR", Salary: decimal.NewFromInt(8000)},
		},
		nil,
		payroll.Period{Start: "2024-01", End: "2024-01"},
		payroll.DefaultRates(),
	)
	return payroll.Run{
		CompanyName: "Retail HR",
		Currency:    "SAR",
		Period:      payroll.Period{Start: "2024-01", End: "2024-01"},
		Records:     records,
		Totals:      payroll.Summarize(records),
	}
}

func TestPayrollXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PayrollXLSX(&buf, sampleRun()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Payroll", "L1")
	require.NoError(t, err)
	assert.Equal(t, "Net", header)

	name, err := f.GetCellValue("Payroll", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ali", name)

	net, err := f.GetCellValue("Payroll", "L2")
	require.NoError(t, err)
	assert.Equal(t, "12600", net)

	label, err := f.GetCellValue("Payroll", "M2")
	require.NoError(t, err)
	assert.Equal(t, "Jan 2024", label)

	total, err := f.GetCellValue("Payroll", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", total)
}

func TestAttendanceXLSX(t *testing.T) {
	rows := []attendance.TeamRow{
		{Employee: employee.Employee{ID: "e1", Name: "Ali"}, RecordedDays: 2, ActualHours: 15.5, ExpectedHours: 16, Variance: -0.5, Efficiency: 96.875},
	}

	var buf bytes.Buffer
	require.NoError(t, AttendanceXLSX(&buf, "2024-03", rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Attendance", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Team attendance 2024-03", title)

	efficiency, err := f.GetCellValue("Attendance", "I3")
	require.NoError(t, err)
	assert.Equal(t, "96.88", efficiency)
}

func TestPayslipPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PayslipPDF(&buf, sampleRun()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	var empty bytes.Buffer
	require.NoError(t, PayslipPDF(&empty, payroll.Run{CompanyName: "Retail HR"}))
	assert.True(t, bytes.HasPrefix(empty.Bytes(), []byte("%PDF")))
}
