package export

import (
	"fmt"
	"io"
	"math"

	"github.com/cmlabs-hris/retail-hr/internal/domain/attendance"
	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

var payrollHeaders = []string{
	"Employee ID", "Name", "Department", "Branch", "Months",
	"Basic", "Housing", "Transport", "Insurance", "Bonuses", "Deductions", "Net",
	"Period",
}

var attendanceHeaders = []string{
	"Employee ID", "Name", "Department", "Shift", "Recorded Days",
	"Actual Hours", "Expected Hours", "Variance", "Efficiency %",
}

// PayrollXLSX writes one row per record followed by a totals row.
func PayrollXLSX(w io.Writer, run payroll.Run) error {
	const sheet = "Payroll"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, payrollHeaders); err != nil {
		return err
	}

	label := run.Period.Label()
	row := 2
	for _, r := range run.Records {
		values := []interface{}{
			r.Employee.ID,
			r.Employee.Name,
			r.Employee.Department,
			r.Employee.Branch,
			r.MonthCount,
			r.Basic.InexactFloat64(),
			r.Housing.InexactFloat64(),
			r.Transport.InexactFloat64(),
			r.Insurance.InexactFloat64(),
			r.TotalBonuses.InexactFloat64(),
			r.TotalDeductions.InexactFloat64(),
			r.Net.InexactFloat64(),
			label,
		}
		if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
			return err
		}
		row++
	}

	t := run.Totals
	totals := []interface{}{
		"Total", fmt.Sprintf("%d employees", t.Employees), "", "", "",
		t.Basic.InexactFloat64(),
		t.Housing.InexactFloat64(),
		t.Transport.InexactFloat64(),
		t.Insurance.InexactFloat64(),
		t.TotalBonuses.InexactFloat64(),
		t.TotalDeductions.InexactFloat64(),
		t.Net.InexactFloat64(),
		label,
	}
	if err := f.SetSheetRow(sheet, cell(1, row), &totals); err != nil {
		return err
	}

	return f.Write(w)
}

// AttendanceXLSX writes the team monthly analysis for month.
func AttendanceXLSX(w io.Writer, month string, rows []attendance.TeamRow) error {
	const sheet = "Attendance"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("Team attendance %s", month)); err != nil {
		return err
	}
	if err := writeHeaderAt(f, sheet, attendanceHeaders, 2); err != nil {
		return err
	}

	for i, r := range rows {
		values := []interface{}{
			r.Employee.ID,
			r.Employee.Name,
			r.Employee.Department,
			r.ShiftID,
			r.RecordedDays,
			round2(r.ActualHours),
			round2(r.ExpectedHours),
			round2(r.Variance),
			round2(r.Efficiency),
		}
		if err := f.SetSheetRow(sheet, cell(1, i+3), &values); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	return writeHeaderAt(f, sheet, headers, 1)
}

func writeHeaderAt(f *excelize.File, sheet string, headers []string, row int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, cell(1, row), &values); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(len(headers), row), style); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 16)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
