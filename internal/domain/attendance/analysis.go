package attendance

import (
	"sort"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
)

// DailyFilter selects the employees shown for a date. Empty or "all" values
// match everything.
type DailyFilter struct {
	Date             string
	EmployeeStatus   string
	AttendanceStatus string
}

type DailyRow struct {
	Employee employee.Employee
	Entry    *Entry
}

// DailyCounts are taken over the employees that pass the employee-status
// filter, before the attendance-status filter narrows the rows.
type DailyCounts struct {
	Present    int
	Late       int
	Absent     int
	Unrecorded int
}

type DailyView struct {
	Date   string
	Rows   []DailyRow
	Counts DailyCounts
}

func (l Ledger) Daily(employees []employee.Employee, f DailyFilter) DailyView {
	view := DailyView{Date: f.Date, Rows: make([]DailyRow, 0, len(employees))}

	for _, emp := range employees {
		if f.EmployeeStatus != "" && f.EmployeeStatus != "all" && string(emp.Status) != f.EmployeeStatus {
			continue
		}

		var entry *Entry
		state := StatusUnrecorded
		if e, ok := l.EntryFor(emp.ID, f.Date); ok {
			entry = &e
			state = string(e.Status)
		}

		switch state {
		case string(StatusPresent):
			view.Counts.Present++
		case string(StatusLate):
			view.Counts.Late++
		case string(StatusAbsent):
			view.Counts.Absent++
		default:
			view.Counts.Unrecorded++
		}

		if f.AttendanceStatus != "" && f.AttendanceStatus != "all" && f.AttendanceStatus != state {
			continue
		}
		view.Rows = append(view.Rows, DailyRow{Employee: emp, Entry: entry})
	}
	return view
}

type MonthlyStats struct {
	EmployeeID   string
	Month        string
	TotalHours   float64
	Present      int
	Late         int
	Absent       int
	RecordedDays int
}

// MonthlyStats sums worked hours and counts statuses over the employee's
// entries in month.
func (l Ledger) MonthlyStats(employeeID, month string) MonthlyStats {
	stats := MonthlyStats{EmployeeID: employeeID, Month: month}
	for _, e := range l.ForMonth(employeeID, month) {
		stats.RecordedDays++
		stats.TotalHours += e.Hours()
		switch e.Status {
		case StatusPresent:
			stats.Present++
		case StatusLate:
			stats.Late++
		case StatusAbsent:
			stats.Absent++
		}
	}
	return stats
}

type TeamRow struct {
	Employee      employee.Employee
	ShiftID       string
	RecordedDays  int
	ActualHours   float64
	ExpectedHours float64
	Variance      float64
	Efficiency    float64
}

// TeamMonthlyAnalysis compares actual hours with recorded days times the
// effective shift length for every employee. Rows are sorted by actual hours,
// highest first; ties keep roster order.
func (l Ledger) TeamMonthlyAnalysis(employees []employee.Employee, shifts shift.Catalog, month string) []TeamRow {
	rows := make([]TeamRow, 0, len(employees))
	for _, emp := range employees {
		stats := l.MonthlyStats(emp.ID, month)

		row := TeamRow{
			Employee:     emp,
			RecordedDays: stats.RecordedDays,
			ActualHours:  stats.TotalHours,
		}
		daily := shift.DefaultWorkHours
		if s, ok := shifts.Effective(emp); ok {
			row.ShiftID = s.ID
			daily = s.WorkHours
		}
		row.ExpectedHours = float64(stats.RecordedDays) * daily
		row.Variance = row.ActualHours - row.ExpectedHours
		if row.ExpectedHours > 0 {
			row.Efficiency = row.ActualHours / row.ExpectedHours * 100
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ActualHours > rows[j].ActualHours
	})
	return rows
}
