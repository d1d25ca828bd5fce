package attendance

import (
	"testing"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLedger_UpsertIsIdempotent(t *testing.T) {
	entry := Entry{EmployeeID: "e1", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00"}

	l := NewLedger(nil, 0).Upsert(entry).Upsert(entry)
	require.Equal(t, 1, l.Len())

	entry.ClockOut = "16:00"
	l = l.Upsert(entry)
	require.Equal(t, 1, l.Len())

	got, ok := l.EntryFor("e1", "2024-03-01")
	require.True(t, ok)
	assert.Equal(t, "16:00", got.ClockOut)
}

func TestNewLedger_CollapsesDuplicateKeys(t *testing.T) {
	l := NewLedger([]Entry{
		{EmployeeID: "e1", Date: "2024-03-01", Status: StatusAbsent},
		{EmployeeID: "e2", Date: "2024-03-01", Status: StatusPresent},
		{EmployeeID: "e1", Date: "2024-03-01", Status: StatusLate},
	}, 4)

	assert.Equal(t, 2, l.Len())
	got, _ := l.EntryFor("e1", "2024-03-01")
	assert.Equal(t, StatusLate, got.Status)
	assert.Equal(t, "e1", l.Entries()[0].EmployeeID)
}

func TestLedger_BulkSetStatus(t *testing.T) {
	l := NewLedger([]Entry{
		{EmployeeID: "e1", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00"},
	}, 1)

	l = l.BulkSetStatus([]string{"e1", "e2"}, "2024-03-01", StatusAbsent)

	e1, _ := l.EntryFor("e1", "2024-03-01")
	assert.Equal(t, StatusAbsent, e1.Status)
	assert.Equal(t, "08:00", e1.ClockIn)

	e2, ok := l.EntryFor("e2", "2024-03-01")
	require.True(t, ok)
	assert.Equal(t, StatusAbsent, e2.Status)
}

func TestDeriveStatus_GraceBoundary(t *testing.T) {
	assert.Equal(t, StatusPresent, DeriveStatus("07:50", "08:00"))
	assert.Equal(t, StatusPresent, DeriveStatus("08:15", "08:00"))
	assert.Equal(t, StatusLate, DeriveStatus("08:16", "08:00"))
	assert.Equal(t, StatusPresent, DeriveStatus("bad", "08:00"))
}

func TestApplyClock(t *testing.T) {
	t.Run("clock in derives late", func(t *testing.T) {
		e := ApplyClock(Entry{EmployeeID: "e1", Date: "2024-03-01"}, false,
			ClockChange{ClockIn: strPtr("09:00")}, "08:00")
		assert.Equal(t, StatusLate, e.Status)
		assert.Equal(t, "09:00", e.ClockIn)
	})

	t.Run("clearing clock in without clock out marks absent", func(t *testing.T) {
		cur := Entry{EmployeeID: "e1", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00"}
		e := ApplyClock(cur, true, ClockChange{ClockIn: strPtr("")}, "08:00")
		assert.Equal(t, StatusAbsent, e.Status)
		assert.Empty(t, e.ClockIn)
	})

	t.Run("clearing clock in keeps status when clock out exists", func(t *testing.T) {
		cur := Entry{EmployeeID: "e1", Date: "2024-03-01", Status: StatusLate, ClockIn: "09:00", ClockOut: "17:00"}
		e := ApplyClock(cur, true, ClockChange{ClockIn: strPtr("")}, "08:00")
		assert.Equal(t, StatusLate, e.Status)
	})

	t.Run("new entry with only clock out is present", func(t *testing.T) {
		e := ApplyClock(Entry{EmployeeID: "e1", Date: "2024-03-01"}, false,
			ClockChange{ClockOut: strPtr("17:00")}, "08:00")
		assert.Equal(t, StatusPresent, e.Status)
	})
}

func TestLedger_MonthlyStats(t *testing.T) {
	l := NewLedger([]Entry{
		{EmployeeID: "e1", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00", ClockOut: "16:30"},
		{EmployeeID: "e1", Date: "2024-03-02", Status: StatusLate, ClockIn: "22:00", ClockOut: "06:00"},
		{EmployeeID: "e1", Date: "2024-03-03", Status: StatusAbsent},
		{EmployeeID: "e1", Date: "2024-04-01", Status: StatusPresent, ClockIn: "08:00", ClockOut: "16:00"},
		{EmployeeID: "e2", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00", ClockOut: "16:00"},
	}, 1)

	s := l.MonthlyStats("e1", "2024-03")
	assert.Equal(t, 3, s.RecordedDays)
	assert.Equal(t, 1, s.Present)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 1, s.Absent)
	assert.InDelta(t, 16.5, s.TotalHours, 1e-9)
}

func TestLedger_Daily(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Name: "Ali", Status: employee.StatusActive},
		{ID: "e2", Name: "Sara", Status: employee.StatusActive},
		{ID: "e3", Name: "Omar", Status: employee.StatusInactive},
		{ID: "e4", Name: "Lina", Status: employee.StatusActive},
	}
	l := NewLedger([]Entry{
		{EmployeeID: "e1", Date: "2024-03-01", Status: StatusPresent},
		{EmployeeID: "e2", Date: "2024-03-01", Status: StatusLate},
		{EmployeeID: "e3", Date: "2024-03-01", Status: StatusAbsent},
	}, 1)

	v := l.Daily(employees, DailyFilter{Date: "2024-03-01", EmployeeStatus: "active", AttendanceStatus: "all"})
	assert.Len(t, v.Rows, 3)
	assert.Equal(t, DailyCounts{Present: 1, Late: 1, Absent: 0, Unrecorded: 1}, v.Counts)

	v = l.Daily(employees, DailyFilter{Date: "2024-03-01", AttendanceStatus: StatusUnrecorded})
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "e4", v.Rows[0].Employee.ID)
	assert.Nil(t, v.Rows[0].Entry)
	assert.Equal(t, DailyCounts{Present: 1, Late: 1, Absent: 1, Unrecorded: 1}, v.Counts)
}

func TestLedger_TeamMonthlyAnalysis(t *testing.T) {
	employees := []employee.Employee{
		{ID: "e1", Department: "Sales"},
		{ID: "e2", Department: "Sales", ShiftID: strPtr("long")},
		{ID: "e3", Department: "HR"},
	}
	shifts := shift.NewCatalog([]shift.Shift{
		shift.New("morning", "Morning", "Sales", "08:00", "14:00"),
		shift.New("long", "Long", "Sales", "08:00", "18:00"),
	}, 1)
	l := NewLedger([]Entry{
		{EmployeeID: "e1", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00", ClockOut: "14:00"},
		{EmployeeID: "e1", Date: "2024-03-02", Status: StatusPresent, ClockIn: "08:00", ClockOut: "13:00"},
		{EmployeeID: "e2", Date: "2024-03-01", Status: StatusPresent, ClockIn: "08:00", ClockOut: "20:00"},
	}, 1)

	rows := l.TeamMonthlyAnalysis(employees, shifts, "2024-03")
	require.Len(t, rows, 3)

	assert.Equal(t, "e2", rows[0].Employee.ID)
	assert.Equal(t, 12.0, rows[0].ActualHours)
	assert.Equal(t, 10.0, rows[0].ExpectedHours)
	assert.InDelta(t, 120.0, rows[0].Efficiency, 1e-9)

	assert.Equal(t, "e1", rows[1].Employee.ID)
	assert.Equal(t, "morning", rows[1].ShiftID)
	assert.Equal(t, 12.0, rows[1].ExpectedHours)
	assert.Equal(t, -1.0, rows[1].Variance)

	// no recorded days: expected 0, efficiency guarded to 0
	assert.Equal(t, "e3", rows[2].Employee.ID)
	assert.Zero(t, rows[2].ExpectedHours)
	assert.Zero(t, rows[2].Efficiency)
}
