package attendance

import (
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/geo"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

// ========================================
// COMMAND DTOs
// ========================================

type UpsertEntryRequest struct {
	EmployeeID string        `json:"employee_id"`
	Date       string        `json:"date"`
	Status     string        `json:"status"`
	ClockIn    string        `json:"clock_in,omitempty"`
	ClockOut   string        `json:"clock_out,omitempty"`
	Location   *geo.Location `json:"location,omitempty"`
}

func (r *UpsertEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, late, absent"})
	}
	if r.ClockIn != "" && !validator.IsValidClock(r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be HH:MM"})
	}
	if r.ClockOut != "" && !validator.IsValidClock(r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be HH:MM"})
	}
	if r.Location != nil && !r.Location.Valid() {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "location is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordClockRequest edits clock times. A nil field is left as is, an empty
// string clears it. Location is the device position reported by the client,
// if it has one.
type RecordClockRequest struct {
	EmployeeID string        `json:"employee_id"`
	Date       string        `json:"date"`
	ClockIn    *string       `json:"clock_in,omitempty"`
	ClockOut   *string       `json:"clock_out,omitempty"`
	Location   *geo.Location `json:"location,omitempty"`
}

func (r *RecordClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.ClockIn == nil && r.ClockOut == nil {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in or clock_out is required"})
	}
	if r.ClockIn != nil && *r.ClockIn != "" && !validator.IsValidClock(*r.ClockIn) {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be HH:MM"})
	}
	if r.ClockOut != nil && *r.ClockOut != "" && !validator.IsValidClock(*r.ClockOut) {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkStatusRequest struct {
	EmployeeIDs []string      `json:"employee_ids"`
	Date        string        `json:"date"`
	Status      string        `json:"status"`
	Location    *geo.Location `json:"location,omitempty"`
}

func (r *BulkStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, late, absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// QUERY DTOs
// ========================================

type DailyViewFilter struct {
	Date             string `json:"date"`
	EmployeeStatus   string `json:"employee_status,omitempty"`
	AttendanceStatus string `json:"attendance_status,omitempty"`
}

func (f *DailyViewFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(f.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	allowed := append([]string{"all", StatusUnrecorded}, StatusValues...)
	if f.AttendanceStatus != "" && !validator.IsInSlice(f.AttendanceStatus, allowed) {
		errs = append(errs, validator.ValidationError{Field: "attendance_status", Message: "attendance_status must be one of all, present, late, absent, unrecorded"})
	}
	if f.EmployeeStatus != "" && f.EmployeeStatus != "all" && !validator.IsInSlice(f.EmployeeStatus, employee.StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "employee_status", Message: "employee_status must be one of all, active, inactive, on-leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (f DailyViewFilter) ToFilter() DailyFilter {
	return DailyFilter{Date: f.Date, EmployeeStatus: f.EmployeeStatus, AttendanceStatus: f.AttendanceStatus}
}

// ========================================
// RESPONSE DTOs
// ========================================

type EntryResponse struct {
	EmployeeID     string        `json:"employee_id"`
	Date           string        `json:"date"`
	Status         string        `json:"status"`
	ClockIn        string        `json:"clock_in,omitempty"`
	ClockOut       string        `json:"clock_out,omitempty"`
	WorkedHours    float64       `json:"worked_hours"`
	Location       *geo.Location `json:"location,omitempty"`
	DistanceMeters *float64      `json:"distance_meters,omitempty"`
}

func ToEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		EmployeeID:  e.EmployeeID,
		Date:        e.Date,
		Status:      string(e.Status),
		ClockIn:     e.ClockIn,
		ClockOut:    e.ClockOut,
		WorkedHours: timeutil.Round2(e.Hours()),
		Location:    e.Location,
	}
}

type DailyRowResponse struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeName string         `json:"employee_name"`
	Department   string         `json:"department"`
	Branch       string         `json:"branch"`
	Status       string         `json:"status"`
	Entry        *EntryResponse `json:"entry,omitempty"`
}

type DailyCountsResponse struct {
	Present    int `json:"present"`
	Late       int `json:"late"`
	Absent     int `json:"absent"`
	Unrecorded int `json:"unrecorded"`
}

type DailyViewResponse struct {
	Date   string              `json:"date"`
	Rows   []DailyRowResponse  `json:"rows"`
	Counts DailyCountsResponse `json:"counts"`
}

func ToDailyViewResponse(v DailyView) DailyViewResponse {
	resp := DailyViewResponse{
		Date: v.Date,
		Rows: make([]DailyRowResponse, 0, len(v.Rows)),
		Counts: DailyCountsResponse{
			Present:    v.Counts.Present,
			Late:       v.Counts.Late,
			Absent:     v.Counts.Absent,
			Unrecorded: v.Counts.Unrecorded,
		},
	}
	for _, row := range v.Rows {
		r := DailyRowResponse{
			EmployeeID:   row.Employee.ID,
			EmployeeName: row.Employee.Name,
			Department:   row.Employee.Department,
			Branch:       row.Employee.Branch,
			Status:       StatusUnrecorded,
		}
		if row.Entry != nil {
			entry := ToEntryResponse(*row.Entry)
			r.Entry = &entry
			r.Status = entry.Status
		}
		resp.Rows = append(resp.Rows, r)
	}
	return resp
}

type MonthlyStatsResponse struct {
	EmployeeID   string  `json:"employee_id"`
	Month        string  `json:"month"`
	TotalHours   float64 `json:"total_hours"`
	Present      int     `json:"present"`
	Late         int     `json:"late"`
	Absent       int     `json:"absent"`
	RecordedDays int     `json:"recorded_days"`
}

func ToMonthlyStatsResponse(s MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		EmployeeID:   s.EmployeeID,
		Month:        s.Month,
		TotalHours:   timeutil.Round2(s.TotalHours),
		Present:      s.Present,
		Late:         s.Late,
		Absent:       s.Absent,
		RecordedDays: s.RecordedDays,
	}
}

type TeamRowResponse struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	Department    string  `json:"department"`
	ShiftID       string  `json:"shift_id,omitempty"`
	RecordedDays  int     `json:"recorded_days"`
	ActualHours   float64 `json:"actual_hours"`
	ExpectedHours float64 `json:"expected_hours"`
	Variance      float64 `json:"variance"`
	Efficiency    float64 `json:"efficiency"`
}

func ToTeamRowResponse(r TeamRow) TeamRowResponse {
	return TeamRowResponse{
		EmployeeID:    r.Employee.ID,
		EmployeeName:  r.Employee.Name,
		Department:    r.Employee.Department,
		ShiftID:       r.ShiftID,
		RecordedDays:  r.RecordedDays,
		ActualHours:   timeutil.Round2(r.ActualHours),
		ExpectedHours: timeutil.Round2(r.ExpectedHours),
		Variance:      timeutil.Round2(r.Variance),
		Efficiency:    timeutil.Round2(r.Efficiency),
	}
}
