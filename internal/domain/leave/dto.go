package leave

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason,omitempty"`
}

// Validate checks formats only. A reversed range is accepted and yields zero
// days.
func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of annual, sick, emergency, unpaid"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of pending, approved, rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Type       string `json:"type,omitempty"`
}

func (f LeaveFilter) Match(r Request) bool {
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(r.Status) != f.Status {
		return false
	}
	if f.Type != "" && f.Type != "all" && string(r.Type) != f.Type {
		return false
	}
	return true
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Days         int    `json:"days"`
	Status       string `json:"status"`
	Reason       string `json:"reason,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func ToResponse(r Request, employeeName string) LeaveResponse {
	return LeaveResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		Type:         string(r.Type),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Days:         r.Days(),
		Status:       string(r.Status),
		Reason:       r.Reason,
		CreatedAt:    r.CreatedAt,
	}
}
