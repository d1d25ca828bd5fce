package shift

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	StartTime  *string `json:"start_time,omitempty"`
	EndTime    *string `json:"end_time,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	WorkHours  float64 `json:"work_hours"`
	Compliance string  `json:"compliance"`
	Warning    string  `json:"warning,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	c := Classify(s.WorkHours)
	return ShiftResponse{
		ID:         s.ID,
		Name:       s.Name,
		Department: s.Department,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		WorkHours:  timeutil.Round2(s.WorkHours),
		Compliance: string(c),
		Warning:    c.Warning(),
	}
}
