package career

import "github.com/cmlabs-hris/retail-hr/internal/pkg/validator"

type CreateMilestoneRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	FromValue  string `json:"from_value,omitempty"`
	ToValue    string `json:"to_value,omitempty"`
	Date       string `json:"date"`
	Notes      string `json:"notes,omitempty"`
}

func (r *CreateMilestoneRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of hire, promotion, transfer, salary-change, training"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MilestoneResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	FromValue  string `json:"from_value,omitempty"`
	ToValue    string `json:"to_value,omitempty"`
	Date       string `json:"date"`
	Notes      string `json:"notes,omitempty"`
}

func ToResponse(m Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Type:       string(m.Type),
		Title:      m.Title,
		FromValue:  m.FromValue,
		ToValue:    m.ToValue,
		Date:       m.Date,
		Notes:      m.Notes,
	}
}
