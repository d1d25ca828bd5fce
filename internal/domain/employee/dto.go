package employee

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Branch     string          `json:"branch"`
	Position   string          `json:"position,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	IsCitizen  bool            `json:"is_citizen"`
	ShiftID    *string         `json:"shift_id,omitempty"`
	Status     string          `json:"status,omitempty"`
	JoinDate   string          `json:"join_date,omitempty"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	IBAN       string          `json:"iban,omitempty"`
	IDNumber   string          `json:"id_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 150 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 150 characters"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of active, inactive, on-leave"})
	}
	if r.JoinDate != "" && !validator.IsValidDate(r.JoinDate) {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be YYYY-MM-DD"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.IBAN != "" && !validator.IsValidIBAN(r.IBAN) {
		errs = append(errs, validator.ValidationError{Field: "iban", Message: "invalid IBAN format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest applies only the fields that are set. ClearShift
// removes the explicit shift so the department fallback applies again.
type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	Department *string          `json:"department,omitempty"`
	Branch     *string          `json:"branch,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	IsCitizen  *bool            `json:"is_citizen,omitempty"`
	ShiftID    *string          `json:"shift_id,omitempty"`
	ClearShift bool             `json:"clear_shift,omitempty"`
	Status     *string          `json:"status,omitempty"`
	JoinDate   *string          `json:"join_date,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	IBAN       *string          `json:"iban,omitempty"`
	IDNumber   *string          `json:"id_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department cannot be empty"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of active, inactive, on-leave"})
	}
	if r.JoinDate != nil && *r.JoinDate != "" && !validator.IsValidDate(*r.JoinDate) {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be YYYY-MM-DD"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.IBAN != nil && *r.IBAN != "" && !validator.IsValidIBAN(*r.IBAN) {
		errs = append(errs, validator.ValidationError{Field: "iban", Message: "invalid IBAN format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Status     string `json:"status,omitempty"`
}

func (f EmployeeFilter) ToFilter() Filter {
	return Filter{Name: f.Name, Department: f.Department, Branch: f.Branch, Status: f.Status}
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Branch     string          `json:"branch"`
	Position   string          `json:"position,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	IsCitizen  bool            `json:"is_citizen"`
	ShiftID    *string         `json:"shift_id,omitempty"`
	Status     string          `json:"status"`
	JoinDate   string          `json:"join_date,omitempty"`
	Email      string          `json:"email,omitempty"`
	Phone      string          `json:"phone,omitempty"`
	IBAN       string          `json:"iban,omitempty"`
	IDNumber   string          `json:"id_number,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Branch:     e.Branch,
		Position:   e.Position,
		Salary:     e.Salary,
		IsCitizen:  e.IsCitizen,
		ShiftID:    e.ShiftID,
		Status:     string(e.Status),
		JoinDate:   e.JoinDate,
		Email:      e.Email,
		Phone:      e.Phone,
		IBAN:       e.IBAN,
		IDNumber:   e.IDNumber,
	}
}
