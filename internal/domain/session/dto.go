package session

import "github.com/cmlabs-hris/retail-hr/internal/pkg/validator"

type SwitchRoleRequest struct {
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
}

func (r *SwitchRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of hr, employee"})
	}
	if Role(r.Role) == RoleEmployee && validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required for the employee role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	Role        string   `json:"role"`
	EmployeeID  string   `json:"employee_id,omitempty"`
	AccessToken string   `json:"access_token"`
	Permissions []string `json:"permissions"`
}
