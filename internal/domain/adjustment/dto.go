package adjustment

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdjustmentRequest struct {
	EmployeeID string          `json:"employee_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	Date       string          `json:"date"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of bonus, deduction, advance, housing-allowance, transport-allowance"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentFilter struct {
	EmployeeID string `json:"employee_id,omitempty"`
	Type       string `json:"type,omitempty"`
}

func (f AdjustmentFilter) Match(a Adjustment) bool {
	if f.EmployeeID != "" && a.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Type != "" && f.Type != "all" && string(a.Type) != f.Type {
		return false
	}
	return true
}

type AdjustmentResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Type       string          `json:"type"`
	Additive   bool            `json:"additive"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason,omitempty"`
	Date       string          `json:"date"`
}

func ToResponse(a Adjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Type:       string(a.Type),
		Additive:   IsAdditive(a.Type),
		Amount:     a.Amount,
		Reason:     a.Reason,
		Date:       a.Date,
	}
}

type SummaryResponse struct {
	EmployeeID      string          `json:"employee_id"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetBalance      decimal.Decimal `json:"net_balance"`
}
