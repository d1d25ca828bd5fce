package payroll

import (
	"github.com/cmlabs-hris/retail-hr/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComputePayrollRequest struct {
	StartMonth string `json:"start_month"`
	EndMonth   string `json:"end_month"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
}

func (r *ComputePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.StartMonth) {
		errs = append(errs, validator.ValidationError{Field: "start_month", Message: "start_month must be YYYY-MM"})
	}
	if !validator.IsValidMonth(r.EndMonth) {
		errs = append(errs, validator.ValidationError{Field: "end_month", Message: "end_month must be YYYY-MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r ComputePayrollRequest) Period() Period {
	return Period{Start: r.StartMonth, End: r.EndMonth}
}

func (r ComputePayrollRequest) Filter() Filter {
	return Filter{Name: r.Name, Department: r.Department}
}

type PayrollRecordResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Department      string          `json:"department"`
	Branch          string          `json:"branch"`
	Position        string          `json:"position,omitempty"`
	IBAN            string          `json:"iban,omitempty"`
	Salary          decimal.Decimal `json:"salary"`
	MonthCount      int             `json:"month_count"`
	Basic           decimal.Decimal `json:"basic"`
	Housing         decimal.Decimal `json:"housing"`
	Transport       decimal.Decimal `json:"transport"`
	Insurance       decimal.Decimal `json:"insurance"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	Net             decimal.Decimal `json:"net"`
}

func ToRecordResponse(r Record) PayrollRecordResponse {
	return PayrollRecordResponse{
		EmployeeID:      r.Employee.ID,
		EmployeeName:    r.Employee.Name,
		Department:      r.Employee.Department,
		Branch:          r.Employee.Branch,
		Position:        r.Employee.Position,
		IBAN:            r.Employee.IBAN,
		Salary:          r.Employee.Salary,
		MonthCount:      r.MonthCount,
		Basic:           r.Basic,
		Housing:         r.Housing,
		Transport:       r.Transport,
		Insurance:       r.Insurance,
		TotalBonuses:    r.TotalBonuses,
		TotalDeductions: r.TotalDeductions,
		Net:             r.Net,
	}
}

type PayrollSummaryResponse struct {
	TotalEmployees  int             `json:"total_employees"`
	TotalBasic      decimal.Decimal `json:"total_basic"`
	TotalHousing    decimal.Decimal `json:"total_housing"`
	TotalTransport  decimal.Decimal `json:"total_transport"`
	TotalInsurance  decimal.Decimal `json:"total_insurance"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

type PayrollRunResponse struct {
	StartMonth string                  `json:"start_month"`
	EndMonth   string                  `json:"end_month"`
	Label      string                  `json:"label"`
	Currency   string                  `json:"currency"`
	Records    []PayrollRecordResponse `json:"records"`
	Summary    PayrollSummaryResponse  `json:"summary"`
}

func ToRunResponse(run Run) PayrollRunResponse {
	resp := PayrollRunResponse{
		StartMonth: run.Period.Start,
		EndMonth:   run.Period.End,
		Label:      run.Period.Label(),
		Currency:   run.Currency,
		Records:    make([]PayrollRecordResponse, 0, len(run.Records)),
		Summary: PayrollSummaryResponse{
			TotalEmployees:  run.Totals.Employees,
			TotalBasic:      run.Totals.Basic,
			TotalHousing:    run.Totals.Housing,
			TotalTransport:  run.Totals.Transport,
			TotalInsurance:  run.Totals.Insurance,
			TotalBonuses:    run.Totals.TotalBonuses,
			TotalDeductions: run.Totals.TotalDeductions,
			TotalNet:        run.Totals.Net,
		},
	}
	for _, r := range run.Records {
		resp.Records = append(resp.Records, ToRecordResponse(r))
	}
	return resp
}
