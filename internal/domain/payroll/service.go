package payroll

import "context"

// PayrollService computes payroll from the current ledgers on every call.
type PayrollService interface {
	// ComputePayroll returns one record per employee matching the filter
	ComputePayroll(ctx context.Context, req ComputePayrollRequest) (PayrollRunResponse, error)

	// GetPayslip returns the record of a single employee
	GetPayslip(ctx context.Context, employeeID string, req ComputePayrollRequest) (PayrollRecordResponse, error)

	// Run returns the raw records, the period label and company name for
	// export renderers
	Run(ctx context.Context, req ComputePayrollRequest) (Run, error)
}

// Run is a computed payroll handed to export renderers unchanged.
type Run struct {
	CompanyName string
	Currency    string
	Period      Period
	Records     []Record
	Totals      Totals
}
