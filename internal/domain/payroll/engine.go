package payroll

import (
	"github.com/cmlabs-hris/retail-hr/internal/domain/adjustment"
	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// ComputePayroll derives one Record per employee, in input order, for the
// period. It reads nothing but its arguments.
//
//	basic     = salary x months
//	housing   = basic x rates.Housing
//	transport = basic x rates.Transport
//	insurance = basic x rates.Insurance
//	net       = round(basic + housing + transport - insurance + bonuses - deductions)
//
// Adjustments count when they belong to the employee, are not soft-deleted,
// and their month lies within the period.
func ComputePayroll(employees []employee.Employee, adjustments []adjustment.Adjustment, period Period, rates Rates) []Record {
	months := decimal.NewFromInt(int64(period.Months()))

	byEmployee := make(map[string][]adjustment.Adjustment)
	for _, a := range adjustments {
		if a.Deleted() || !period.Contains(a.Date) {
			continue
		}
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	records := make([]Record, 0, len(employees))
	for _, e := range employees {
		basic := e.Salary.Mul(months)
		housing := basic.Mul(rates.Housing)
		transport := basic.Mul(rates.Transport)
		insurance := basic.Mul(rates.Insurance)
		totals := adjustment.Sum(byEmployee[e.ID])

		net := basic.Add(housing).Add(transport).Sub(insurance).
			Add(totals.Bonuses).Sub(totals.Deductions).
			Round(0)

		records = append(records, Record{
			Employee:        e,
			MonthCount:      period.Months(),
			Basic:           basic,
			Housing:         housing,
			Transport:       transport,
			Insurance:       insurance,
			TotalBonuses:    totals.Bonuses,
			TotalDeductions: totals.Deductions,
			Net:             net,
		})
	}
	return records
}
