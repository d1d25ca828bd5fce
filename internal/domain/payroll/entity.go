package payroll

import (
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/employee"
	"github.com/cmlabs-hris/retail-hr/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// Rates are the salary component percentages, expressed as fractions of basic.
type Rates struct {
	Housing   decimal.Decimal
	Transport decimal.Decimal
	Insurance decimal.Decimal
}

// DefaultRates: housing 25%, transport 10%, insurance 9%.
func DefaultRates() Rates {
	return Rates{
		Housing:   decimal.NewFromFloat(0.25),
		Transport: decimal.NewFromFloat(0.10),
		Insurance: decimal.NewFromFloat(0.09),
	}
}

// Period is an inclusive range of "YYYY-MM" months.
type Period struct {
	Start string
	End   string
}

// Months is the inclusive month count. Reversed ranges yield 0.
func (p Period) Months() int {
	return timeutil.MonthDiff(p.Start, p.End)
}

// Contains reports whether date's month lies within the period, comparing
// "YYYY-MM" strings.
func (p Period) Contains(date string) bool {
	m := timeutil.MonthOf(date)
	return m >= p.Start && m <= p.End
}

// Label renders the period for payslips and exports, e.g. "Jan 2024 - Mar 2024".
func (p Period) Label() string {
	start, err := time.Parse(timeutil.MonthLayout, p.Start)
	if err != nil {
		return p.Start + " - " + p.End
	}
	end, err := time.Parse(timeutil.MonthLayout, p.End)
	if err != nil {
		return p.Start + " - " + p.End
	}
	if p.Start == p.End {
		return start.Format("Jan 2006")
	}
	return start.Format("Jan 2006") + " - " + end.Format("Jan 2006")
}

// Record is the derived pay of one employee over a period. It is never
// persisted.
type Record struct {
	Employee        employee.Employee
	MonthCount      int
	Basic           decimal.Decimal
	Housing         decimal.Decimal
	Transport       decimal.Decimal
	Insurance       decimal.Decimal
	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	Net             decimal.Decimal
}

// Gross is basic plus allowances, before insurance and adjustments.
func (r Record) Gross() decimal.Decimal {
	return r.Basic.Add(r.Housing).Add(r.Transport)
}

// Filter narrows the roster before computing. Empty fields match everything.
type Filter struct {
	Name       string
	Department string
}

func (f Filter) Apply(employees []employee.Employee) []employee.Employee {
	return employee.Filter{Name: f.Name, Department: f.Department}.Apply(employees)
}

// Totals aggregates a payroll run.
type Totals struct {
	Employees       int
	Basic           decimal.Decimal
	Housing         decimal.Decimal
	Transport       decimal.Decimal
	Insurance       decimal.Decimal
	TotalBonuses    decimal.Decimal
	TotalDeductions decimal.Decimal
	Net             decimal.Decimal
}

func Summarize(records []Record) Totals {
	t := Totals{
		Employees:       len(records),
		Basic:           decimal.Zero,
		Housing:         decimal.Zero,
		Transport:       decimal.Zero,
		Insurance:       decimal.Zero,
		TotalBonuses:    decimal.Zero,
		TotalDeductions: decimal.Zero,
		Net:             decimal.Zero,
	}
	for _, r := range records {
		t.Basic = t.Basic.Add(r.Basic)
		t.Housing = t.Housing.Add(r.Housing)
		t.Transport = t.Transport.Add(r.Transport)
		t.Insurance = t.Insurance.Add(r.Insurance)
		t.TotalBonuses = t.TotalBonuses.Add(r.TotalBonuses)
		t.TotalDeductions = t.TotalDeductions.Add(r.TotalDeductions)
		t.Net = t.Net.Add(r.Net)
	}
	return t
}
