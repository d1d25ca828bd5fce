package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/retail-hr/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipPDF renders one A4 page per record.
func PayslipPDF(w io.Writer, run payroll.Run) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s payslips %s", run.CompanyName, run.Period.Label()), true)

	if len(run.Records) == 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 10, "No employees match the selected filters.")
	}

	for _, r := range run.Records {
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 16)
		pdf.Cell(0, 10, run.CompanyName)
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Payslip - %s", run.Period.Label()))
		pdf.Ln(12)

		info := [][2]string{
			{"Employee", r.Employee.Name},
			{"Employee ID", r.Employee.ID},
			{"Department", r.Employee.Department},
			{"Branch", r.Employee.Branch},
			{"Months", fmt.Sprintf("%d", r.MonthCount)},
		}
		for _, row := range info {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(50, 7, row[0])
			pdf.SetFont("Arial", "", 11)
			pdf.Cell(0, 7, row[1])
			pdf.Ln(7)
		}
		pdf.Ln(6)

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(217, 225, 242)
		pdf.CellFormat(110, 8, "Component", "1", 0, "L", true, 0, "")
		pdf.CellFormat(70, 8, fmt.Sprintf("Amount (%s)", run.Currency), "1", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		lines := []struct {
			label  string
			amount decimal.Decimal
		}{
			{"Basic salary", r.Basic},
			{"Housing allowance", r.Housing},
			{"Transport allowance", r.Transport},
			{"Bonuses", r.TotalBonuses},
			{"Insurance", r.Insurance.Neg()},
			{"Deductions", r.TotalDeductions.Neg()},
		}
		for _, l := range lines {
			pdf.CellFormat(110, 7, l.label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 7, l.amount.StringFixed(2), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(110, 9, "Net pay", "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 9, r.Net.StringFixed(0), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
