package payroll

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the payslip as a single-page A4 PDF.
func WritePDF(p Payslip, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (ID: %s)", p.Employee.Name, p.Employee.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee Type: %s", p.Employee.Type))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross Pay: %s", p.Gross.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Tax Withheld: %s", p.Tax.StringFixed(2)))
	for _, item := range p.Deductions.Items() {
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s", DeductionLabel(item.Name), item.Amount.StringFixed(2)))
	}
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net Pay: %s", p.Net.StringFixed(2)))
	return pdf.Output(w)
}
