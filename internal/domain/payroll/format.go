package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary aggregates a batch of payslips.
type Summary struct {
	TotalGross decimal.Decimal `json:"totalGross"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	TotalNet   decimal.Decimal `json:"totalNet"`
	Count      int             `json:"count"`
}

func Summarize(payslips []Payslip) Summary {
	s := Summary{
		TotalGross: decimal.Zero,
		TotalTax:   decimal.Zero,
		TotalNet:   decimal.Zero,
		Count:      len(payslips),
	}
	for _, p := range payslips {
		s.TotalGross = s.TotalGross.Add(p.Gross)
		s.TotalTax = s.TotalTax.Add(p.Tax)
		s.TotalNet = s.TotalNet.Add(p.Net)
	}
	return s
}

// FormatText renders a payslip as a boxed console block. Only applicable
// deduction lines appear.
func FormatText(p Payslip) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "PAYSLIP - %s (ID: %s)\n", p.Employee.Name, p.Employee.ID)
	fmt.Fprintf(&b, "Employee Type: %s\n", p.Employee.Type)
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "  %-28s $%10s\n", "Gross Pay:", p.Gross.StringFixed(2))
	fmt.Fprintf(&b, "  %-28s $%10s\n", "Tax Withheld:", p.Tax.StringFixed(2))
	for _, item := range p.Deductions.Items() {
		fmt.Fprintf(&b, "  %-28s $%10s\n", DeductionLabel(item.Name)+":", item.Amount.StringFixed(2))
	}
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "  %-28s $%10s\n", "NET PAY:", p.Net.StringFixed(2))
	fmt.Fprintln(&b, rule)
	return b.String()
}

// FormatSummary renders batch totals in the demo's banner style.
func FormatSummary(s Summary) string {
	var b strings.Builder
	banner := strings.Repeat("#", 60)

	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "# PAYROLL SUMMARY")
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "  %-24s $%10s\n", "Total Gross Payroll:", s.TotalGross.StringFixed(2))
	fmt.Fprintf(&b, "  %-24s $%10s\n", "Total Tax Withheld:", s.TotalTax.StringFixed(2))
	fmt.Fprintf(&b, "  %-24s $%10s\n", "Total Net Payroll:", s.TotalNet.StringFixed(2))
	fmt.Fprintln(&b, banner)
	return b.String()
}

// DeductionLabel turns a deduction key like "health_insurance" into a
// display label like "Health Insurance".
func DeductionLabel(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
