package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuildPayslip assembles a payslip for one employee. A gross-pay failure
// propagates unchanged and no partial payslip is produced.
func BuildPayslip(e Employee, units decimal.Decimal) (Payslip, error) {
	gross, err := GrossPay(e, units)
	if err != nil {
		return Payslip{}, err
	}
	tax := Tax(gross)
	deductions := Deduct(e, gross)
	net := roundCurrency(gross.Sub(tax).Sub(deductions.Total()))
	return Payslip{
		Employee:   e,
		Gross:      gross,
		Tax:        tax,
		Deductions: deductions,
		Net:        net,
	}, nil
}

// DefaultUnits returns the worked units assumed when a batch run carries no
// entry for the employee: 0 for FULL_TIME, 80 hours for PART_TIME, 20 days
// for CONTRACTOR.
func DefaultUnits(t EmployeeType) decimal.Decimal {
	switch t {
	case PartTime:
		return defaultPartTimeHours
	case Contractor:
		return defaultContractorDays
	default:
		return decimal.Zero
	}
}

// Run processes employees in input order. unitsByID may be nil. The first
// failure halts the batch; no partial result is returned.
func Run(employees []Employee, unitsByID map[string]decimal.Decimal) ([]Payslip, error) {
	payslips := make([]Payslip, 0, len(employees))
	for _, e := range employees {
		units, ok := unitsByID[e.ID]
		if !ok {
			units = DefaultUnits(e.Type)
		}
		slip, err := BuildPayslip(e, units)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", e.ID, err)
		}
		payslips = append(payslips, slip)
	}
	return payslips, nil
}
