package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// roundCurrency rounds to 2 decimal places with ties going away from zero,
// the same rule every currency value in this package follows.
func roundCurrency(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// GrossPay computes gross pay for one period. Units are hours for PART_TIME,
// days for CONTRACTOR, and ignored for FULL_TIME.
func GrossPay(e Employee, units decimal.Decimal) (decimal.Decimal, error) {
	switch e.Type {
	case FullTime:
		return roundCurrency(e.PayRate), nil
	case PartTime:
		if units.GreaterThan(maxPartTimeHours) {
			return decimal.Zero, fmt.Errorf("%w: %s hours, limit %d", ErrHoursOutOfRange, units.String(), MaxPartTimeHours)
		}
		return roundCurrency(e.PayRate.Mul(units)), nil
	case Contractor:
		return roundCurrency(e.PayRate.Mul(units)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownEmployeeType, string(e.Type))
	}
}

// Tax computes withholding over the progressive bracket schedule, summing the
// amount falling in each bracket and rounding once at the end.
func Tax(gross decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	if gross.GreaterThan(taxBracket1Max) {
		top := decimal.Min(gross, taxBracket2Max)
		tax = tax.Add(top.Sub(taxBracket1Max).Mul(taxRate2))
	}
	if gross.GreaterThan(taxBracket2Max) {
		top := decimal.Min(gross, taxBracket3Max)
		tax = tax.Add(top.Sub(taxBracket2Max).Mul(taxRate3))
	}
	if gross.GreaterThan(taxBracket3Max) {
		tax = tax.Add(gross.Sub(taxBracket3Max).Mul(taxRate4))
	}
	return roundCurrency(tax)
}

// Deduct returns the deductions applicable to the employee. Inapplicable
// deductions stay nil rather than appearing with a zero amount.
func Deduct(e Employee, gross decimal.Decimal) Deductions {
	var d Deductions
	if e.Type == FullTime {
		amount := healthInsuranceAmount
		d.HealthInsurance = &amount
	}
	if e.Retirement {
		amount := roundCurrency(gross.Mul(retirementRate))
		d.Retirement = &amount
	}
	if e.UnionMember {
		amount := unionDuesAmount
		d.UnionDues = &amount
	}
	return d
}
