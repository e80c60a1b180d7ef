package payroll

import "github.com/shopspring/decimal"

// EmployeeType is the employment category that selects the gross-pay formula.
type EmployeeType string

const (
	FullTime   EmployeeType = "FULL_TIME"
	PartTime   EmployeeType = "PART_TIME"
	Contractor EmployeeType = "CONTRACTOR"
)

func (t EmployeeType) Valid() bool {
	switch t {
	case FullTime, PartTime, Contractor:
		return true
	}
	return false
}

// Employee is immutable within a payroll run. PayRate is a monthly salary
// for FULL_TIME, an hourly rate for PART_TIME and a daily rate for CONTRACTOR.
type Employee struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        EmployeeType    `json:"type"`
	PayRate     decimal.Decimal `json:"payRate"`
	UnionMember bool            `json:"unionMember"`
	Retirement  bool            `json:"retirement"`
}

// Deductions holds the per-employee deduction amounts. A nil field means the
// deduction does not apply; no field is ever present with a zero amount.
type Deductions struct {
	HealthInsurance *decimal.Decimal `json:"health_insurance,omitempty"`
	Retirement      *decimal.Decimal `json:"retirement,omitempty"`
	UnionDues       *decimal.Decimal `json:"union_dues,omitempty"`
}

type DeductionItem struct {
	Name   string
	Amount decimal.Decimal
}

// Items returns the applicable deductions in stable render order.
func (d Deductions) Items() []DeductionItem {
	items := make([]DeductionItem, 0, 3)
	if d.HealthInsurance != nil {
		items = append(items, DeductionItem{Name: DeductionHealthInsurance, Amount: *d.HealthInsurance})
	}
	if d.Retirement != nil {
		items = append(items, DeductionItem{Name: DeductionRetirement, Amount: *d.Retirement})
	}
	if d.UnionDues != nil {
		items = append(items, DeductionItem{Name: DeductionUnionDues, Amount: *d.UnionDues})
	}
	return items
}

func (d Deductions) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items() {
		total = total.Add(item.Amount)
	}
	return total
}

// Payslip is created once per employee per run and never mutated.
// Net == Gross - Tax - Deductions.Total(), all values rounded to 2 places.
type Payslip struct {
	Employee   Employee        `json:"employee"`
	Gross      decimal.Decimal `json:"gross"`
	Tax        decimal.Decimal `json:"tax"`
	Deductions Deductions      `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}
