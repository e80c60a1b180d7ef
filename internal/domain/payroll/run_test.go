package payroll

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildPayslipNetInvariant(t *testing.T) {
	e := Employee{ID: "1", Name: "Bob", Type: FullTime, PayRate: dec("4000")}

	slip, err := BuildPayslip(e, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Gross 4000, tax 200 + 200 = 400, health insurance 150.
	if !slip.Gross.Equal(dec("4000")) {
		t.Fatalf("expected gross 4000, got %s", slip.Gross)
	}
	if !slip.Tax.Equal(dec("400")) {
		t.Fatalf("expected tax 400, got %s", slip.Tax)
	}
	if !slip.Net.Equal(dec("3450")) {
		t.Fatalf("expected net 3450, got %s", slip.Net)
	}
	residual := slip.Gross.Sub(slip.Tax).Sub(slip.Deductions.Total())
	if !slip.Net.Equal(residual) {
		t.Fatalf("net %s does not equal gross - tax - deductions %s", slip.Net, residual)
	}
}

func TestBuildPayslipAllDeductions(t *testing.T) {
	e := Employee{ID: "2", Name: "Carol", Type: FullTime, PayRate: dec("6000"), UnionMember: true, Retirement: true}

	slip, err := BuildPayslip(e, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := slip.Deductions.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 deductions, got %d", len(items))
	}
	// 6000 gross: tax 900, health 150, retirement 300, union 50.
	if !slip.Net.Equal(dec("4600")) {
		t.Fatalf("expected net 4600, got %s", slip.Net)
	}
}

func TestBuildPayslipPropagatesHoursError(t *testing.T) {
	e := Employee{ID: "3", Name: "Dave", Type: PartTime, PayRate: dec("25")}

	_, err := BuildPayslip(e, dec("121"))
	if !errors.Is(err, ErrHoursOutOfRange) {
		t.Fatalf("expected ErrHoursOutOfRange, got %v", err)
	}
}

func TestRunPreservesOrder(t *testing.T) {
	employees := []Employee{
		{ID: "1", Name: "Alice", Type: FullTime, PayRate: dec("4000")},
		{ID: "2", Name: "Bob", Type: PartTime, PayRate: dec("25")},
		{ID: "3", Name: "Carol", Type: Contractor, PayRate: dec("200")},
	}
	units := map[string]decimal.Decimal{
		"2": dec("80"),
		"3": dec("20"),
	}

	payslips, err := Run(employees, units)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payslips) != 3 {
		t.Fatalf("expected 3 payslips, got %d", len(payslips))
	}
	if payslips[0].Employee.Name != "Alice" {
		t.Fatalf("expected payslips in input order, got %s first", payslips[0].Employee.Name)
	}
	if !payslips[0].Gross.Equal(dec("4000")) {
		t.Fatalf("expected full-time gross 4000, got %s", payslips[0].Gross)
	}
	if !payslips[1].Gross.Equal(dec("2000")) {
		t.Fatalf("expected part-time gross 2000, got %s", payslips[1].Gross)
	}
	if !payslips[2].Gross.Equal(dec("4000")) {
		t.Fatalf("expected contractor gross 4000, got %s", payslips[2].Gross)
	}
}

func TestRunDefaultUnits(t *testing.T) {
	employees := []Employee{
		{ID: "1", Name: "Alice", Type: FullTime, PayRate: dec("4000")},
		{ID: "2", Name: "Bob", Type: PartTime, PayRate: dec("25")},
		{ID: "3", Name: "Carol", Type: Contractor, PayRate: dec("150")},
	}

	payslips, err := Run(employees, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payslips[0].Gross.Equal(dec("4000")) {
		t.Fatalf("expected gross 4000, got %s", payslips[0].Gross)
	}
	// Defaults: 80 hours part-time, 20 days contractor.
	if !payslips[1].Gross.Equal(dec("2000")) {
		t.Fatalf("expected gross 2000 from default hours, got %s", payslips[1].Gross)
	}
	if !payslips[2].Gross.Equal(dec("3000")) {
		t.Fatalf("expected gross 3000 from default days, got %s", payslips[2].Gross)
	}
}

func TestRunHaltsOnFirstFailure(t *testing.T) {
	employees := []Employee{
		{ID: "1", Name: "Alice", Type: FullTime, PayRate: dec("4000")},
		{ID: "2", Name: "Bob", Type: PartTime, PayRate: dec("25")},
		{ID: "3", Name: "Carol", Type: Contractor, PayRate: dec("200")},
	}
	units := map[string]decimal.Decimal{"2": dec("130")}

	payslips, err := Run(employees, units)
	if !errors.Is(err, ErrHoursOutOfRange) {
		t.Fatalf("expected ErrHoursOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "employee 2") {
		t.Fatalf("expected failing employee id in error, got %q", err.Error())
	}
	if payslips != nil {
		t.Fatalf("expected no partial results, got %d payslips", len(payslips))
	}
}

func TestSummarize(t *testing.T) {
	employees := []Employee{
		{ID: "1", Name: "Alice", Type: FullTime, PayRate: dec("4000")},
		{ID: "2", Name: "Bob", Type: PartTime, PayRate: dec("25")},
	}

	payslips, err := Run(employees, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := Summarize(payslips)
	if s.Count != 2 {
		t.Fatalf("expected count 2, got %d", s.Count)
	}
	if !s.TotalGross.Equal(dec("6000")) {
		t.Fatalf("expected total gross 6000, got %s", s.TotalGross)
	}
	// Tax: 400 for the 4000 gross, 100 for the 2000 gross.
	if !s.TotalTax.Equal(dec("500")) {
		t.Fatalf("expected total tax 500, got %s", s.TotalTax)
	}
	// Only deduction in the batch is the full-timer's health insurance.
	wantNet := s.TotalGross.Sub(s.TotalTax).Sub(dec("150"))
	if !s.TotalNet.Equal(wantNet) {
		t.Fatalf("expected total net %s, got %s", wantNet, s.TotalNet)
	}
}
