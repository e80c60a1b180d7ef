package payroll

import "github.com/shopspring/decimal"

const (
	DeductionHealthInsurance = "health_insurance"
	DeductionRetirement      = "retirement"
	DeductionUnionDues       = "union_dues"

	// MaxPartTimeHours caps PART_TIME worked hours per period.
	MaxPartTimeHours = 120
)

// Progressive tax brackets: 0% up to 1000, 10% to 3000, 20% to 5000,
// 30% above.
var (
	taxBracket1Max = decimal.NewFromInt(1000)
	taxBracket2Max = decimal.NewFromInt(3000)
	taxBracket3Max = decimal.NewFromInt(5000)

	taxRate2 = decimal.NewFromFloat(0.10)
	taxRate3 = decimal.NewFromFloat(0.20)
	taxRate4 = decimal.NewFromFloat(0.30)
)

var (
	healthInsuranceAmount = decimal.NewFromInt(150)
	retirementRate        = decimal.NewFromFloat(0.05)
	unionDuesAmount       = decimal.NewFromInt(50)
)

// Default worked units for a batch run when the caller supplies none.
var (
	maxPartTimeHours      = decimal.NewFromInt(MaxPartTimeHours)
	defaultPartTimeHours  = decimal.NewFromInt(80)
	defaultContractorDays = decimal.NewFromInt(20)
)
