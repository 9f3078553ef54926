package payroll

import (
	"dayflow/internal/salary"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type payComponents struct {
	BasicSalary       int64
	HRA               int64
	StandardAllowance int64
	PerformanceBonus  int64
	LTA               int64
	FixedAllowance    int64
	GrossSalary       int64
	PFEmployee        int64
	PFEmployer        int64
	ProfessionalTax   int64
	TotalDeductions   int64
	NetSalary         int64
}

// computePay prorates a salary structure by the payable ratio
// (present + paid leave over calendar days of the month). Intermediate math
// stays in decimals; each persisted figure is rounded half-up to a whole
// currency unit independently, so gross is the sum of the rounded parts'
// unrounded values, not of the rounded parts.
func computePay(structure salary.SalaryStructure, daysPresent, paidLeaveDays, workingDays int) payComponents {
	ratio := decimal.NewFromInt(int64(daysPresent + paidLeaveDays)).
		Div(decimal.NewFromInt(int64(workingDays)))

	wage := decimal.NewFromInt(structure.Wage)

	basic := wage.
		Mul(decimal.NewFromFloat(structure.BasicSalaryPercentage)).
		Div(hundred).
		Mul(ratio)
	hra := basic.Mul(decimal.NewFromFloat(structure.HRAPercentage)).Div(hundred)

	standard := decimal.NewFromInt(structure.StandardAllowance).Mul(ratio)
	bonus := decimal.NewFromInt(structure.PerformanceBonus).Mul(ratio)
	lta := decimal.NewFromInt(structure.LTA).Mul(ratio)
	fixed := decimal.NewFromInt(structure.FixedAllowance).Mul(ratio)

	gross := basic.Add(hra).Add(standard).Add(bonus).Add(lta).Add(fixed)

	pfEmployee := basic.Mul(decimal.NewFromFloat(structure.PFEmployeePercentage)).Div(hundred)
	pfEmployer := basic.Mul(decimal.NewFromFloat(structure.PFEmployerPercentage)).Div(hundred)
	professionalTax := decimal.NewFromInt(structure.ProfessionalTax)

	totalDeductions := pfEmployee.Add(professionalTax)
	net := gross.Sub(totalDeductions)

	return payComponents{
		BasicSalary:       roundUnit(basic),
		HRA:               roundUnit(hra),
		StandardAllowance: roundUnit(standard),
		PerformanceBonus:  roundUnit(bonus),
		LTA:               roundUnit(lta),
		FixedAllowance:    roundUnit(fixed),
		GrossSalary:       roundUnit(gross),
		PFEmployee:        roundUnit(pfEmployee),
		PFEmployer:        roundUnit(pfEmployer),
		ProfessionalTax:   roundUnit(professionalTax),
		TotalDeductions:   roundUnit(totalDeductions),
		NetSalary:         roundUnit(net),
	}
}

// roundUnit rounds half-up to the nearest whole currency unit.
func roundUnit(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
