/*
annual.go - MR annual incentive (salary x multiplier)

PURPOSE:
  Annual incentive for Medical Representatives: a multiple of monthly
  gross salary, keyed by achievement band and productivity group.

MULTIPLIER GRID:
  Achievement >= 110:       A 1.0   B 1.1   C 1.25  D 1.5
  105 <= Achievement < 110: A 0.75  B 0.8   C 0.9   D 1.0
  Achievement < 105:        disqualified

  Payout = monthly gross salary x multiplier. PCPM determines the group;
  a zero PCPM means the group is unknown and no computation is performed.

SEE ALSO:
  - incentive/classify.go: PCPM -> group breakpoints
  - incentive/band.go: RateGrid used for the multiplier lookup
*/
package plans

import (
	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// MR ANNUAL RULE
// =============================================================================

// AnnualRule holds the group breakpoints and the multiplier grid.
type AnnualRule struct {
	Breakpoints incentive.GroupBreakpoints
	Multipliers incentive.RateGrid
}

// DefaultAnnual returns the FY 2025-26 MR annual parameters.
func DefaultAnnual() AnnualRule {
	d := incentive.MustParseDecimal
	return AnnualRule{
		Breakpoints: incentive.DefaultBreakpoints(),
		Multipliers: incentive.NewRateGrid(
			incentive.GridRow{Floor: d("110"), ByGroup: map[incentive.Group]decimal.Decimal{
				incentive.GroupA: d("1"), incentive.GroupB: d("1.1"),
				incentive.GroupC: d("1.25"), incentive.GroupD: d("1.5"),
			}},
			incentive.GridRow{Floor: d("105"), ByGroup: map[incentive.Group]decimal.Decimal{
				incentive.GroupA: d("0.75"), incentive.GroupB: d("0.8"),
				incentive.GroupC: d("0.9"), incentive.GroupD: d("1"),
			}},
		),
	}
}

// Evaluate computes the MR annual incentive.
func (r AnnualRule) Evaluate(in AnnualInput) incentive.Result {
	group := r.Breakpoints.Classify(decimal.NewFromFloat(in.PCPM))
	if !group.IsSpecified() {
		return incentive.Incomplete("enter PCPM to determine the productivity group")
	}

	achievement := decimal.NewFromFloat(in.AchievementPct)
	multiplier, ok := r.Multipliers.Lookup(achievement, group)
	if !ok {
		return incentive.Disqualified(group,
			"achievement below 105% does not qualify for the annual incentive")
	}

	salary := decimal.NewFromFloat(in.MonthlySalary)
	amount := incentive.Amount{Value: salary.Mul(multiplier), Unit: incentive.UnitRupees}
	return incentive.Qualified(group, group.String(), multiplier, amount)
}
