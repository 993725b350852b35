/*
volume.go - MR volume incentive (percentage of net primary sale)

PURPOSE:
  Quarterly or annual volume incentive for Medical Representatives: a
  percentage of net primary sale, keyed by achievement band and
  productivity group. The quarterly and annual periods share one
  published rate table; the selection is carried through for display.

RATE GRID (% of net primary sale):
  Achievement >= 110:       A 0.75  B 0.90  C 1.00  D 1.20
  105 <= Achievement < 110: A 0.62  B 0.70  C 0.87  D 1.00
  100 <= Achievement < 105: A 0.50  B 0.60  C 0.75  D 0.80
  95 <= Achievement < 100:  A 0.25  B 0.30  C 0.35  D 0.40
  Achievement < 95:         disqualified

  Payout = net primary sale x rate / 100. Requires a selected period and
  a positive PCPM.

SEE ALSO:
  - annual.go: the salary-multiplier sibling of this grid
*/
package plans

import (
	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// MR VOLUME RULE
// =============================================================================

// VolumeRule holds the group breakpoints and the rate grid.
type VolumeRule struct {
	Breakpoints incentive.GroupBreakpoints
	Rates       incentive.RateGrid
}

// DefaultVolume returns the FY 2025-26 MR volume parameters.
func DefaultVolume() VolumeRule {
	d := incentive.MustParseDecimal
	return VolumeRule{
		Breakpoints: incentive.DefaultBreakpoints(),
		Rates: incentive.NewRateGrid(
			incentive.GridRow{Floor: d("110"), ByGroup: map[incentive.Group]decimal.Decimal{
				incentive.GroupA: d("0.75"), incentive.GroupB: d("0.90"),
				incentive.GroupC: d("1.00"), incentive.GroupD: d("1.20"),
			}},
			incentive.GridRow{Floor: d("105"), ByGroup: map[incentive.Group]decimal.Decimal{
				incentive.GroupA: d("0.62"), incentive.GroupB: d("0.70"),
				incentive.GroupC: d("0.87"), incentive.GroupD: d("1.00"),
			}},
			incentive.GridRow{Floor: d("100"), ByGroup: map[incentive.Group]decimal.Decimal{
				incentive.GroupA: d("0.50"), incentive.GroupB: d("0.60"),
				incentive.GroupC: d("0.75"), incentive.GroupD: d("0.80"),
			}},
			incentive.GridRow{Floor: d("95"), ByGroup: map[incentive.Group]decimal.Decimal{
				incentive.GroupA: d("0.25"), incentive.GroupB: d("0.30"),
				incentive.GroupC: d("0.35"), incentive.GroupD: d("0.40"),
			}},
		),
	}
}

// Evaluate computes the MR volume incentive.
func (r VolumeRule) Evaluate(in VolumeInput) incentive.Result {
	if !in.Period.IsSelected() {
		return incentive.Incomplete("select a period to calculate the incentive")
	}
	group := r.Breakpoints.Classify(decimal.NewFromFloat(in.PCPM))
	if !group.IsSpecified() {
		return incentive.Incomplete("enter PCPM to determine the productivity group")
	}

	achievement := decimal.NewFromFloat(in.AchievementPct)
	rate, ok := r.Rates.Lookup(achievement, group)
	if !ok {
		return incentive.Disqualified(group,
			"achievement below 95% does not qualify for the volume incentive")
	}

	sale := decimal.NewFromFloat(in.NetPrimarySale)
	amount := incentive.Amount{
		Value: sale.Mul(rate).Div(decimal.NewFromInt(100)),
		Unit:  incentive.UnitRupees,
	}
	return incentive.Qualified(group, group.String(), rate, amount)
}
