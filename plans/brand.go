/*
brand.go - Brand incentives (Eminent-11 annual and quarterly brand-specific)

PURPOSE:
  Two flat-amount plans sharing one shape: classify PCPM into a group,
  then look up a flat rupee amount by the number of brands (or brand
  groups) at 100% target.

EMINENT-11 ANNUAL (mr_brand):
  Count of brand groups at 100% target, 1-11. Per-group arithmetic
  progressions: A steps of ₹1000, B ₹1500, C ₹2000, D ₹2500 (index 0 = 0).

QUARTERLY BRAND-SPECIFIC (mr_quarterly_brand):
  Count of qualifying brands among Acolate, Tynol, Vitfol and DFS, 1-4.
  Steps: A ₹500, B ₹750, C ₹1000, D ₹1500.

CLAMPING:
  The transport layer validates the declared maxima (11 / 4). The table
  lookup still clamps the count into the valid index range so a caller
  bypassing the transport can never index out of bounds.

SEE ALSO:
  - incentive/band.go: FlatTable with clamped lookup
*/
package plans

import (
	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// BRAND RULE - shared by both brand plans
// =============================================================================

// BrandRule holds the group breakpoints and the flat amount table.
type BrandRule struct {
	Breakpoints incentive.GroupBreakpoints
	Table       incentive.FlatTable
}

// DefaultEminentBrand returns the FY 2025-26 Eminent-11 parameters.
func DefaultEminentBrand() BrandRule {
	return BrandRule{
		Breakpoints: incentive.DefaultBreakpoints(),
		Table: incentive.ArithmeticFlatTable(map[incentive.Group]int64{
			incentive.GroupA: 1000,
			incentive.GroupB: 1500,
			incentive.GroupC: 2000,
			incentive.GroupD: 2500,
		}, 11),
	}
}

// DefaultQuarterlyBrand returns the FY 2025-26 quarterly brand parameters.
func DefaultQuarterlyBrand() BrandRule {
	return BrandRule{
		Breakpoints: incentive.DefaultBreakpoints(),
		Table: incentive.ArithmeticFlatTable(map[incentive.Group]int64{
			incentive.GroupA: 500,
			incentive.GroupB: 750,
			incentive.GroupC: 1000,
			incentive.GroupD: 1500,
		}, 4),
	}
}

// MaxCount returns the highest brand count the table pays out for.
func (r BrandRule) MaxCount() int { return r.Table.MaxCount() }

// Evaluate computes the flat brand incentive.
func (r BrandRule) Evaluate(in BrandInput) incentive.Result {
	group := r.Breakpoints.Classify(decimal.NewFromFloat(in.PCPM))
	if !group.IsSpecified() {
		return incentive.Incomplete("enter PCPM to determine the productivity group")
	}

	amount := r.Table.Lookup(group, in.Count)
	if amount.IsZero() {
		return incentive.Disqualified(group,
			"no brands at 100% target does not earn a brand incentive")
	}
	// Label carries the group; the "rate" of a flat plan is the amount itself.
	return incentive.Qualified(group, group.String(), amount.Value, amount)
}
