/*
resplash.go - Resplash Super-30 incentive (precision growth and excellence)

PURPOSE:
  Growth incentive on incremental Resplash units: current-period units
  minus base-period units, floored at zero. The precision incentive pays
  a per-unit rate by growth slab; excellence is a separate eligibility
  flag for the externally ranked top-3 award.

SLABS (incremental units):
  < 1500        No incentive
  [1500, 3000)  Aspire    ₹0.75
  [3000, 4500)  Eminence  ₹1.00
  [4500, 6000)  Pinnacle  ₹1.25
  >= 6000       Summit    ₹1.50

  Precision payout = incremental units x rate.

EXCELLENCE:
  Incremental units >= 7500 makes a representative eligible for the
  excellence award. The award amount is decided by a manual top-3 ranking
  across the field force and is not computable from one representative's
  inputs, so this rule reports eligibility only.

SEE ALSO:
  - hyterce.go: the other direct unit-slab plan
*/
package plans

import (
	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// RESPLASH RULE
// =============================================================================

// ResplashRule holds the growth slabs and the excellence floor.
type ResplashRule struct {
	Slabs           incentive.BandTable
	ExcellenceFloor int64 // minimum incremental units for excellence eligibility
}

// DefaultResplash returns the FY 2025-26 Resplash Super-30 parameters.
func DefaultResplash() ResplashRule {
	d := incentive.MustParseDecimal
	return ResplashRule{
		Slabs: incentive.NewBandTable(
			incentive.Band{Floor: d("1500"), Label: "Aspire", Value: d("0.75")},
			incentive.Band{Floor: d("3000"), Label: "Eminence", Value: d("1.00")},
			incentive.Band{Floor: d("4500"), Label: "Pinnacle", Value: d("1.25")},
			incentive.Band{Floor: d("6000"), Label: "Summit", Value: d("1.50")},
		),
		ExcellenceFloor: 7500,
	}
}

// Evaluate computes the Resplash precision incentive and excellence flag.
func (r ResplashRule) Evaluate(in ResplashInput) ResplashResult {
	incremental := in.CurrentUnits - in.BaseUnits
	if incremental < 0 {
		incremental = 0
	}

	if incremental == 0 {
		return ResplashResult{
			Result: incentive.Incomplete("incremental units must exceed zero to calculate the incentive"),
		}
	}

	excellence := incremental >= r.ExcellenceFloor
	units := decimal.NewFromInt(incremental)

	band, ok := r.Slabs.Lookup(units)
	if !ok {
		res := incentive.Disqualified(incentive.GroupUnspecified,
			"fewer than 1500 incremental units does not earn the precision incentive")
		res.Label = "No Incentive"
		return ResplashResult{
			Result:             res,
			IncrementalUnits:   incremental,
			ExcellenceEligible: excellence,
		}
	}

	amount := incentive.Amount{Value: units.Mul(band.Value), Unit: incentive.UnitRupees}
	return ResplashResult{
		Result:             incentive.Qualified(incentive.GroupUnspecified, band.Label, band.Value, amount),
		IncrementalUnits:   incremental,
		ExcellenceEligible: excellence,
	}
}
