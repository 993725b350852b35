/*
hyterce.go - Hyterce dual opportunity incentive (Syrup and Drops)

PURPOSE:
  Per-unit incentive on Hyterce primary sales over the Jun-Aug 2025
  window. PCPM is monthly-averaged units; the slab and the per-unit rate
  depend on (PCPM slab, product).

SLABS (units per month):
  < 200        No incentive
  [200, 400)   Slab 1   Syrup ₹4   Drops ₹3
  [400, 600)   Slab 2   Syrup ₹6   Drops ₹4
  >= 600       Slab 3   Syrup ₹8   Drops ₹5

  Payout = PCPM x per-unit rate.

EXAMPLE (from the circular):
  2100 units of Syrup over 3 months -> PCPM 700 -> Slab 3 at ₹8 -> ₹5600.

SEE ALSO:
  - incentive/band.go: BandTable used for the slab scan
  - presets.go: JSON form of these parameters
*/
package plans

import (
	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// HYTERCE RULE
// =============================================================================

// HyterceRule holds the slab floors and the per-product, per-slab rates.
type HyterceRule struct {
	// Slabs band PCPM; the band Value is unused (rates vary by product).
	Slabs incentive.BandTable
	// Rates maps product -> slab label -> per-unit rate.
	Rates map[Product]map[string]decimal.Decimal
}

// DefaultHyterce returns the FY 2025-26 Hyterce parameters.
func DefaultHyterce() HyterceRule {
	return HyterceRule{
		Slabs: incentive.NewBandTable(
			incentive.Band{Floor: decimal.NewFromInt(200), Label: "Slab 1"},
			incentive.Band{Floor: decimal.NewFromInt(400), Label: "Slab 2"},
			incentive.Band{Floor: decimal.NewFromInt(600), Label: "Slab 3"},
		),
		Rates: map[Product]map[string]decimal.Decimal{
			ProductSyrup: {
				"Slab 1": decimal.NewFromInt(4),
				"Slab 2": decimal.NewFromInt(6),
				"Slab 3": decimal.NewFromInt(8),
			},
			ProductDrops: {
				"Slab 1": decimal.NewFromInt(3),
				"Slab 2": decimal.NewFromInt(4),
				"Slab 3": decimal.NewFromInt(5),
			},
		},
	}
}

// Evaluate computes the Hyterce incentive for one representative.
func (r HyterceRule) Evaluate(in HyterceInput) HyterceResult {
	if !in.Product.IsSelected() {
		return HyterceResult{
			Result: incentive.Incomplete("select a product to calculate the incentive"),
			PCPM:   incentive.Amount{Value: decimal.Zero, Unit: incentive.UnitUnits},
		}
	}

	// Guard months=0 even though the input range is 1-3.
	pcpm := decimal.Zero
	if in.Months > 0 {
		pcpm = decimal.NewFromInt(in.TotalUnits).Div(decimal.NewFromInt(int64(in.Months)))
	}
	pcpmAmount := incentive.Amount{Value: pcpm, Unit: incentive.UnitUnits}

	band, ok := r.Slabs.Lookup(pcpm)
	if !ok {
		res := incentive.Disqualified(incentive.GroupUnspecified,
			"PCPM below the minimum slab does not earn an incentive")
		res.Label = "No Incentive"
		return HyterceResult{Result: res, PCPM: pcpmAmount}
	}

	rate := r.Rates[in.Product][band.Label]
	amount := incentive.Amount{Value: pcpm.Mul(rate), Unit: incentive.UnitRupees}
	return HyterceResult{
		Result: incentive.Qualified(incentive.GroupUnspecified, band.Label, rate, amount),
		PCPM:   pcpmAmount,
	}
}
