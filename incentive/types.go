/*
Package incentive provides the core incentive calculation engine.

PURPOSE:
  This package contains plan-agnostic types and table machinery used by
  every incentive plan: decimal amounts with units, the PCPM productivity
  classifier, ordered band tables, per-group rate grids, and flat lookup
  tables. Plan definitions live in the plans package; this package knows
  nothing about specific plans.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., ₹5600, 700 units, 1.2 lakhs)
  - Outcome: The three-way evaluation verdict (incomplete/disqualified/qualified)
  - Result: An immutable record of one rule evaluation
  - PlanID: Type-safe plan identifier

DESIGN PRINCIPLES:
  1. Purity: Every evaluation is a deterministic function of its inputs.
     No shared state, no I/O, no errors from rule logic.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in
     money and rate arithmetic. Floats exist only at the transport boundary.
  3. Three outcomes, no exceptions: Missing input is Incomplete, below
     threshold is Disqualified with a reason, everything else is Qualified.
     Zero denominators are guarded, lookup indices are clamped.

USAGE:
  amount := incentive.NewAmount(5600, incentive.UnitRupees)
  result := incentive.Qualified(incentive.GroupC, "Slab 3", rate, amount)

SEE ALSO:
  - classify.go: PCPM to productivity group classification
  - band.go: Band tables, rate grids, flat lookup tables
  - errors.go: Sentinel errors for the catalog and transport layers
*/
package incentive

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitRupees  Unit = "rupees"
	UnitUnits   Unit = "units"
	UnitLakhs   Unit = "lakhs"
	UnitPercent Unit = "percent"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (a Amount) Zero() Amount                 { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Div(s decimal.Decimal) Amount { return Amount{Value: a.Value.Div(s), Unit: a.Unit} }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }

// Rupees formats the value as a fixed two-decimal currency string.
func (a Amount) Rupees() string { return a.Value.StringFixed(2) }

// =============================================================================
// IDENTIFIERS
// =============================================================================

type PlanID string

// PlanKind identifies the calculation shape of a plan. The factory uses it
// to decide which parameter block a JSON definition must carry.
type PlanKind string

const (
	KindUnitSlab         PlanKind = "unit_slab"         // per-unit rate by PCPM slab (Hyterce)
	KindSalaryMultiplier PlanKind = "salary_multiplier" // salary x multiplier grid (MR annual)
	KindSaleRate         PlanKind = "sale_rate"         // % of sale by rate grid (MR volume)
	KindFlatTable        PlanKind = "flat_table"        // flat amount lookup (brand plans)
	KindManager          PlanKind = "manager"           // team-pool multiplier (ASM/RSM/ZBM)
	KindGrowthSlab       PlanKind = "growth_slab"       // incremental-unit slabs (Resplash)
)

// =============================================================================
// OUTCOME - Three-way evaluation verdict
// =============================================================================

// Outcome classifies an evaluation. There are no error outcomes: missing
// input is a prompt to provide more, not a failure.
type Outcome string

const (
	// OutcomeIncomplete: inputs are insufficient to evaluate (no product
	// selected, zero PCPM, zero denominator). Amount is zero, Reason
	// explains what is missing.
	OutcomeIncomplete Outcome = "incomplete"

	// OutcomeDisqualified: inputs are complete but below a qualifying
	// threshold. Amount is zero, Reason names the failed condition.
	OutcomeDisqualified Outcome = "disqualified"

	// OutcomeQualified: a non-zero (or legitimately zero) payout with
	// classification, rate, and amount populated.
	OutcomeQualified Outcome = "qualified"
)

// =============================================================================
// RESULT - Immutable record of one evaluation
// =============================================================================

// Result is the common shape every plan evaluation produces. Plans with
// extra outputs (incremental units, excellence eligibility) embed it.
type Result struct {
	Outcome Outcome
	Group   Group           // productivity group, GroupUnspecified when not group-based
	Label   string          // slab or band label, "" when not applicable
	Rate    decimal.Decimal // per-unit rate, percentage, or multiplier
	Amount  Amount          // payout in rupees
	Reason  string          // prompt or disqualification reason
}

// Incomplete builds a result asking for more input.
func Incomplete(reason string) Result {
	return Result{
		Outcome: OutcomeIncomplete,
		Amount:  Amount{Value: decimal.Zero, Unit: UnitRupees},
		Reason:  reason,
	}
}

// Disqualified builds a zero-amount result with the failed condition.
func Disqualified(group Group, reason string) Result {
	return Result{
		Outcome: OutcomeDisqualified,
		Group:   group,
		Amount:  Amount{Value: decimal.Zero, Unit: UnitRupees},
		Reason:  reason,
	}
}

// Qualified builds a payout result.
func Qualified(group Group, label string, rate decimal.Decimal, amount Amount) Result {
	return Result{
		Outcome: OutcomeQualified,
		Group:   group,
		Label:   label,
		Rate:    rate,
		Amount:  amount,
	}
}
