/*
Package plans provides the nine FY 2025-26 incentive plans for the field
force and its managers.

PURPOSE:
  Implements each incentive circular as a configurable rule: a small value
  type holding the plan's tables and thresholds, with a pure Evaluate
  method from a named-field input record to a result record. Default
  parameters match the published circulars; the factory package can build
  the same rules from stored JSON definitions for later fiscal years.

PLANS:
  hyterce:             Hyterce dual opportunity (Syrup/Drops per-unit slabs)
  mr_annual:           MR annual incentive (salary x multiplier grid)
  mr_volume:           MR volume incentive (rate % of net primary sale)
  mr_brand:            MR Eminent-11 brand incentive (flat table, 11 groups)
  mr_quarterly_brand:  MR quarterly brand-specific incentive (flat table, 4 brands)
  asm / rsm_bm / zbm:  Manager incentives (team pool x multiplier, one
                       parameterized rule, three role configs)
  resplash:            Resplash Super-30 (incremental-unit growth slabs)

KEY DIFFERENCES BETWEEN PLAN SHAPES:
  1. Group-based plans classify PCPM into Group A-D first, then look up
     a multiplier, rate, or flat amount.
  2. Slab plans (Hyterce, Resplash) band a unit quantity directly.
  3. Manager plans gate on team eligibility before any multiplier applies.

EVALUATION CONTRACT (all plans):
  - Pure and stateless: same inputs, bit-identical result.
  - Never errors: missing selections and zero denominators produce an
    incomplete outcome, thresholds produce a disqualified outcome.
  - Inputs arrive validated by the transport layer; the core still clamps
    table indices and guards divisions.

SEE ALSO:
  - hyterce.go, annual.go, volume.go, brand.go, manager.go, resplash.go
  - presets.go: JSON preset builders for the plan catalog
  - terms.go: static terms-and-conditions reference table
*/
package plans

import (
	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// PLAN IDENTIFIERS
// =============================================================================

const (
	PlanHyterce        incentive.PlanID = "hyterce"
	PlanMRAnnual       incentive.PlanID = "mr_annual"
	PlanMRVolume       incentive.PlanID = "mr_volume"
	PlanMRBrand        incentive.PlanID = "mr_brand"
	PlanMRQuarterBrand incentive.PlanID = "mr_quarterly_brand"
	PlanASM            incentive.PlanID = "asm"
	PlanRSMBM          incentive.PlanID = "rsm_bm"
	PlanZBM            incentive.PlanID = "zbm"
	PlanResplash       incentive.PlanID = "resplash"
)

// AllPlanIDs lists every plan in circular order.
var AllPlanIDs = []incentive.PlanID{
	PlanHyterce,
	PlanMRAnnual,
	PlanMRVolume,
	PlanMRBrand,
	PlanMRQuarterBrand,
	PlanASM,
	PlanRSMBM,
	PlanZBM,
	PlanResplash,
}

// =============================================================================
// SELECTIONS
// =============================================================================

// Product is the Hyterce product selection.
type Product string

const (
	ProductUnselected Product = ""
	ProductSyrup      Product = "syrup"
	ProductDrops      Product = "drops"
)

func (p Product) IsSelected() bool { return p == ProductSyrup || p == ProductDrops }

// Period is the MR volume incentive period selection. The selection does
// not change the rate table; both periods share one published grid.
type Period string

const (
	PeriodUnselected Period = ""
	PeriodQuarter    Period = "quarter"
	PeriodAnnual     Period = "annual"
)

func (p Period) IsSelected() bool { return p == PeriodQuarter || p == PeriodAnnual }

// Role identifies a manager grade.
type Role string

const (
	RoleASM   Role = "ASM"
	RoleRSMBM Role = "RSM/BM"
	RoleZBM   Role = "ZBM"
)

// QuarterlyBrands are the only brands counted by the quarterly
// brand-specific incentive.
var QuarterlyBrands = []string{"Acolate", "Tynol", "Vitfol", "DFS"}

// =============================================================================
// INPUT RECORDS - validated scalars from the presentation layer
// =============================================================================

// HyterceInput feeds the Hyterce dual-opportunity rule.
type HyterceInput struct {
	Product    Product
	TotalUnits int64 // primary units over the plan window
	Months     int   // 1-3, default 3
}

// AnnualInput feeds the MR annual incentive rule.
type AnnualInput struct {
	PCPM           float64 // lakhs
	AchievementPct float64
	MonthlySalary  float64 // gross, rupees
}

// VolumeInput feeds the MR volume incentive rule.
type VolumeInput struct {
	Period         Period
	PCPM           float64 // lakhs
	AchievementPct float64
	NetPrimarySale float64 // rupees
}

// BrandInput feeds both brand incentive rules.
type BrandInput struct {
	PCPM  float64 // lakhs (annual for Eminent-11, quarterly for brand-specific)
	Count int     // brand groups / brands at 100% target
}

// ManagerInput feeds the ASM, RSM/BM and ZBM rules.
type ManagerInput struct {
	AchievementPct float64
	TeamPool       float64 // total incentive earned by the team, rupees
	TeamSize       int     // positive
	PctEarning     float64 // % of team members individually earning an incentive
}

// ResplashInput feeds the Resplash Super-30 rule.
type ResplashInput struct {
	BaseUnits    int64 // base-period sale units
	CurrentUnits int64 // current-period sale units
}

// =============================================================================
// EXTENDED RESULT RECORDS
// =============================================================================

// HyterceResult adds the computed PCPM to the common result.
type HyterceResult struct {
	incentive.Result
	PCPM incentive.Amount // units per month
}

// ManagerResult adds team-derived intermediates to the common result.
type ManagerResult struct {
	incentive.Result
	Role             Role
	Eligible         bool
	AverageIncentive incentive.Amount // pool / team size
}

// ResplashResult adds growth detail to the common result.
type ResplashResult struct {
	incentive.Result
	IncrementalUnits   int64
	ExcellenceEligible bool // minimum units only; payout is decided by external top-3 ranking
}
