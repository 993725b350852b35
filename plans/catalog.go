/*
catalog.go - The assembled set of all nine plans

PURPOSE:
  Bundles one configured rule per plan id plus display metadata. The
  server holds exactly one Catalog: built from defaults, then overlaid
  with any definitions stored in the plan catalog database.

SEE ALSO:
  - factory: builds a Catalog from JSON definitions
  - api: dispatches evaluate requests against the Catalog
*/
package plans

import (
	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// PLAN METADATA
// =============================================================================

// Info describes one plan for listings.
type Info struct {
	ID   incentive.PlanID
	Name string
	Kind incentive.PlanKind
}

var planInfo = map[incentive.PlanID]Info{
	PlanHyterce:        {PlanHyterce, "Hyterce Dual Opportunity Incentive", incentive.KindUnitSlab},
	PlanMRAnnual:       {PlanMRAnnual, "MR Annual Incentive", incentive.KindSalaryMultiplier},
	PlanMRVolume:       {PlanMRVolume, "MR Volume Incentive (Quarterly/Annual)", incentive.KindSaleRate},
	PlanMRBrand:        {PlanMRBrand, "MR Eminent 11 Brand Incentive", incentive.KindFlatTable},
	PlanMRQuarterBrand: {PlanMRQuarterBrand, "MR Quarterly Brand-Specific Incentive", incentive.KindFlatTable},
	PlanASM:            {PlanASM, "ASM Incentive", incentive.KindManager},
	PlanRSMBM:          {PlanRSMBM, "RSM/BM Incentive", incentive.KindManager},
	PlanZBM:            {PlanZBM, "ZBM Incentive", incentive.KindManager},
	PlanResplash:       {PlanResplash, "Resplash Super 30 Incentive", incentive.KindGrowthSlab},
}

// InfoFor returns the display metadata for a plan id.
func InfoFor(id incentive.PlanID) (Info, bool) {
	info, ok := planInfo[id]
	return info, ok
}

// =============================================================================
// CATALOG
// =============================================================================

// Catalog holds one configured rule per plan.
type Catalog struct {
	Hyterce        HyterceRule
	Annual         AnnualRule
	Volume         VolumeRule
	EminentBrand   BrandRule
	QuarterlyBrand BrandRule
	ASM            ManagerRule
	RSMBM          ManagerRule
	ZBM            ManagerRule
	Resplash       ResplashRule
}

// DefaultCatalog returns every plan with its FY 2025-26 parameters.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Hyterce:        DefaultHyterce(),
		Annual:         DefaultAnnual(),
		Volume:         DefaultVolume(),
		EminentBrand:   DefaultEminentBrand(),
		QuarterlyBrand: DefaultQuarterlyBrand(),
		ASM:            DefaultManager(RoleASM),
		RSMBM:          DefaultManager(RoleRSMBM),
		ZBM:            DefaultManager(RoleZBM),
		Resplash:       DefaultResplash(),
	}
}

// Manager returns the manager rule for a manager plan id.
func (c *Catalog) Manager(id incentive.PlanID) (ManagerRule, bool) {
	switch id {
	case PlanASM:
		return c.ASM, true
	case PlanRSMBM:
		return c.RSMBM, true
	case PlanZBM:
		return c.ZBM, true
	default:
		return ManagerRule{}, false
	}
}
