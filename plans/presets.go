/*
presets.go - JSON definition builders for the plan catalog

PURPOSE:
  Produces the JSON definition of each plan's FY 2025-26 parameters.
  These strings seed the sqlite plan catalog on first run and are the
  canonical examples of the schema the factory package parses. They are
  built here, next to the Go presets, so a new fiscal year's circular is
  a data change in one place.

  The builders construct JSON maps directly to avoid an import cycle with
  the factory package.

USAGE:
  jsonStr := plans.DefaultDefinitionJSON(plans.PlanMRVolume)
  err := factory.Apply(catalog, jsonStr)

SEE ALSO:
  - factory/plan.go: the parser for this schema
  - store/sqlite: persists these definitions versioned
*/
package plans

import (
	"encoding/json"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// defaultBreakpointsJSON is the shared PCPM group block.
func defaultBreakpointsJSON() map[string]interface{} {
	return map[string]interface{}{
		"a_upper": 1.5,
		"b_upper": 2.5,
		"c_upper": 4.0,
	}
}

func marshalDefinition(def map[string]interface{}) string {
	b, _ := json.MarshalIndent(def, "", "  ")
	return string(b)
}

// HyterceJSON returns the Hyterce dual-opportunity definition.
func HyterceJSON() string {
	return marshalDefinition(map[string]interface{}{
		"id":      string(PlanHyterce),
		"name":    "Hyterce Dual Opportunity Incentive",
		"kind":    string(incentive.KindUnitSlab),
		"version": 1,
		"slabs": []map[string]interface{}{
			{"floor": 200, "label": "Slab 1"},
			{"floor": 400, "label": "Slab 2"},
			{"floor": 600, "label": "Slab 3"},
		},
		"product_rates": map[string]interface{}{
			"syrup": map[string]interface{}{"Slab 1": 4, "Slab 2": 6, "Slab 3": 8},
			"drops": map[string]interface{}{"Slab 1": 3, "Slab 2": 4, "Slab 3": 5},
		},
	})
}

// AnnualJSON returns the MR annual incentive definition.
func AnnualJSON() string {
	return marshalDefinition(map[string]interface{}{
		"id":          string(PlanMRAnnual),
		"name":        "MR Annual Incentive",
		"kind":        string(incentive.KindSalaryMultiplier),
		"version":     1,
		"breakpoints": defaultBreakpointsJSON(),
		"grid": []map[string]interface{}{
			{"floor": 110, "rates": map[string]interface{}{"A": 1.0, "B": 1.1, "C": 1.25, "D": 1.5}},
			{"floor": 105, "rates": map[string]interface{}{"A": 0.75, "B": 0.8, "C": 0.9, "D": 1.0}},
		},
	})
}

// VolumeJSON returns the MR volume incentive definition.
func VolumeJSON() string {
	return marshalDefinition(map[string]interface{}{
		"id":          string(PlanMRVolume),
		"name":        "MR Volume Incentive (Quarterly/Annual)",
		"kind":        string(incentive.KindSaleRate),
		"version":     1,
		"breakpoints": defaultBreakpointsJSON(),
		"grid": []map[string]interface{}{
			{"floor": 110, "rates": map[string]interface{}{"A": 0.75, "B": 0.90, "C": 1.00, "D": 1.20}},
			{"floor": 105, "rates": map[string]interface{}{"A": 0.62, "B": 0.70, "C": 0.87, "D": 1.00}},
			{"floor": 100, "rates": map[string]interface{}{"A": 0.50, "B": 0.60, "C": 0.75, "D": 0.80}},
			{"floor": 95, "rates": map[string]interface{}{"A": 0.25, "B": 0.30, "C": 0.35, "D": 0.40}},
		},
	})
}

// BrandJSON returns the Eminent-11 annual brand definition.
func BrandJSON() string {
	return marshalDefinition(map[string]interface{}{
		"id":          string(PlanMRBrand),
		"name":        "MR Eminent 11 Brand Incentive",
		"kind":        string(incentive.KindFlatTable),
		"version":     1,
		"breakpoints": defaultBreakpointsJSON(),
		"steps":       map[string]interface{}{"A": 1000, "B": 1500, "C": 2000, "D": 2500},
		"max_count":   11,
	})
}

// QuarterlyBrandJSON returns the quarterly brand-specific definition.
func QuarterlyBrandJSON() string {
	return marshalDefinition(map[string]interface{}{
		"id":          string(PlanMRQuarterBrand),
		"name":        "MR Quarterly Brand-Specific Incentive",
		"kind":        string(incentive.KindFlatTable),
		"version":     1,
		"breakpoints": defaultBreakpointsJSON(),
		"steps":       map[string]interface{}{"A": 500, "B": 750, "C": 1000, "D": 1500},
		"max_count":   4,
	})
}

// ManagerJSON returns the definition for one manager grade.
func ManagerJSON(id incentive.PlanID) string {
	rule := DefaultManager(RoleASM)
	name := "ASM Incentive"
	switch id {
	case PlanRSMBM:
		rule = DefaultManager(RoleRSMBM)
		name = "RSM/BM Incentive"
	case PlanZBM:
		rule = DefaultManager(RoleZBM)
		name = "ZBM Incentive"
	}
	threshold, _ := rule.ThresholdPct.Float64()
	high, _ := rule.HighMultiplier.Float64()
	return marshalDefinition(map[string]interface{}{
		"id":              string(id),
		"name":            name,
		"kind":            string(incentive.KindManager),
		"version":         1,
		"role":            string(rule.Role),
		"threshold_pct":   threshold,
		"high_multiplier": high,
	})
}

// ResplashJSON returns the Resplash Super-30 definition.
func ResplashJSON() string {
	return marshalDefinition(map[string]interface{}{
		"id":      string(PlanResplash),
		"name":    "Resplash Super 30 Incentive",
		"kind":    string(incentive.KindGrowthSlab),
		"version": 1,
		"slabs": []map[string]interface{}{
			{"floor": 1500, "label": "Aspire", "rate": 0.75},
			{"floor": 3000, "label": "Eminence", "rate": 1.00},
			{"floor": 4500, "label": "Pinnacle", "rate": 1.25},
			{"floor": 6000, "label": "Summit", "rate": 1.50},
		},
		"excellence_floor": 7500,
	})
}

// DefaultDefinitionJSON returns the FY 2025-26 definition for any plan id,
// "" for unknown ids.
func DefaultDefinitionJSON(id incentive.PlanID) string {
	switch id {
	case PlanHyterce:
		return HyterceJSON()
	case PlanMRAnnual:
		return AnnualJSON()
	case PlanMRVolume:
		return VolumeJSON()
	case PlanMRBrand:
		return BrandJSON()
	case PlanMRQuarterBrand:
		return QuarterlyBrandJSON()
	case PlanASM, PlanRSMBM, PlanZBM:
		return ManagerJSON(id)
	case PlanResplash:
		return ResplashJSON()
	default:
		return ""
	}
}
