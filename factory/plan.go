/*
Package factory provides JSON to Go plan conversion.

PURPOSE:
  Converts JSON plan definitions into configured plan rules. This enables
  parameter changes without code changes - a new fiscal year's circular
  (new slab floors, rates, multipliers) is a JSON update in the plan
  catalog, and the factory builds the proper Go rule values.

WHY JSON?
  - Sales operations can adjust plan parameters
  - Version control for circular revisions
  - Database storage of plan definitions

JSON SCHEMA (by kind):
  unit_slab (hyterce):
    {"id":"hyterce","kind":"unit_slab",
     "slabs":[{"floor":200,"label":"Slab 1"},...],
     "product_rates":{"syrup":{"Slab 1":4,...},"drops":{...}}}

  salary_multiplier / sale_rate (mr_annual, mr_volume):
    {"breakpoints":{"a_upper":1.5,"b_upper":2.5,"c_upper":4.0},
     "grid":[{"floor":110,"rates":{"A":1,"B":1.1,"C":1.25,"D":1.5}},...]}

  flat_table (mr_brand, mr_quarterly_brand):
    {"breakpoints":{...},"steps":{"A":1000,...},"max_count":11}

  manager (asm, rsm_bm, zbm):
    {"role":"ASM","threshold_pct":60,"high_multiplier":1.5}

  growth_slab (resplash):
    {"slabs":[{"floor":1500,"label":"Aspire","rate":0.75},...],
     "excellence_floor":7500}

KEY FEATURES:
  - Validates structure against the declared kind
  - Builds band tables and grids sorted regardless of JSON order
  - Applies definitions over a default catalog, so a partial catalog
    (only some plans stored) still yields a complete rule set

USAGE:
  catalog := plans.DefaultCatalog()
  err := factory.Apply(catalog, jsonStr)

SEE ALSO:
  - plans/presets.go: builders for this schema
  - store/sqlite: persists definitions the factory parses
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
	"github.com/Gujterce/incentive-calculator/plans"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// Definition is the JSON representation of one plan's parameters.
type Definition struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Version int    `json:"version,omitempty"`

	// unit_slab and growth_slab
	Slabs []SlabJSON `json:"slabs,omitempty"`

	// unit_slab: product -> slab label -> per-unit rate
	ProductRates map[string]map[string]float64 `json:"product_rates,omitempty"`

	// group-based plans
	Breakpoints *BreakpointsJSON `json:"breakpoints,omitempty"`
	Grid        []GridRowJSON    `json:"grid,omitempty"`

	// flat_table
	Steps    map[string]int64 `json:"steps,omitempty"`
	MaxCount int              `json:"max_count,omitempty"`

	// manager
	Role           string  `json:"role,omitempty"`
	ThresholdPct   float64 `json:"threshold_pct,omitempty"`
	HighMultiplier float64 `json:"high_multiplier,omitempty"`

	// growth_slab
	ExcellenceFloor int64 `json:"excellence_floor,omitempty"`
}

// SlabJSON is one band row. Rate is used by growth_slab only; unit_slab
// rates vary by product and live in product_rates.
type SlabJSON struct {
	Floor float64 `json:"floor"`
	Label string  `json:"label"`
	Rate  float64 `json:"rate,omitempty"`
}

// BreakpointsJSON holds the PCPM group bounds.
type BreakpointsJSON struct {
	AUpper float64 `json:"a_upper"`
	BUpper float64 `json:"b_upper"`
	CUpper float64 `json:"c_upper"`
}

// GridRowJSON is one achievement band with per-group values.
type GridRowJSON struct {
	Floor float64            `json:"floor"`
	Rates map[string]float64 `json:"rates"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseDefinition decodes and validates a JSON plan definition.
func ParseDefinition(raw string) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal([]byte(raw), &def); err != nil {
		return nil, fmt.Errorf("%w: %v", incentive.ErrInvalidDefinition, err)
	}
	if def.ID == "" {
		return nil, &incentive.DefinitionError{PlanID: "", Detail: "missing id"}
	}
	id := incentive.PlanID(def.ID)

	switch incentive.PlanKind(def.Kind) {
	case incentive.KindUnitSlab:
		if len(def.Slabs) == 0 || len(def.ProductRates) == 0 {
			return nil, &incentive.DefinitionError{PlanID: id, Detail: "unit_slab requires slabs and product_rates"}
		}
	case incentive.KindSalaryMultiplier, incentive.KindSaleRate:
		if def.Breakpoints == nil || len(def.Grid) == 0 {
			return nil, &incentive.DefinitionError{PlanID: id, Detail: "grid plan requires breakpoints and grid"}
		}
	case incentive.KindFlatTable:
		if def.Breakpoints == nil || len(def.Steps) == 0 || def.MaxCount <= 0 {
			return nil, &incentive.DefinitionError{PlanID: id, Detail: "flat_table requires breakpoints, steps and max_count"}
		}
	case incentive.KindManager:
		if def.HighMultiplier <= 0 {
			return nil, &incentive.DefinitionError{PlanID: id, Detail: "manager requires a positive high_multiplier"}
		}
	case incentive.KindGrowthSlab:
		if len(def.Slabs) == 0 {
			return nil, &incentive.DefinitionError{PlanID: id, Detail: "growth_slab requires slabs"}
		}
	default:
		return nil, &incentive.DefinitionError{PlanID: id, Detail: fmt.Sprintf("unknown kind %q", def.Kind)}
	}
	return &def, nil
}

// =============================================================================
// RULE CONSTRUCTION
// =============================================================================

func (d *Definition) breakpoints() incentive.GroupBreakpoints {
	if d.Breakpoints == nil {
		return incentive.DefaultBreakpoints()
	}
	return incentive.GroupBreakpoints{
		AUpper: decimal.NewFromFloat(d.Breakpoints.AUpper),
		BUpper: decimal.NewFromFloat(d.Breakpoints.BUpper),
		CUpper: decimal.NewFromFloat(d.Breakpoints.CUpper),
	}
}

func (d *Definition) bandTable() incentive.BandTable {
	bands := make([]incentive.Band, 0, len(d.Slabs))
	for _, s := range d.Slabs {
		bands = append(bands, incentive.Band{
			Floor: decimal.NewFromFloat(s.Floor),
			Label: s.Label,
			Value: decimal.NewFromFloat(s.Rate),
		})
	}
	return incentive.NewBandTable(bands...)
}

func (d *Definition) rateGrid() (incentive.RateGrid, error) {
	rows := make([]incentive.GridRow, 0, len(d.Grid))
	for _, r := range d.Grid {
		byGroup := make(map[incentive.Group]decimal.Decimal, len(r.Rates))
		for g, v := range r.Rates {
			group := incentive.Group(g)
			if group != incentive.GroupA && group != incentive.GroupB &&
				group != incentive.GroupC && group != incentive.GroupD {
				return incentive.RateGrid{}, &incentive.DefinitionError{
					PlanID: incentive.PlanID(d.ID),
					Detail: fmt.Sprintf("unknown group %q in grid", g),
				}
			}
			byGroup[group] = decimal.NewFromFloat(v)
		}
		rows = append(rows, incentive.GridRow{Floor: decimal.NewFromFloat(r.Floor), ByGroup: byGroup})
	}
	return incentive.NewRateGrid(rows...), nil
}

func (d *Definition) flatTable() (incentive.FlatTable, error) {
	steps := make(map[incentive.Group]int64, len(d.Steps))
	for g, step := range d.Steps {
		group := incentive.Group(g)
		if group != incentive.GroupA && group != incentive.GroupB &&
			group != incentive.GroupC && group != incentive.GroupD {
			return incentive.FlatTable{}, &incentive.DefinitionError{
				PlanID: incentive.PlanID(d.ID),
				Detail: fmt.Sprintf("unknown group %q in steps", g),
			}
		}
		steps[group] = step
	}
	return incentive.ArithmeticFlatTable(steps, d.MaxCount), nil
}

// =============================================================================
// CATALOG ASSEMBLY
// =============================================================================

// Apply parses one JSON definition and installs it in the catalog.
func Apply(catalog *plans.Catalog, raw string) error {
	def, err := ParseDefinition(raw)
	if err != nil {
		return err
	}
	return applyDefinition(catalog, def)
}

func applyDefinition(catalog *plans.Catalog, def *Definition) error {
	id := incentive.PlanID(def.ID)
	switch id {
	case plans.PlanHyterce:
		rates := make(map[plans.Product]map[string]decimal.Decimal, len(def.ProductRates))
		for product, bySlab := range def.ProductRates {
			p := plans.Product(product)
			if !p.IsSelected() {
				return &incentive.DefinitionError{PlanID: id, Detail: fmt.Sprintf("unknown product %q", product)}
			}
			converted := make(map[string]decimal.Decimal, len(bySlab))
			for label, rate := range bySlab {
				converted[label] = decimal.NewFromFloat(rate)
			}
			rates[p] = converted
		}
		catalog.Hyterce = plans.HyterceRule{Slabs: def.bandTable(), Rates: rates}

	case plans.PlanMRAnnual:
		grid, err := def.rateGrid()
		if err != nil {
			return err
		}
		catalog.Annual = plans.AnnualRule{Breakpoints: def.breakpoints(), Multipliers: grid}

	case plans.PlanMRVolume:
		grid, err := def.rateGrid()
		if err != nil {
			return err
		}
		catalog.Volume = plans.VolumeRule{Breakpoints: def.breakpoints(), Rates: grid}

	case plans.PlanMRBrand, plans.PlanMRQuarterBrand:
		table, err := def.flatTable()
		if err != nil {
			return err
		}
		rule := plans.BrandRule{Breakpoints: def.breakpoints(), Table: table}
		if id == plans.PlanMRBrand {
			catalog.EminentBrand = rule
		} else {
			catalog.QuarterlyBrand = rule
		}

	case plans.PlanASM, plans.PlanRSMBM, plans.PlanZBM:
		rule := plans.ManagerRule{
			Role:           plans.Role(def.Role),
			ThresholdPct:   decimal.NewFromFloat(def.ThresholdPct),
			HighMultiplier: decimal.NewFromFloat(def.HighMultiplier),
		}
		switch id {
		case plans.PlanASM:
			catalog.ASM = rule
		case plans.PlanRSMBM:
			catalog.RSMBM = rule
		default:
			catalog.ZBM = rule
		}

	case plans.PlanResplash:
		rule := plans.ResplashRule{Slabs: def.bandTable(), ExcellenceFloor: def.ExcellenceFloor}
		if rule.ExcellenceFloor <= 0 {
			rule.ExcellenceFloor = plans.DefaultResplash().ExcellenceFloor
		}
		catalog.Resplash = rule

	default:
		return fmt.Errorf("%w: %s", incentive.ErrPlanNotFound, def.ID)
	}
	return nil
}

// BuildCatalog starts from the FY defaults and overlays every supplied
// definition. A partial set of definitions still yields a complete catalog.
func BuildCatalog(definitions []string) (*plans.Catalog, error) {
	catalog := plans.DefaultCatalog()
	for _, raw := range definitions {
		if err := Apply(catalog, raw); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}
