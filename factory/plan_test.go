package factory_test

import (
	"errors"
	"testing"

	"github.com/Gujterce/incentive-calculator/factory"
	"github.com/Gujterce/incentive-calculator/incentive"
	"github.com/Gujterce/incentive-calculator/plans"
)

func TestPresetsRoundTrip(t *testing.T) {
	// GIVEN: The preset JSON for every plan
	// WHEN: Building a catalog from all nine definitions
	// THEN: The parsed rules evaluate identically to the compiled defaults

	defs := make([]string, 0, len(plans.AllPlanIDs))
	for _, id := range plans.AllPlanIDs {
		defs = append(defs, plans.DefaultDefinitionJSON(id))
	}

	catalog, err := factory.BuildCatalog(defs)
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	want := plans.DefaultCatalog()

	h := catalog.Hyterce.Evaluate(plans.HyterceInput{Product: plans.ProductSyrup, TotalUnits: 2100, Months: 3})
	hw := want.Hyterce.Evaluate(plans.HyterceInput{Product: plans.ProductSyrup, TotalUnits: 2100, Months: 3})
	if h.Amount.Rupees() != hw.Amount.Rupees() || h.Label != hw.Label {
		t.Errorf("hyterce: parsed (%s, %s) != default (%s, %s)", h.Label, h.Amount.Rupees(), hw.Label, hw.Amount.Rupees())
	}

	a := catalog.Annual.Evaluate(plans.AnnualInput{PCPM: 1.2, AchievementPct: 112, MonthlySalary: 50000})
	if a.Amount.Rupees() != "50000.00" {
		t.Errorf("annual from preset: amount = %s, want 50000.00", a.Amount.Rupees())
	}

	v := catalog.Volume.Evaluate(plans.VolumeInput{Period: plans.PeriodQuarter, PCPM: 3.0, AchievementPct: 101, NetPrimarySale: 1000000})
	if v.Amount.Rupees() != "7500.00" {
		t.Errorf("volume from preset: amount = %s, want 7500.00", v.Amount.Rupees())
	}

	b := catalog.EminentBrand.Evaluate(plans.BrandInput{PCPM: 4.5, Count: 11})
	if b.Amount.Rupees() != "27500.00" {
		t.Errorf("eminent brand from preset: amount = %s, want 27500.00", b.Amount.Rupees())
	}

	m := catalog.ASM.Evaluate(plans.ManagerInput{AchievementPct: 100, TeamPool: 300000, TeamSize: 10, PctEarning: 65})
	if m.Amount.Rupees() != "45000.00" {
		t.Errorf("asm from preset: amount = %s, want 45000.00", m.Amount.Rupees())
	}

	r := catalog.Resplash.Evaluate(plans.ResplashInput{BaseUnits: 1000, CurrentUnits: 3200})
	if r.Amount.Rupees() != "1650.00" || r.Label != "Aspire" {
		t.Errorf("resplash from preset: got (%s, %s), want (Aspire, 1650.00)", r.Label, r.Amount.Rupees())
	}
}

func TestParseDefinition_Validation(t *testing.T) {
	// GIVEN: Structurally broken definitions
	// WHEN: Parsing
	// THEN: Each fails with a definition error, never a panic

	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"id":`},
		{"missing id", `{"kind":"manager","high_multiplier":1.5}`},
		{"unknown kind", `{"id":"hyterce","kind":"lottery"}`},
		{"unit_slab without rates", `{"id":"hyterce","kind":"unit_slab","slabs":[{"floor":200,"label":"Slab 1"}]}`},
		{"grid without breakpoints", `{"id":"mr_annual","kind":"salary_multiplier","grid":[{"floor":110,"rates":{"A":1}}]}`},
		{"flat_table without max_count", `{"id":"mr_brand","kind":"flat_table","breakpoints":{"a_upper":1.5,"b_upper":2.5,"c_upper":4},"steps":{"A":1000}}`},
		{"manager without multiplier", `{"id":"asm","kind":"manager","role":"ASM","threshold_pct":60}`},
		{"growth_slab without slabs", `{"id":"resplash","kind":"growth_slab"}`},
	}
	for _, tc := range cases {
		if _, err := factory.ParseDefinition(tc.raw); !errors.Is(err, incentive.ErrInvalidDefinition) {
			t.Errorf("%s: err = %v, want ErrInvalidDefinition", tc.name, err)
		}
	}
}

func TestApply_RejectsUnknownGroupAndProduct(t *testing.T) {
	// GIVEN: Definitions naming a group or product outside the scheme
	// WHEN: Applying over a default catalog
	// THEN: The apply fails and the catalog keeps its previous rule

	catalog := plans.DefaultCatalog()

	badGrid := `{"id":"mr_annual","kind":"salary_multiplier",
		"breakpoints":{"a_upper":1.5,"b_upper":2.5,"c_upper":4},
		"grid":[{"floor":110,"rates":{"E":2}}]}`
	if err := factory.Apply(catalog, badGrid); !errors.Is(err, incentive.ErrInvalidDefinition) {
		t.Errorf("unknown group: err = %v, want ErrInvalidDefinition", err)
	}

	badProduct := `{"id":"hyterce","kind":"unit_slab",
		"slabs":[{"floor":200,"label":"Slab 1"}],
		"product_rates":{"tablet":{"Slab 1":4}}}`
	if err := factory.Apply(catalog, badProduct); !errors.Is(err, incentive.ErrInvalidDefinition) {
		t.Errorf("unknown product: err = %v, want ErrInvalidDefinition", err)
	}

	res := catalog.Annual.Evaluate(plans.AnnualInput{PCPM: 1.2, AchievementPct: 112, MonthlySalary: 50000})
	if res.Amount.Rupees() != "50000.00" {
		t.Errorf("catalog mutated by failed apply: amount = %s", res.Amount.Rupees())
	}
}

func TestApply_OverridesParameters(t *testing.T) {
	// GIVEN: A revised manager definition with a higher multiplier
	// WHEN: Applying it
	// THEN: Evaluation uses the revised parameters

	catalog := plans.DefaultCatalog()
	revised := `{"id":"asm","kind":"manager","role":"ASM","threshold_pct":55,"high_multiplier":2}`
	if err := factory.Apply(catalog, revised); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	res := catalog.ASM.Evaluate(plans.ManagerInput{AchievementPct: 100, TeamPool: 300000, TeamSize: 10, PctEarning: 56})
	if res.Outcome != incentive.OutcomeQualified {
		t.Fatalf("outcome = %v, want qualified (%s)", res.Outcome, res.Reason)
	}
	if res.Amount.Rupees() != "60000.00" {
		t.Errorf("amount = %s, want 60000.00", res.Amount.Rupees())
	}
}

func TestBuildCatalog_PartialDefinitionsKeepDefaults(t *testing.T) {
	// GIVEN: Only the resplash definition
	// WHEN: Building a catalog
	// THEN: Every other plan still carries its compiled default

	raw := plans.DefaultDefinitionJSON(plans.PlanResplash)
	catalog, err := factory.BuildCatalog([]string{raw})
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	h := catalog.Hyterce.Evaluate(plans.HyterceInput{Product: plans.ProductDrops, TotalUnits: 1950, Months: 3})
	if h.Rate.String() != "5" {
		t.Errorf("hyterce default missing after partial build: rate = %s", h.Rate)
	}
}
