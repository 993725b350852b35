/*
terms.go - Terms and conditions reference table

PURPOSE:
  Static per-plan disclosure lists summarizing the key conditions of each
  circular: eligibility windows, secondary-sales requirements, coverage
  thresholds, and disqualifiers. Read-only reference data, returned
  verbatim to the presentation layer alongside every plan.

  These conditions are enforced by the company's claim process, not by
  the calculators; they are surfaced so a representative sees the full
  qualification picture next to the computed amount.
*/
package plans

import (
	"github.com/Gujterce/incentive-calculator/incentive"
)

// terms maps plan id to its ordered disclosure list.
var terms = map[incentive.PlanID][]string{
	PlanHyterce: {
		"Plan effective Jun-Aug 2025; only Medical Representatives are eligible.",
		"Incentive based on primary PCPM units; separate slabs for Syrup and Drops.",
		"Secondary sales Jun-Sep must be at least 90% of Jun-Aug primary; Sep primary at least 70% of PCPM; returns within 6 months reduce the incentive.",
	},
	PlanMRAnnual: {
		"PCPM uses FY 2025-26 net primary sale after expiry deduction.",
		"Gross salary as on 31-Dec-2025 is considered for the multiplier.",
		"Doctor coverage must remain above 90% for two-thirds of the tenure; decimals like 104.96% do not qualify.",
	},
	PlanMRVolume: {
		"HQ unit growth must exceed 4% and value growth 7% to qualify.",
		"Eminent 11 brand achievement must exceed 85% for quarterly and annual incentives.",
		"To claim quarterly incentives, at least 85% of target must be achieved in the following month; the 4th quarter requires Apr-26 sales at least 85% of the FY 2025-26 average.",
	},
	PlanMRBrand: {
		"Based on annual achievement of Eminent 11 brand groups.",
		"Brand group count depends on product families with 100% target achievement.",
		"Degrowth versus FY 2024-25 disqualifies the incentive; free goods are excluded.",
	},
	PlanMRQuarterBrand: {
		"Applies only to the Acolate, Tynol, Vitfol and DFS brands.",
		"Brand group PCPM must exceed 10,000 units irrespective of percentage achievement.",
		"Brand growth should exceed 7% value and 4% unit; HQ achievement must exceed 95%; subsequent month achievement at least 75% of the quarter average.",
	},
	PlanASM: {
		"Manager incentive derived from MR incentives; at least 60% of MRs must earn incentives.",
		"Achievement of 95-99.99% yields 1x the average MR incentive; 100% and above yields 1.5x.",
		"Secondary sales should be at least 90% of net primary sales; team doctor coverage at least 85%.",
	},
	PlanRSMBM: {
		"Manager incentive derived from MR incentives; at least 50% of MRs must earn incentives.",
		"Achievement of 95-99.99% yields 1x the average MR incentive; 100% and above yields 1.3x.",
		"Secondary sales should be at least 90% of net primary sales; other general conditions apply.",
	},
	PlanZBM: {
		"Manager incentive derived from MR incentives; at least 40% of MRs must earn incentives.",
		"Achievement of 95-99.99% yields 1x the average MR incentive; 100% and above yields 1.2x.",
		"Secondary sales should be at least 90% of net primary sales; other general conditions apply.",
	},
	PlanResplash: {
		"Plan effective 01 Mar 2025 to 30 Jun 2025; incremental units only.",
		"Minimum 1,500 incremental units required for the precision incentive; 7,500 for excellence (top 3 achievers).",
		"Secondary sales (Mar-Jun 25) must be at least 85% of primary; July sales at least 70% of the Mar-Jun average; the HQ must achieve at least 95% of target.",
	},
}

// Terms returns the ordered disclosure list for a plan, nil for unknown ids.
// Callers must not mutate the returned slice.
func Terms(id incentive.PlanID) []string {
	return terms[id]
}
