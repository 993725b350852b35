/*
manager.go - Manager incentives (ASM, RSM/BM, ZBM)

PURPOSE:
  One parameterized rule instantiated for three manager grades. A manager
  earns a multiple of the average incentive of their team, gated on the
  share of team members who individually earned one.

ROLE CONFIGS:
  ASM:    >= 60% of team earning, high multiplier 1.5
  RSM/BM: >= 50% of team earning, high multiplier 1.3
  ZBM:    >= 40% of team earning, high multiplier 1.2

MULTIPLIER (once eligible):
  Achievement >= 100:       high multiplier
  95 <= Achievement < 100:  1.0
  Achievement < 95:         0 (eligible but no payout)

  Payout = (team pool / team size) x multiplier. Team size is constrained
  to >= 1 at the boundary; a zero still yields an incomplete outcome
  rather than a division failure.

SEE ALSO:
  - types.go: Role and ManagerInput/ManagerResult
  - presets.go: JSON form of the role configs
*/
package plans

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gujterce/incentive-calculator/incentive"
)

// =============================================================================
// MANAGER RULE - one rule, three role configs
// =============================================================================

// ManagerRule holds one grade's eligibility threshold and multipliers.
type ManagerRule struct {
	Role           Role
	ThresholdPct   decimal.Decimal // minimum % of team earning incentives
	HighMultiplier decimal.Decimal // applied at achievement >= 100
}

// DefaultManager returns the FY 2025-26 config for a manager grade.
func DefaultManager(role Role) ManagerRule {
	d := incentive.MustParseDecimal
	switch role {
	case RoleRSMBM:
		return ManagerRule{Role: role, ThresholdPct: d("50"), HighMultiplier: d("1.3")}
	case RoleZBM:
		return ManagerRule{Role: role, ThresholdPct: d("40"), HighMultiplier: d("1.2")}
	default:
		return ManagerRule{Role: RoleASM, ThresholdPct: d("60"), HighMultiplier: d("1.5")}
	}
}

// Evaluate computes the manager incentive.
func (r ManagerRule) Evaluate(in ManagerInput) ManagerResult {
	zero := incentive.Amount{Value: decimal.Zero, Unit: incentive.UnitRupees}

	if in.TeamSize <= 0 {
		return ManagerResult{
			Result:           incentive.Incomplete("enter the team size to calculate the incentive"),
			Role:             r.Role,
			AverageIncentive: zero,
		}
	}

	pctEarning := decimal.NewFromFloat(in.PctEarning)
	if pctEarning.LessThan(r.ThresholdPct) {
		return ManagerResult{
			Result: incentive.Disqualified(incentive.GroupUnspecified,
				fmt.Sprintf("at least %s%% of the team must earn incentives", r.ThresholdPct.String())),
			Role:             r.Role,
			Eligible:         false,
			AverageIncentive: zero,
		}
	}

	average := incentive.Amount{
		Value: decimal.NewFromFloat(in.TeamPool).Div(decimal.NewFromInt(int64(in.TeamSize))),
		Unit:  incentive.UnitRupees,
	}

	achievement := decimal.NewFromFloat(in.AchievementPct)
	var multiplier decimal.Decimal
	switch {
	case achievement.GreaterThanOrEqual(decimal.NewFromInt(100)):
		multiplier = r.HighMultiplier
	case achievement.GreaterThanOrEqual(decimal.NewFromInt(95)):
		multiplier = decimal.NewFromInt(1)
	default:
		// Eligible but below the achievement floor: no payout.
		return ManagerResult{
			Result: incentive.Disqualified(incentive.GroupUnspecified,
				"achievement below 95% does not earn a multiplier"),
			Role:             r.Role,
			Eligible:         true,
			AverageIncentive: average,
		}
	}

	amount := average.Mul(multiplier)
	return ManagerResult{
		Result:           incentive.Qualified(incentive.GroupUnspecified, string(r.Role), multiplier, amount),
		Role:             r.Role,
		Eligible:         true,
		AverageIncentive: average,
	}
}
