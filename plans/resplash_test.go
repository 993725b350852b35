package plans_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gujterce/incentive-calculator/incentive"
	"github.com/Gujterce/incentive-calculator/plans"
)

func TestResplash_AspireTier(t *testing.T) {
	// Base 1000, current 3200: growth of 2200 lands in Aspire at ₹0.75 per
	// incremental unit, 1650.00.
	rule := plans.DefaultResplash()
	res := rule.Evaluate(plans.ResplashInput{BaseUnits: 1000, CurrentUnits: 3200})

	require.Equal(t, incentive.OutcomeQualified, res.Outcome, res.Reason)
	assert.Equal(t, int64(2200), res.IncrementalUnits)
	assert.Equal(t, "Aspire", res.Label)
	assert.Equal(t, "1650.00", res.Amount.Rupees())
	assert.False(t, res.ExcellenceEligible)
}

func TestResplash_TierBoundaries(t *testing.T) {
	// Tier floors are inclusive. The rate applies to the whole incremental
	// count, not just the portion above the floor.
	rule := plans.DefaultResplash()
	cases := []struct {
		incremental int64
		label       string
		amount      string
	}{
		{1500, "Aspire", "1125.00"},
		{2999, "Aspire", "2249.25"},
		{3000, "Eminence", "3000.00"},
		{4500, "Pinnacle", "5625.00"},
		{6000, "Summit", "9000.00"},
		{9000, "Summit", "13500.00"},
	}
	for _, tc := range cases {
		res := rule.Evaluate(plans.ResplashInput{BaseUnits: 0, CurrentUnits: tc.incremental})
		require.Equal(t, incentive.OutcomeQualified, res.Outcome, "incremental %d", tc.incremental)
		assert.Equal(t, tc.label, res.Label, "incremental %d", tc.incremental)
		assert.Equal(t, tc.amount, res.Amount.Rupees(), "incremental %d", tc.incremental)
	}
}

func TestResplash_ExcellenceClubFloor(t *testing.T) {
	// 7500 incremental units flags Excellence Club eligibility. It is a flag
	// only, the payout stays on the Summit slab.
	rule := plans.DefaultResplash()

	under := rule.Evaluate(plans.ResplashInput{BaseUnits: 500, CurrentUnits: 7999})
	assert.False(t, under.ExcellenceEligible)

	at := rule.Evaluate(plans.ResplashInput{BaseUnits: 500, CurrentUnits: 8000})
	assert.True(t, at.ExcellenceEligible)
	assert.Equal(t, "Summit", at.Label)
}

func TestResplash_BelowFirstSlab(t *testing.T) {
	// Growth under 1500 units earns nothing but is still a verdict.
	rule := plans.DefaultResplash()
	res := rule.Evaluate(plans.ResplashInput{BaseUnits: 1000, CurrentUnits: 2000})

	require.Equal(t, incentive.OutcomeDisqualified, res.Outcome)
	assert.Equal(t, int64(1000), res.IncrementalUnits)
	assert.True(t, res.Amount.IsZero())
}

func TestResplash_DeclineClampsToZero(t *testing.T) {
	// Current below base means zero incremental units, never negative, and
	// the result is an incomplete prompt rather than a negative payout.
	rule := plans.DefaultResplash()
	res := rule.Evaluate(plans.ResplashInput{BaseUnits: 5000, CurrentUnits: 4000})

	assert.Equal(t, incentive.OutcomeIncomplete, res.Outcome)
	assert.Equal(t, int64(0), res.IncrementalUnits)
}
