package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gujterce/incentive-calculator/api"
	"github.com/Gujterce/incentive-calculator/plans"
	"github.com/Gujterce/incentive-calculator/store/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	handler := api.NewHandler(store)
	require.NoError(t, handler.LoadCatalog(ctx))

	srv := httptest.NewServer(api.NewRouter(handler))
	t.Cleanup(srv.Close)
	return srv
}

func postEvaluate(t *testing.T, srv *httptest.Server, planID string, body any) (*http.Response, api.ResultDTO) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/plans/"+planID+"/evaluate", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var dto api.ResultDTO
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	}
	return resp, dto
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListPlans(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/plans")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dtos []api.PlanDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dtos))
	require.Len(t, dtos, len(plans.AllPlanIDs))

	assert.Equal(t, "hyterce", dtos[0].ID)
	for _, dto := range dtos {
		assert.Equal(t, 1, dto.Version, "plan %s", dto.ID)
		assert.NotEmpty(t, dto.Name, "plan %s", dto.ID)
		assert.NotEmpty(t, dto.Kind, "plan %s", dto.ID)
	}
}

func TestGetPlanWithTerms(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/plans/resplash")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dto api.PlanDetailDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	assert.Equal(t, "resplash", dto.ID)
	assert.NotEmpty(t, dto.Terms)
}

func TestGetPlan_UnknownIs404(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/plans/diwali_bonus", "/api/plans/diwali_bonus/terms"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestEvaluate_Hyterce(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "hyterce", map[string]any{
		"product": "syrup", "total_units": 2100, "months": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hyterce", dto.PlanID)
	assert.Equal(t, "qualified", dto.Outcome)
	assert.Equal(t, "700.00", dto.PCPM)
	assert.Equal(t, "Slab 3", dto.Label)
	assert.Equal(t, "8", dto.Rate)
	assert.Equal(t, "5600.00", dto.Amount)
}

func TestEvaluate_HyterceDefaultsMonths(t *testing.T) {
	// Omitting months assumes the full three-month window.
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "hyterce", map[string]any{
		"product": "drops", "total_units": 1950,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "650.00", dto.PCPM)
	assert.Equal(t, "5", dto.Rate)
}

func TestEvaluate_HyterceIncompleteWithoutProduct(t *testing.T) {
	// A missing selection is a 200 prompt, not a 400.
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "hyterce", map[string]any{"total_units": 2100})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "incomplete", dto.Outcome)
	assert.NotEmpty(t, dto.Reason)
	assert.Empty(t, dto.PCPM)
}

func TestEvaluate_Annual(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "mr_annual", map[string]any{
		"pcpm": 1.2, "achievement_pct": 112, "monthly_salary": 50000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "qualified", dto.Outcome)
	assert.Equal(t, "A", dto.Group)
	assert.Equal(t, "50000.00", dto.Amount)
}

func TestEvaluate_AnnualDisqualifiedBelow105(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "mr_annual", map[string]any{
		"pcpm": 1.2, "achievement_pct": 104, "monthly_salary": 50000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "disqualified", dto.Outcome)
	assert.Equal(t, "0.00", dto.Amount)
	assert.Empty(t, dto.Rate)
}

func TestEvaluate_Volume(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "mr_volume", map[string]any{
		"period": "quarter", "pcpm": 3.0, "achievement_pct": 101, "net_primary_sale": 1000000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "qualified", dto.Outcome)
	assert.Equal(t, "C", dto.Group)
	assert.Equal(t, "0.75", dto.Rate)
	assert.Equal(t, "7500.00", dto.Amount)
}

func TestEvaluate_Brands(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "mr_brand", map[string]any{"pcpm": 4.5, "count": 11})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "27500.00", dto.Amount)

	resp, dto = postEvaluate(t, srv, "mr_quarterly_brand", map[string]any{"pcpm": 3.0, "count": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "3000.00", dto.Amount)
}

func TestEvaluate_Manager(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "asm", map[string]any{
		"achievement_pct": 100, "team_pool": 300000, "team_size": 10, "pct_earning": 65,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "qualified", dto.Outcome)
	assert.Equal(t, "ASM", dto.Role)
	require.NotNil(t, dto.Eligible)
	assert.True(t, *dto.Eligible)
	assert.Equal(t, "30000.00", dto.AverageIncentive)
	assert.Equal(t, "45000.00", dto.Amount)
}

func TestEvaluate_ManagerIneligible(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "asm", map[string]any{
		"achievement_pct": 120, "team_pool": 300000, "team_size": 10, "pct_earning": 59,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "disqualified", dto.Outcome)
	require.NotNil(t, dto.Eligible)
	assert.False(t, *dto.Eligible)
	assert.Empty(t, dto.AverageIncentive)
}

func TestEvaluate_Resplash(t *testing.T) {
	srv := newTestServer(t)

	resp, dto := postEvaluate(t, srv, "resplash", map[string]any{
		"base_units": 1000, "current_units": 3200,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "qualified", dto.Outcome)
	assert.Equal(t, "Aspire", dto.Label)
	assert.Equal(t, "1650.00", dto.Amount)
	require.NotNil(t, dto.IncrementalUnits)
	assert.Equal(t, int64(2200), *dto.IncrementalUnits)
	require.NotNil(t, dto.ExcellenceEligible)
	assert.False(t, *dto.ExcellenceEligible)
}

func TestEvaluate_ValidationRejects(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name   string
		planID string
		body   map[string]any
	}{
		{"negative units", "hyterce", map[string]any{"product": "syrup", "total_units": -10}},
		{"months out of range", "hyterce", map[string]any{"product": "syrup", "total_units": 600, "months": 5}},
		{"unknown product", "hyterce", map[string]any{"product": "tablet", "total_units": 600}},
		{"negative salary", "mr_annual", map[string]any{"pcpm": 1, "achievement_pct": 110, "monthly_salary": -1}},
		{"unknown period", "mr_volume", map[string]any{"period": "decade", "pcpm": 1, "achievement_pct": 110, "net_primary_sale": 100}},
		{"count above maximum", "mr_brand", map[string]any{"pcpm": 1, "count": 12}},
		{"count above quarterly maximum", "mr_quarterly_brand", map[string]any{"pcpm": 1, "count": 5}},
		{"zero team size", "zbm", map[string]any{"achievement_pct": 100, "team_pool": 1000, "team_size": 0, "pct_earning": 50}},
		{"pct earning above 100", "rsm_bm", map[string]any{"achievement_pct": 100, "team_pool": 1000, "team_size": 5, "pct_earning": 101}},
		{"negative base units", "resplash", map[string]any{"base_units": -5, "current_units": 100}},
	}
	for _, tc := range cases {
		resp, _ := postEvaluate(t, srv, tc.planID, tc.body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.name)
	}
}

func TestEvaluate_UnknownPlanIs404(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := postEvaluate(t, srv, "diwali_bonus", map[string]any{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEvaluate_MalformedBodyIs400(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/plans/hyterce/evaluate", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var envelope api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Invalid input", envelope.Error)
}
