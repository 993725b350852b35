/*
handlers.go - HTTP API handlers for the incentive calculator

PURPOSE:
  Exposes the plan catalog and the nine evaluation operations via REST.
  Handles HTTP request/response, JSON serialization, and input range
  validation; the math itself is delegated to the plans package.

ENDPOINTS:
  GET  /api/health                   Liveness probe
  GET  /api/plans                    List all plans
  GET  /api/plans/{id}               Plan detail with terms
  GET  /api/plans/{id}/terms         Terms and conditions only
  POST /api/plans/{id}/evaluate      Evaluate one plan

REQUEST FLOW:
  1. Resolve the plan id
  2. Decode the plan-specific request body
  3. Validate documented input ranges (negative values, count maxima)
  4. Evaluate against the cached catalog
  5. Serialize the result record

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed body, values outside documented ranges
  - 404: Unknown plan id
  - 500: Catalog/store failures

  Note that incomplete input and disqualification are NOT errors: they
  come back 200 with the outcome field set, exactly as the calculators
  present them.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gujterce/incentive-calculator/factory"
	"github.com/Gujterce/incentive-calculator/incentive"
	"github.com/Gujterce/incentive-calculator/plans"
	"github.com/Gujterce/incentive-calculator/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store   *sqlite.Store
	Catalog *plans.Catalog

	// Stored definition versions for listings, keyed by plan id.
	versions map[incentive.PlanID]int
}

// NewHandler creates a handler serving the default FY catalog until
// LoadCatalog overlays the stored definitions.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:    store,
		Catalog:  plans.DefaultCatalog(),
		versions: make(map[incentive.PlanID]int),
	}
}

// LoadCatalog builds the catalog from the stored plan definitions.
func (h *Handler) LoadCatalog(ctx context.Context) error {
	records, err := h.Store.ListPlans(ctx)
	if err != nil {
		return err
	}

	definitions := make([]string, 0, len(records))
	versions := make(map[incentive.PlanID]int, len(records))
	for _, r := range records {
		definitions = append(definitions, r.ConfigJSON)
		versions[r.ID] = r.Version
	}

	catalog, err := factory.BuildCatalog(definitions)
	if err != nil {
		return err
	}
	h.Catalog = catalog
	h.versions = versions
	return nil
}

// =============================================================================
// PLAN LISTING HANDLERS
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPlans returns all plans in circular order.
// GET /api/plans
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	dtos := make([]PlanDTO, 0, len(plans.AllPlanIDs))
	for _, id := range plans.AllPlanIDs {
		info, _ := plans.InfoFor(id)
		dtos = append(dtos, PlanDTO{
			ID:      string(info.ID),
			Name:    info.Name,
			Kind:    string(info.Kind),
			Version: h.versions[id],
		})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetPlan returns one plan with its terms.
// GET /api/plans/{id}
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id := incentive.PlanID(chi.URLParam(r, "id"))
	info, ok := plans.InfoFor(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Plan not found", incentive.ErrPlanNotFound)
		return
	}
	writeJSON(w, http.StatusOK, PlanDetailDTO{
		PlanDTO: PlanDTO{
			ID:      string(info.ID),
			Name:    info.Name,
			Kind:    string(info.Kind),
			Version: h.versions[id],
		},
		Terms: plans.Terms(id),
	})
}

// GetTerms returns the terms and conditions for one plan.
// GET /api/plans/{id}/terms
func (h *Handler) GetTerms(w http.ResponseWriter, r *http.Request) {
	id := incentive.PlanID(chi.URLParam(r, "id"))
	if _, ok := plans.InfoFor(id); !ok {
		writeError(w, http.StatusNotFound, "Plan not found", incentive.ErrPlanNotFound)
		return
	}
	writeJSON(w, http.StatusOK, TermsDTO{PlanID: string(id), Terms: plans.Terms(id)})
}

// =============================================================================
// EVALUATE HANDLER
// =============================================================================

// Evaluate runs one plan's calculation.
// POST /api/plans/{id}/evaluate
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id := incentive.PlanID(chi.URLParam(r, "id"))

	var (
		dto ResultDTO
		err error
	)
	switch id {
	case plans.PlanHyterce:
		dto, err = h.evaluateHyterce(r)
	case plans.PlanMRAnnual:
		dto, err = h.evaluateAnnual(r)
	case plans.PlanMRVolume:
		dto, err = h.evaluateVolume(r)
	case plans.PlanMRBrand:
		dto, err = h.evaluateBrand(r, h.Catalog.EminentBrand)
	case plans.PlanMRQuarterBrand:
		dto, err = h.evaluateBrand(r, h.Catalog.QuarterlyBrand)
	case plans.PlanASM, plans.PlanRSMBM, plans.PlanZBM:
		rule, _ := h.Catalog.Manager(id)
		dto, err = h.evaluateManager(r, rule)
	case plans.PlanResplash:
		dto, err = h.evaluateResplash(r)
	default:
		writeError(w, http.StatusNotFound, "Plan not found", incentive.ErrPlanNotFound)
		return
	}

	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input", err)
		return
	}
	dto.PlanID = string(id)
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) evaluateHyterce(r *http.Request) (ResultDTO, error) {
	var req HyterceRequest
	if err := decode(r, &req); err != nil {
		return ResultDTO{}, err
	}
	if req.Months == 0 {
		req.Months = 3
	}
	if err := checkRange("months", float64(req.Months), 1, 3); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("total_units", float64(req.TotalUnits)); err != nil {
		return ResultDTO{}, err
	}
	if req.Product != "" && !plans.Product(req.Product).IsSelected() {
		return ResultDTO{}, fmt.Errorf("%w: unknown product %q", incentive.ErrInvalidInput, req.Product)
	}

	result := h.Catalog.Hyterce.Evaluate(plans.HyterceInput{
		Product:    plans.Product(req.Product),
		TotalUnits: req.TotalUnits,
		Months:     req.Months,
	})
	dto := toResultDTO(result.Result)
	if result.Outcome != incentive.OutcomeIncomplete {
		dto.PCPM = result.PCPM.Value.StringFixed(2)
	}
	return dto, nil
}

func (h *Handler) evaluateAnnual(r *http.Request) (ResultDTO, error) {
	var req AnnualRequest
	if err := decode(r, &req); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("pcpm", req.PCPM); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("achievement_pct", req.AchievementPct); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("monthly_salary", req.MonthlySalary); err != nil {
		return ResultDTO{}, err
	}

	result := h.Catalog.Annual.Evaluate(plans.AnnualInput{
		PCPM:           req.PCPM,
		AchievementPct: req.AchievementPct,
		MonthlySalary:  req.MonthlySalary,
	})
	return toResultDTO(result), nil
}

func (h *Handler) evaluateVolume(r *http.Request) (ResultDTO, error) {
	var req VolumeRequest
	if err := decode(r, &req); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("pcpm", req.PCPM); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("achievement_pct", req.AchievementPct); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("net_primary_sale", req.NetPrimarySale); err != nil {
		return ResultDTO{}, err
	}
	if req.Period != "" && !plans.Period(req.Period).IsSelected() {
		return ResultDTO{}, fmt.Errorf("%w: unknown period %q", incentive.ErrInvalidInput, req.Period)
	}

	result := h.Catalog.Volume.Evaluate(plans.VolumeInput{
		Period:         plans.Period(req.Period),
		PCPM:           req.PCPM,
		AchievementPct: req.AchievementPct,
		NetPrimarySale: req.NetPrimarySale,
	})
	return toResultDTO(result), nil
}

func (h *Handler) evaluateBrand(r *http.Request, rule plans.BrandRule) (ResultDTO, error) {
	var req BrandRequest
	if err := decode(r, &req); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("pcpm", req.PCPM); err != nil {
		return ResultDTO{}, err
	}
	if err := checkRange("count", float64(req.Count), 1, float64(rule.MaxCount())); err != nil {
		return ResultDTO{}, err
	}

	result := rule.Evaluate(plans.BrandInput{PCPM: req.PCPM, Count: req.Count})
	return toResultDTO(result), nil
}

func (h *Handler) evaluateManager(r *http.Request, rule plans.ManagerRule) (ResultDTO, error) {
	var req ManagerRequest
	if err := decode(r, &req); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("achievement_pct", req.AchievementPct); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("team_pool", req.TeamPool); err != nil {
		return ResultDTO{}, err
	}
	if req.TeamSize < 1 {
		return ResultDTO{}, fmt.Errorf("%w: team_size must be at least 1, got %d", incentive.ErrInvalidInput, req.TeamSize)
	}
	if err := checkRange("pct_earning", req.PctEarning, 0, 100); err != nil {
		return ResultDTO{}, err
	}

	result := rule.Evaluate(plans.ManagerInput{
		AchievementPct: req.AchievementPct,
		TeamPool:       req.TeamPool,
		TeamSize:       req.TeamSize,
		PctEarning:     req.PctEarning,
	})
	dto := toResultDTO(result.Result)
	dto.Role = string(result.Role)
	dto.Eligible = boolPtr(result.Eligible)
	if result.Eligible {
		dto.AverageIncentive = result.AverageIncentive.Rupees()
	}
	return dto, nil
}

func (h *Handler) evaluateResplash(r *http.Request) (ResultDTO, error) {
	var req ResplashRequest
	if err := decode(r, &req); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("base_units", float64(req.BaseUnits)); err != nil {
		return ResultDTO{}, err
	}
	if err := checkNonNegative("current_units", float64(req.CurrentUnits)); err != nil {
		return ResultDTO{}, err
	}

	result := h.Catalog.Resplash.Evaluate(plans.ResplashInput{
		BaseUnits:    req.BaseUnits,
		CurrentUnits: req.CurrentUnits,
	})
	dto := toResultDTO(result.Result)
	if result.Outcome != incentive.OutcomeIncomplete {
		dto.IncrementalUnits = int64Ptr(result.IncrementalUnits)
		dto.ExcellenceEligible = boolPtr(result.ExcellenceEligible)
	}
	return dto, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func toResultDTO(res incentive.Result) ResultDTO {
	dto := ResultDTO{
		Outcome: string(res.Outcome),
		Label:   res.Label,
		Amount:  res.Amount.Rupees(),
		Reason:  res.Reason,
	}
	if res.Group.IsSpecified() {
		dto.Group = string(res.Group)
	}
	if res.Outcome == incentive.OutcomeQualified {
		dto.Rate = res.Rate.String()
	}
	return dto
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", incentive.ErrInvalidInput, err)
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %g", incentive.ErrInvalidInput, field, v)
	}
	return nil
}

func checkRange(field string, v, lo, hi float64) error {
	if v < lo || v > hi {
		return &incentive.InputRangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	if errors.Is(err, incentive.ErrStoreFailed) {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}
