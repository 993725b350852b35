/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract: scalars cross
  the wire as floats and counts, amounts come back as fixed two-decimal
  strings, and the domain's decimal types never leak.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - plans/types.go: The domain input records these map onto
*/
package api

// =============================================================================
// PLAN LISTING
// =============================================================================

// PlanDTO represents one plan in listings.
type PlanDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Version int    `json:"version"`
}

// PlanDetailDTO adds the terms list to the listing fields.
type PlanDetailDTO struct {
	PlanDTO
	Terms []string `json:"terms"`
}

// TermsDTO carries just the disclosure list.
type TermsDTO struct {
	PlanID string   `json:"plan_id"`
	Terms  []string `json:"terms"`
}

// =============================================================================
// EVALUATE REQUESTS - one per plan shape
// =============================================================================

// HyterceRequest feeds the Hyterce dual-opportunity plan.
type HyterceRequest struct {
	Product    string `json:"product"` // "syrup" or "drops"
	TotalUnits int64  `json:"total_units"`
	Months     int    `json:"months"` // 1-3; 0 defaults to 3
}

// AnnualRequest feeds the MR annual plan.
type AnnualRequest struct {
	PCPM           float64 `json:"pcpm"`
	AchievementPct float64 `json:"achievement_pct"`
	MonthlySalary  float64 `json:"monthly_salary"`
}

// VolumeRequest feeds the MR volume plan.
type VolumeRequest struct {
	Period         string  `json:"period"` // "quarter" or "annual"
	PCPM           float64 `json:"pcpm"`
	AchievementPct float64 `json:"achievement_pct"`
	NetPrimarySale float64 `json:"net_primary_sale"`
}

// BrandRequest feeds both brand plans.
type BrandRequest struct {
	PCPM  float64 `json:"pcpm"`
	Count int     `json:"count"`
}

// ManagerRequest feeds the ASM, RSM/BM and ZBM plans.
type ManagerRequest struct {
	AchievementPct float64 `json:"achievement_pct"`
	TeamPool       float64 `json:"team_pool"`
	TeamSize       int     `json:"team_size"`
	PctEarning     float64 `json:"pct_earning"`
}

// ResplashRequest feeds the Resplash Super-30 plan.
type ResplashRequest struct {
	BaseUnits    int64 `json:"base_units"`
	CurrentUnits int64 `json:"current_units"`
}

// =============================================================================
// EVALUATE RESPONSE
// =============================================================================

// ResultDTO is the evaluation response for every plan. Plan-specific
// extras are optional fields left empty by the other plans.
type ResultDTO struct {
	PlanID  string `json:"plan_id"`
	Outcome string `json:"outcome"` // incomplete | disqualified | qualified
	Group   string `json:"group,omitempty"`
	Label   string `json:"label,omitempty"`
	Rate    string `json:"rate,omitempty"`   // per-unit rate, %, or multiplier
	Amount  string `json:"amount"`           // fixed two decimals
	Reason  string `json:"reason,omitempty"` // prompt or disqualification detail

	// Hyterce
	PCPM string `json:"pcpm,omitempty"`

	// Managers
	Role             string `json:"role,omitempty"`
	Eligible         *bool  `json:"eligible,omitempty"`
	AverageIncentive string `json:"average_incentive,omitempty"`

	// Resplash
	IncrementalUnits   *int64 `json:"incremental_units,omitempty"`
	ExcellenceEligible *bool  `json:"excellence_eligible,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
