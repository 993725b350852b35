/*
errors.go - Centralized error types for the catalog and transport layers

PURPOSE:
  Rule evaluation itself never fails: incomplete input and disqualification
  are outcomes, not errors (see types.go). The errors here belong to the
  layers around the core - loading plan definitions, validating transport
  input, and persistence.

USAGE:
  if errors.Is(err, incentive.ErrPlanNotFound) {
      // 404
  }

SEE ALSO:
  - factory: wraps ErrInvalidDefinition with parse context
  - store/sqlite: wraps ErrPlanNotFound / ErrStoreFailed
*/
package incentive

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrPlanNotFound is returned when a referenced plan id doesn't exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidDefinition is returned when a JSON plan definition is
	// malformed or inconsistent with its declared kind.
	ErrInvalidDefinition = errors.New("invalid plan definition")

	// ErrInvalidInput is returned by transport-level validation when a
	// caller supplies values outside the documented ranges.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreFailed is returned when the plan catalog cannot be read
	// from or written to the database.
	ErrStoreFailed = errors.New("plan store failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InputRangeError reports a field outside its documented range.
type InputRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InputRangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

func (e *InputRangeError) Unwrap() error { return ErrInvalidInput }

// DefinitionError reports which plan definition failed to parse and why.
type DefinitionError struct {
	PlanID PlanID
	Detail string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("plan %q: %s", e.PlanID, e.Detail)
}

func (e *DefinitionError) Unwrap() error { return ErrInvalidDefinition }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDefinition)
}

// IsNotFound returns true if the error indicates a missing plan.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPlanNotFound)
}
