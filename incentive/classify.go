/*
classify.go - PCPM productivity group classification

PURPOSE:
  Maps a representative's PCPM (per capita per month net primary sale, in
  lakhs) to one of four ordinal productivity groups. Five of the nine
  incentive plans key their rate tables and flat amounts on this group.

BREAKPOINTS (FY 2025-26 circulars, half-open on the upper end):
  [0, 1.5)   Group A
  [1.5, 2.5) Group B
  [2.5, 4.0) Group C
  [4.0, ∞)   Group D

A PCPM of exactly 1.5 is Group B, not A. Zero or unset PCPM yields
GroupUnspecified: the caller has not provided enough input to classify,
which surfaces as an incomplete evaluation rather than an error.

SEE ALSO:
  - band.go: RateGrid and FlatTable, both keyed by Group
*/
package incentive

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// GROUP - Ordinal productivity classification
// =============================================================================

type Group string

const (
	GroupUnspecified Group = ""
	GroupA           Group = "A"
	GroupB           Group = "B"
	GroupC           Group = "C"
	GroupD           Group = "D"
)

// Groups lists the defined groups in ascending productivity order.
var Groups = []Group{GroupA, GroupB, GroupC, GroupD}

func (g Group) IsSpecified() bool { return g != GroupUnspecified }

// String renders the circular's display form, e.g. "Group C".
func (g Group) String() string {
	if !g.IsSpecified() {
		return "Unspecified"
	}
	return "Group " + string(g)
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// GroupBreakpoints holds the ascending upper bounds for groups A, B and C.
// Anything at or above the last bound is Group D.
type GroupBreakpoints struct {
	AUpper decimal.Decimal // exclusive upper bound for Group A
	BUpper decimal.Decimal // exclusive upper bound for Group B
	CUpper decimal.Decimal // exclusive upper bound for Group C
}

// DefaultBreakpoints returns the FY 2025-26 breakpoints: 1.5 / 2.5 / 4.0.
func DefaultBreakpoints() GroupBreakpoints {
	return GroupBreakpoints{
		AUpper: MustParseDecimal("1.5"),
		BUpper: MustParseDecimal("2.5"),
		CUpper: MustParseDecimal("4.0"),
	}
}

// Classify maps a PCPM to its productivity group. PCPM must be positive;
// zero or negative yields GroupUnspecified.
func (b GroupBreakpoints) Classify(pcpm decimal.Decimal) Group {
	if !pcpm.IsPositive() {
		return GroupUnspecified
	}
	switch {
	case pcpm.LessThan(b.AUpper):
		return GroupA
	case pcpm.LessThan(b.BUpper):
		return GroupB
	case pcpm.LessThan(b.CUpper):
		return GroupC
	default:
		return GroupD
	}
}

// ClassifyPCPM classifies against the default FY 2025-26 breakpoints.
func ClassifyPCPM(pcpm decimal.Decimal) Group {
	return DefaultBreakpoints().Classify(pcpm)
}
