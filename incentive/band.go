/*
band.go - Ordered band tables, rate grids, and flat lookup tables

PURPOSE:
  Every plan in the circulars is some arrangement of three table shapes:

  BandTable:
    Ordered (floor, label, value) rows scanned from the highest floor down.
    Used for PCPM slabs (Hyterce) and incremental-unit slabs (Resplash).
    The first row whose floor the input meets wins; below every floor means
    no band (no incentive).

  RateGrid:
    Achievement bands crossed with productivity groups. Each row is a
    floor plus one value per group. Used for the MR annual multiplier
    table and the MR volume rate table.

  FlatTable:
    Per-group arrays of flat rupee amounts indexed by a count. Used for
    the Eminent-11 and quarterly brand plans. Indexing always clamps to
    the valid range so a count beyond the table can never panic.

  Expressing the nested if/else ladders of the circulars as data keeps
  boundary values testable in one place and lets the factory load a new
  fiscal year's tables from JSON without code changes.

INVARIANTS:
  - Band and grid rows are kept sorted by descending floor; constructors
    sort so callers may list rows in circular order.
  - Lookup never fails: below all floors returns the zero value, an
    unspecified group returns the zero value, counts are clamped.

SEE ALSO:
  - classify.go: Group used as the RateGrid column key
  - plans: concrete tables for each plan
*/
package incentive

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// BAND TABLE - (floor, label, value) rows, descending-threshold scan
// =============================================================================

// Band is one slab: inputs at or above Floor (and below the next band's
// floor) fall into it.
type Band struct {
	Floor decimal.Decimal
	Label string
	Value decimal.Decimal // per-unit rate for this band
}

// BandTable is an ordered set of bands.
type BandTable struct {
	bands []Band // sorted by descending floor
}

// NewBandTable builds a table from bands in any order.
func NewBandTable(bands ...Band) BandTable {
	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Floor.GreaterThan(sorted[j].Floor)
	})
	return BandTable{bands: sorted}
}

// Lookup returns the band containing v, scanning floors from high to low.
// Returns false when v is below every floor.
func (t BandTable) Lookup(v decimal.Decimal) (Band, bool) {
	for _, b := range t.bands {
		if v.GreaterThanOrEqual(b.Floor) {
			return b, true
		}
	}
	return Band{}, false
}

// Bands returns the rows in descending-floor order.
func (t BandTable) Bands() []Band { return t.bands }

// =============================================================================
// RATE GRID - achievement band x productivity group
// =============================================================================

// GridRow is one achievement band: a floor plus one value per group.
type GridRow struct {
	Floor   decimal.Decimal
	ByGroup map[Group]decimal.Decimal
}

// RateGrid maps (achievement, group) to a rate or multiplier.
type RateGrid struct {
	rows []GridRow // sorted by descending floor
}

// NewRateGrid builds a grid from rows in any order.
func NewRateGrid(rows ...GridRow) RateGrid {
	sorted := make([]GridRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Floor.GreaterThan(sorted[j].Floor)
	})
	return RateGrid{rows: sorted}
}

// Lookup returns the value for the first band whose floor the achievement
// meets. Returns false when achievement is below every floor or the group
// is unspecified (both mean no qualification, not an error).
func (g RateGrid) Lookup(achievement decimal.Decimal, group Group) (decimal.Decimal, bool) {
	if !group.IsSpecified() {
		return decimal.Zero, false
	}
	for _, row := range g.rows {
		if achievement.GreaterThanOrEqual(row.Floor) {
			v, ok := row.ByGroup[group]
			return v, ok
		}
	}
	return decimal.Zero, false
}

// Rows returns the rows in descending-floor order.
func (g RateGrid) Rows() []GridRow { return g.rows }

// =============================================================================
// FLAT TABLE - per-group flat amounts indexed by count
// =============================================================================

// FlatTable holds per-group arrays of flat rupee amounts. Index 0 is
// always zero; index i is the payout for a count of i.
type FlatTable struct {
	byGroup map[Group][]int64
}

// NewFlatTable builds a table from per-group amount arrays. All arrays
// should be the same length with amounts[0] == 0.
func NewFlatTable(byGroup map[Group][]int64) FlatTable {
	copied := make(map[Group][]int64, len(byGroup))
	for g, amounts := range byGroup {
		row := make([]int64, len(amounts))
		copy(row, amounts)
		copied[g] = row
	}
	return FlatTable{byGroup: copied}
}

// ArithmeticFlatTable builds per-group arrays as arithmetic progressions:
// index i pays i*step for that group. This is how the circulars publish
// the brand incentive tables.
func ArithmeticFlatTable(steps map[Group]int64, maxCount int) FlatTable {
	byGroup := make(map[Group][]int64, len(steps))
	for g, step := range steps {
		row := make([]int64, maxCount+1)
		for i := 1; i <= maxCount; i++ {
			row[i] = int64(i) * step
		}
		byGroup[g] = row
	}
	return FlatTable{byGroup: byGroup}
}

// MaxCount returns the highest valid count (array length minus one).
func (t FlatTable) MaxCount() int {
	for _, row := range t.byGroup {
		return len(row) - 1
	}
	return 0
}

// Lookup returns the flat amount for (group, count). The count is clamped
// into the table's valid range; an unspecified or unknown group yields
// zero. Never indexes out of bounds.
func (t FlatTable) Lookup(group Group, count int) Amount {
	row, ok := t.byGroup[group]
	if !ok || len(row) == 0 {
		return Amount{Value: decimal.Zero, Unit: UnitRupees}
	}
	idx := ClampInt(count, 0, len(row)-1)
	return Amount{Value: decimal.NewFromInt(row[idx]), Unit: UnitRupees}
}

// Amounts returns the array for one group, nil if absent.
func (t FlatTable) Amounts(group Group) []int64 { return t.byGroup[group] }

// ClampInt bounds v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
