// Package topdown implements the breadth/priority-ordered traversal that
// walks outward from one or more outlets, visiting cells in order of
// increasing path length so each cell is processed only after its
// downstream neighbor.
//
// Three variants:
//   - MaxLength:     retains only the best record per cell, checking each
//     queued entry when it is dequeued and enqueueing every upstream
//     neighbor of a cell the entry claims; the reference implementation
//     for correctness.
//   - SingleUpdate:  retains only the current best per cell, re-enqueueing
//     only on improvement (sequential).
//   - SingleUpdateParallel: the same algorithm processed one length-level
//     at a time, all cells at a level updated concurrently, separated by a
//     barrier.
//
// Because the traversal moves strictly outward (upstream) from an outlet
// along an acyclic flow graph, the cell that ultimately holds the maximum
// recorded length in a catchment can never itself have an upstream
// neighbor — if it did, traversal would have continued past it to a longer
// record. That cell therefore doubles as its own path source, so per-cell
// records need only track a length and an owning outlet, not a separately
// propagated source coordinate.
package topdown

import (
	"errors"

	"github.com/hydrotools/lfp/fdmatrix"
)

// Sentinel errors for topdown execution.
var (
	// ErrMatrixNil is returned when a nil *fdmatrix.Matrix is passed.
	ErrMatrixNil = errors.New("topdown: matrix is nil")

	// ErrNoOutlets is returned when the outlet list is empty.
	ErrNoOutlets = errors.New("topdown: no outlets given")

	// ErrOutletOutOfBounds is returned when an outlet lies outside the grid.
	ErrOutletOutOfBounds = errors.New("topdown: outlet out of bounds")
)

// record is the per-cell best-known state: the longest length reached so
// far and which distinct outlet currently claims the cell.
type record struct {
	length int
	owner  int // index into the distinct-outlet slice
}

// Outcome is the result for a single outlet: its source cell and the
// longest upstream path length reached.
type Outcome struct {
	Source fdmatrix.CellLocation
	Length int
}

// cellLess reports whether a is lexicographically before b: smaller row
// first, then smaller column. Used as a deterministic coordinate tie-break
// whenever two candidates tie on length.
func cellLess(a, b fdmatrix.CellLocation) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// dedupeOutlets groups outlet indices by identical location, returning the
// distinct locations in first-seen order and, for each original index,
// which distinct-location index it maps to.
//
// Duplicate outlets (same cell, different indices) must be treated
// independently rather than contend against each other for ownership of
// shared cells. Since two outlets at the same cell necessarily share the
// same catchment and therefore the same answer, running the shared
// multi-outlet traversal once per distinct location and then broadcasting
// its Outcome to every original index sharing that location gives
// duplicates their own independent answer without spurious contention.
func dedupeOutlets(outlets []fdmatrix.CellLocation) (distinct []fdmatrix.CellLocation, indexOf []int) {
	seen := make(map[fdmatrix.CellLocation]int, len(outlets))
	indexOf = make([]int, len(outlets))
	for i, o := range outlets {
		if di, ok := seen[o]; ok {
			indexOf[i] = di
			continue
		}
		di := len(distinct)
		seen[o] = di
		distinct = append(distinct, o)
		indexOf[i] = di
	}
	return distinct, indexOf
}

// broadcast expands per-distinct-outlet outcomes back to the caller's
// original outlet slice via indexOf (see dedupeOutlets).
func broadcast(distinctOutcomes []Outcome, indexOf []int) []Outcome {
	out := make([]Outcome, len(indexOf))
	for i, di := range indexOf {
		out[i] = distinctOutcomes[di]
	}
	return out
}

// updateBest records (cell, length) as owner's catchment-wide maximum when
// length strictly exceeds the outcome already recorded for owner. Ties are
// therefore resolved by whichever candidate is offered first: in the
// sequential variants that is always the cell reached earliest in
// upstream-enumeration order, matching the documented sequential tie-break.
// Scanning the per-owner running maximum this way, instead of sweeping a
// map of every visited cell at the end, also keeps the result independent
// of Go's randomized map iteration order.
func updateBest(perOutlet []Outcome, owner int, cell fdmatrix.CellLocation, length int) {
	if length > perOutlet[owner].Length {
		perOutlet[owner] = Outcome{Source: cell, Length: length}
	}
}

// updateBestCoordTieBreak records (cell, length) as owner's catchment-wide
// maximum the way SingleUpdateParallel must: the greater length always
// wins, and an exact tie is broken by the lexicographically smaller source
// coordinate rather than by arrival order, since concurrent goroutines
// offer candidates within a level in no guaranteed order.
func updateBestCoordTieBreak(perOutlet []Outcome, owner int, cell fdmatrix.CellLocation, length int) {
	cur := perOutlet[owner]
	if length > cur.Length || (length == cur.Length && cellLess(cell, cur.Source)) {
		perOutlet[owner] = Outcome{Source: cell, Length: length}
	}
}

func validateOutlets(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation) error {
	if m == nil {
		return ErrMatrixNil
	}
	if len(outlets) == 0 {
		return ErrNoOutlets
	}
	for _, o := range outlets {
		if !m.InBounds(o.Row, o.Col) {
			return ErrOutletOutOfBounds
		}
	}
	return nil
}
