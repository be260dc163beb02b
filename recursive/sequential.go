package recursive

import (
	"github.com/hydrotools/lfp/fdmatrix"
)

// Execute performs the sequential depth-first upstream traversal from
// outlet, returning the cell at the far end of the longest upstream path
// and that path's length. Ties are broken by the fixed
// upstream-enumeration order of fdmatrix.UpstreamNeighbors (first wins).
//
// Correctness depends on the flow graph being acyclic.
//
// Complexity: O(cells in the catchment) time, O(depth of catchment) stack.
func Execute(m *fdmatrix.Matrix, outlet fdmatrix.CellLocation) (Result, error) {
	if m == nil {
		return Result{}, ErrMatrixNil
	}
	if !m.InBounds(outlet.Row, outlet.Col) {
		return Result{}, ErrOutletOutOfBounds
	}

	length, source := traverse(m, outlet)
	return Result{Source: source, Length: length}, nil
}

// traverse recurses into each upstream neighbor of cell, returning
// (1+maxChildLength, childSource) for the best child, or (0, cell) if cell
// has no upstream neighbors. Ties are resolved by enumeration order: the
// first neighbor achieving the maximum length wins.
func traverse(m *fdmatrix.Matrix, cell fdmatrix.CellLocation) (int, fdmatrix.CellLocation) {
	ups := m.UpstreamNeighbors(cell.Row, cell.Col)
	if len(ups) == 0 {
		return 0, cell
	}

	bestLen := -1
	bestSource := cell
	for _, u := range ups {
		l, s := traverse(m, u)
		if l+1 > bestLen {
			bestLen = l + 1
			bestSource = s
		}
	}
	return bestLen, bestSource
}
