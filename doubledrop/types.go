// Package doubledrop implements the two-phase longest-path algorithm: first
// count each cell's indegree (its number of upstream neighbors) within the
// outlet's catchment, then propagate lengths downstream strictly in
// topological order as each cell's indegree reaches zero. Unlike the
// recursive and topdown families, this walks the catchment exactly once per
// cell regardless of how many tributaries converge on it.
//
// Only single-outlet mode is supported: the phase-one catchment discovery
// and indegree bookkeeping are defined relative to one outlet's upstream
// tree.
package doubledrop

import (
	"errors"

	"github.com/hydrotools/lfp/fdmatrix"
)

// Sentinel errors for doubledrop execution.
var (
	// ErrMatrixNil is returned when a nil *fdmatrix.Matrix is passed.
	ErrMatrixNil = errors.New("doubledrop: matrix is nil")

	// ErrOutletOutOfBounds is returned when the outlet lies outside the grid.
	ErrOutletOutOfBounds = errors.New("doubledrop: outlet out of bounds")
)

// Result is the outcome of a double-drop traversal: the source cell
// terminating the longest upstream path, and that path's length.
type Result struct {
	Source fdmatrix.CellLocation
	Length int
}

// Stats reports diagnostics for the parallel variant: catchment size and
// the number of waves (topological levels) it took to drain the queue.
type Stats struct {
	CellsVisited int
	Waves        int
}

// finished holds a cell's settled (length, source) once its indegree has
// reached zero and its own record has been computed.
type finished struct {
	length int
	source fdmatrix.CellLocation
}

// catchmentAndIndegree walks upstream from outlet once, collecting every
// cell in its catchment together with the number of upstream neighbors
// each one has (its indegree in the phase-one sense).
func catchmentAndIndegree(m *fdmatrix.Matrix, outlet fdmatrix.CellLocation) (cells []fdmatrix.CellLocation, indegree map[fdmatrix.CellLocation]int) {
	indegree = make(map[fdmatrix.CellLocation]int)
	visited := map[fdmatrix.CellLocation]bool{outlet: true}
	queue := []fdmatrix.CellLocation{outlet}
	cells = append(cells, outlet)

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		ups := m.UpstreamNeighbors(cur.Row, cur.Col)
		indegree[cur] = len(ups)
		for _, u := range ups {
			if !visited[u] {
				visited[u] = true
				queue = append(queue, u)
				cells = append(cells, u)
			}
		}
	}
	return cells, indegree
}

func validate(m *fdmatrix.Matrix, outlet fdmatrix.CellLocation) error {
	if m == nil {
		return ErrMatrixNil
	}
	if !m.InBounds(outlet.Row, outlet.Col) {
		return ErrOutletOutOfBounds
	}
	return nil
}
