// Package recursive implements the depth-first upstream traversal of the
// longest-flow-path search: a sequential variant and a task-parallel
// variant bounded by a cutoff parameter T.
package recursive

import (
	"errors"

	"github.com/hydrotools/lfp/fdmatrix"
)

// Sentinel errors for recursive execution.
var (
	// ErrMatrixNil is returned when a nil *fdmatrix.Matrix is passed.
	ErrMatrixNil = errors.New("recursive: matrix is nil")

	// ErrOutletOutOfBounds is returned when the outlet lies outside the grid.
	ErrOutletOutOfBounds = errors.New("recursive: outlet out of bounds")
)

// Result is the outcome of a single-outlet recursive traversal: the source
// cell terminating the longest upstream path, and that path's length.
type Result struct {
	Source fdmatrix.CellLocation
	Length int
}

// Stats reports diagnostics for the task-parallel variant: how many cells
// were visited, the maximum recursion depth reached, and how many tasks
// were spawned under the cutoff.
type Stats struct {
	CellsVisited int
	MaxDepth     int
	TasksSpawned int
}
