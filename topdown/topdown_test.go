package topdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hydrotools/lfp/fdmatrix"
)

func yJunction(t *testing.T) *fdmatrix.Matrix {
	m, err := fdmatrix.New([][]fdmatrix.Code{
		{fdmatrix.CodeNone, fdmatrix.CodeSouth, fdmatrix.CodeNone},
		{fdmatrix.CodeEast, fdmatrix.CodeSouth, fdmatrix.CodeWest},
		{fdmatrix.CodeNone, fdmatrix.CodeNone, fdmatrix.CodeNone},
	})
	require.NoError(t, err)
	return m
}

// twoOutletOverlap has two adjacent outlets where (0,2) drains West into
// (0,1), so the second outlet lies inside the first outlet's catchment.
//
//	0  4  16
//	1  4   0
//	0  0   0
func twoOutletOverlap(t *testing.T) *fdmatrix.Matrix {
	m, err := fdmatrix.New([][]fdmatrix.Code{
		{fdmatrix.CodeNone, fdmatrix.CodeSouth, fdmatrix.CodeWest},
		{fdmatrix.CodeEast, fdmatrix.CodeSouth, fdmatrix.CodeNone},
		{fdmatrix.CodeNone, fdmatrix.CodeNone, fdmatrix.CodeNone},
	})
	require.NoError(t, err)
	return m
}

func allVariants() map[string]func(*fdmatrix.Matrix, []fdmatrix.CellLocation) ([]Outcome, error) {
	return map[string]func(*fdmatrix.Matrix, []fdmatrix.CellLocation) ([]Outcome, error){
		"MaxLength":            MaxLength,
		"SingleUpdate":         SingleUpdate,
		"SingleUpdateParallel": SingleUpdateParallel,
	}
}

func TestVariants_YJunctionAgree(t *testing.T) {
	m := yJunction(t)
	outlets := []fdmatrix.CellLocation{{Row: 2, Col: 1}}
	// All variants agree on length 2. (1,0), (0,1) and (1,2) tie for the
	// source: the sequential variants keep the first in enumeration order,
	// the parallel variant keeps the lexicographically smallest coordinate.
	wantSource := map[string]fdmatrix.CellLocation{
		"MaxLength":            {Row: 1, Col: 0},
		"SingleUpdate":         {Row: 1, Col: 0},
		"SingleUpdateParallel": {Row: 0, Col: 1},
	}
	for name, fn := range allVariants() {
		out, err := fn(m, outlets)
		require.NoError(t, err, name)
		require.Len(t, out, 1, name)
		require.Equal(t, wantSource[name], out[0].Source, name)
		require.Equal(t, 2, out[0].Length, name)
	}
}

func TestVariants_NoUpstreamIsJustOutlet(t *testing.T) {
	m, err := fdmatrix.New([][]fdmatrix.Code{{fdmatrix.CodeNone}})
	require.NoError(t, err)
	outlets := []fdmatrix.CellLocation{{Row: 0, Col: 0}}
	for name, fn := range allVariants() {
		out, err := fn(m, outlets)
		require.NoError(t, err, name)
		require.Equal(t, fdmatrix.CellLocation{Row: 0, Col: 0}, out[0].Source, name)
		require.Equal(t, 0, out[0].Length, name)
	}
}

func TestVariants_RejectEmptyOutlets(t *testing.T) {
	m := yJunction(t)
	for name, fn := range allVariants() {
		_, err := fn(m, nil)
		require.ErrorIs(t, err, ErrNoOutlets, name)
	}
}

func TestVariants_RejectOutOfBoundsOutlet(t *testing.T) {
	m := yJunction(t)
	for name, fn := range allVariants() {
		_, err := fn(m, []fdmatrix.CellLocation{{Row: 9, Col: 9}})
		require.ErrorIs(t, err, ErrOutletOutOfBounds, name)
	}
}

func TestVariants_TwoOutletOverlapConsistency(t *testing.T) {
	m := twoOutletOverlap(t)
	outlets := []fdmatrix.CellLocation{
		{Row: 0, Col: 1}, // drains (1,1) via South
		{Row: 0, Col: 2}, // drains (0,1) via West -> shares the confluence at (1,1)
	}
	for name, fn := range allVariants() {
		out, err := fn(m, outlets)
		require.NoError(t, err, name)
		require.Len(t, out, 2, name)
		// Outlet (0,1) reaches (0,2) at length 1, beating the second
		// outlet's own length 0 there. The three variants must agree with
		// each other (checked below).
	}

	single, err := SingleUpdate(m, outlets)
	require.NoError(t, err)
	maxlen, err := MaxLength(m, outlets)
	require.NoError(t, err)
	parallelOut, err := SingleUpdateParallel(m, outlets)
	require.NoError(t, err)
	require.Equal(t, single, maxlen)
	require.Equal(t, single, parallelOut)
}

func TestVariants_DuplicateOutletsTreatedIndependently(t *testing.T) {
	m := yJunction(t)
	outlets := []fdmatrix.CellLocation{
		{Row: 2, Col: 1},
		{Row: 2, Col: 1},
	}
	for name, fn := range allVariants() {
		out, err := fn(m, outlets)
		require.NoError(t, err, name)
		require.Len(t, out, 2, name)
		require.Equal(t, out[0], out[1], name)
		require.Equal(t, 2, out[0].Length, name)
	}
}

func TestVariants_AgreeOnRandomishGrid(t *testing.T) {
	// A slightly larger grid with a single outlet and several tributaries,
	// used to cross-check all three variants against each other.
	m, err := fdmatrix.New([][]fdmatrix.Code{
		{fdmatrix.CodeSouthEast, fdmatrix.CodeNone, fdmatrix.CodeSouthWest, fdmatrix.CodeNone},
		{fdmatrix.CodeNone, fdmatrix.CodeSouth, fdmatrix.CodeNone, fdmatrix.CodeSouthWest},
		{fdmatrix.CodeEast, fdmatrix.CodeSouth, fdmatrix.CodeWest, fdmatrix.CodeNone},
		{fdmatrix.CodeNone, fdmatrix.CodeNone, fdmatrix.CodeNone, fdmatrix.CodeNone},
	})
	require.NoError(t, err)
	outlets := []fdmatrix.CellLocation{{Row: 3, Col: 1}}

	single, err := SingleUpdate(m, outlets)
	require.NoError(t, err)
	maxlen, err := MaxLength(m, outlets)
	require.NoError(t, err)
	parallelOut, err := SingleUpdateParallel(m, outlets)
	require.NoError(t, err)
	require.Equal(t, single, maxlen)
	require.Equal(t, single, parallelOut)
}
