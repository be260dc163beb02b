// Package dispatch selects one of the seven longest-flow-path algorithms by
// index, runs it in single- or multi-outlet mode, and times the call. It is
// a small capability-tagged switch over otherwise independent algorithm
// packages, reporting sentinel errors instead of panicking on
// caller-supplied misconfiguration.
package dispatch

import (
	"errors"
	"time"

	"github.com/hydrotools/lfp/doubledrop"
	"github.com/hydrotools/lfp/fdmatrix"
	"github.com/hydrotools/lfp/recursive"
	"github.com/hydrotools/lfp/topdown"
)

// Sentinel errors for dispatch, named after the error kinds of the external
// error-handling contract.
var (
	// ErrInvalidAlgorithmIndex is returned for an index outside 1..7.
	ErrInvalidAlgorithmIndex = errors.New("dispatch: algorithm index must be in 1..7")

	// ErrInvalidParameter is returned for a negative algorithm parameter.
	ErrInvalidParameter = errors.New("dispatch: algorithm parameter must be >= 0")

	// ErrOutletOutOfBounds is returned when an outlet lies outside the grid.
	ErrOutletOutOfBounds = errors.New("dispatch: outlet out of bounds")

	// ErrEmptyOutletSet is returned when single-outlet mode is entered with
	// no parsed outlets.
	ErrEmptyOutletSet = errors.New("dispatch: no outlets given for single-outlet mode")

	// ErrUnsupportedMultiOutlet is returned when multi-outlet mode is
	// explicitly requested for an algorithm that does not implement it
	// (indices 1, 2, 6, 7).
	ErrUnsupportedMultiOutlet = errors.New("dispatch: algorithm does not support multi-outlet mode")

	// ErrMatrixNil is returned when a nil *fdmatrix.Matrix is passed.
	ErrMatrixNil = errors.New("dispatch: matrix is nil")
)

// multiOutletCapable lists the algorithm indices implementing the
// multi-outlet top-down contract.
var multiOutletCapable = map[int]bool{3: true, 4: true, 5: true}

// Outcome is the result for a single outlet: its source cell and the
// longest upstream path length reached.
type Outcome struct {
	Source fdmatrix.CellLocation
	Length int
}

// Report is the full result of one dispatch call: one Outcome per emitted
// outlet (in outlet order), whether multi-outlet mode ran, and the
// wall-clock duration of the algorithm call alone.
type Report struct {
	Outcomes    []Outcome
	MultiOutlet bool
	Duration    time.Duration
}

func validateIndexAndParameter(index, parameter int) error {
	if index < 1 || index > 7 {
		return ErrInvalidAlgorithmIndex
	}
	if parameter < 0 {
		return ErrInvalidParameter
	}
	return nil
}

func checkOutletsInBounds(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation) error {
	for _, o := range outlets {
		if !m.InBounds(o.Row, o.Col) {
			return ErrOutletOutOfBounds
		}
	}
	return nil
}

// runSingle invokes the single-outlet algorithm identified by index against
// outlets[0].
func runSingle(index, parameter int, m *fdmatrix.Matrix, outlet fdmatrix.CellLocation) (Outcome, error) {
	switch index {
	case 1:
		res, err := recursive.Execute(m, outlet)
		return Outcome{Source: res.Source, Length: res.Length}, err
	case 2:
		res, _, err := recursive.ExecuteParallel(m, outlet, parameter)
		return Outcome{Source: res.Source, Length: res.Length}, err
	case 3:
		out, err := topdown.MaxLength(m, []fdmatrix.CellLocation{outlet})
		return fromTopdown(out, err)
	case 4:
		out, err := topdown.SingleUpdate(m, []fdmatrix.CellLocation{outlet})
		return fromTopdown(out, err)
	case 5:
		out, err := topdown.SingleUpdateParallel(m, []fdmatrix.CellLocation{outlet})
		return fromTopdown(out, err)
	case 6:
		res, err := doubledrop.Execute(m, outlet)
		return Outcome{Source: res.Source, Length: res.Length}, err
	case 7:
		res, _, err := doubledrop.ExecuteParallel(m, outlet)
		return Outcome{Source: res.Source, Length: res.Length}, err
	default:
		return Outcome{}, ErrInvalidAlgorithmIndex
	}
}

func fromTopdown(out []topdown.Outcome, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Source: out[0].Source, Length: out[0].Length}, nil
}

// runMulti invokes the multi-outlet top-down algorithm identified by index
// against the full outlet list, returning one Outcome per outlet in order.
func runMulti(index int, m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation) ([]Outcome, error) {
	var out []topdown.Outcome
	var err error
	switch index {
	case 3:
		out, err = topdown.MaxLength(m, outlets)
	case 4:
		out, err = topdown.SingleUpdate(m, outlets)
	case 5:
		out, err = topdown.SingleUpdateParallel(m, outlets)
	default:
		return nil, ErrUnsupportedMultiOutlet
	}
	if err != nil {
		return nil, err
	}
	res := make([]Outcome, len(out))
	for i, o := range out {
		res[i] = Outcome{Source: o.Source, Length: o.Length}
	}
	return res, nil
}
