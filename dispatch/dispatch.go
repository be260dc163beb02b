package dispatch

import (
	"time"

	"github.com/hydrotools/lfp/fdmatrix"
)

// Run selects the algorithm at index, decides single- versus multi-outlet
// mode, and executes it.
//
// Mode selection follows the documented driver behavior: index ∈ {3,4,5}
// and parameter nonzero activates multi-outlet mode over the whole outlet
// list; every other combination — including a top-down index with a zero
// parameter — runs in single-outlet mode against outlets[0]. A zero
// parameter therefore silently falls back to single-outlet mode for the
// top-down family rather than erroring; that quirk is preserved
// deliberately. Callers that need multi-outlet mode to fail loudly when
// unsupported should use RunMultiOutlet instead.
//
// Timing covers the algorithm call only; matrix and outlet validation
// happen before the clock starts.
func Run(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation, index, parameter int) (Report, error) {
	if m == nil {
		return Report{}, ErrMatrixNil
	}
	if err := validateIndexAndParameter(index, parameter); err != nil {
		return Report{}, err
	}
	if err := checkOutletsInBounds(m, outlets); err != nil {
		return Report{}, err
	}

	if multiOutletCapable[index] && parameter != 0 {
		start := time.Now()
		outcomes, err := runMulti(index, m, outlets)
		elapsed := time.Since(start)
		if err != nil {
			return Report{}, err
		}
		return Report{Outcomes: outcomes, MultiOutlet: true, Duration: elapsed}, nil
	}

	if len(outlets) == 0 {
		return Report{}, ErrEmptyOutletSet
	}
	start := time.Now()
	outcome, err := runSingle(index, parameter, m, outlets[0])
	elapsed := time.Since(start)
	if err != nil {
		return Report{}, err
	}
	return Report{Outcomes: []Outcome{outcome}, MultiOutlet: false, Duration: elapsed}, nil
}

// RunMultiOutlet explicitly requests multi-outlet mode regardless of the
// parameter value, failing with ErrUnsupportedMultiOutlet for algorithms
// that do not implement it (indices 1, 2, 6, 7) instead of silently
// degrading to single-outlet mode.
func RunMultiOutlet(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation, index, parameter int) (Report, error) {
	if m == nil {
		return Report{}, ErrMatrixNil
	}
	if err := validateIndexAndParameter(index, parameter); err != nil {
		return Report{}, err
	}
	if !multiOutletCapable[index] {
		return Report{}, ErrUnsupportedMultiOutlet
	}
	if err := checkOutletsInBounds(m, outlets); err != nil {
		return Report{}, err
	}
	if len(outlets) == 0 {
		return Report{}, ErrEmptyOutletSet
	}

	start := time.Now()
	outcomes, err := runMulti(index, m, outlets)
	elapsed := time.Since(start)
	if err != nil {
		return Report{}, err
	}
	return Report{Outcomes: outcomes, MultiOutlet: true, Duration: elapsed}, nil
}
