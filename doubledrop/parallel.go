package doubledrop

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hydrotools/lfp/fdmatrix"
)

// ExecuteParallel runs the wave-based parallel double-drop traversal.
// Phase one is identical to Execute. Phase two processes the queue in
// waves: every cell that is indegree-zero at the start of a wave is
// finalized concurrently, reading only already-settled upstream records —
// best is never written to during a wave's concurrent phase, only
// afterward, sequentially, so concurrent reads of it are safe without a
// lock. Each finalized cell then atomically decrements its downstream
// neighbor's indegree counter; any counter that reaches zero during the
// wave seeds the next wave. The wave boundary is the barrier: no cell is
// ever read before the wave that finalizes it has completed.
func ExecuteParallel(m *fdmatrix.Matrix, outlet fdmatrix.CellLocation) (Result, Stats, error) {
	if err := validate(m, outlet); err != nil {
		return Result{}, Stats{}, err
	}

	cells, indegree0 := catchmentAndIndegree(m, outlet)
	counters := make(map[fdmatrix.CellLocation]*int64, len(indegree0))
	for cell, deg := range indegree0 {
		v := int64(deg)
		counters[cell] = &v
	}

	best := make(map[fdmatrix.CellLocation]finished, len(cells))

	var wave []fdmatrix.CellLocation
	for _, cell := range cells {
		if *counters[cell] == 0 {
			wave = append(wave, cell)
		}
	}

	waves := 0
	for len(wave) > 0 {
		waves++
		settled := make([]finished, len(wave))
		downstreamOf := make([]fdmatrix.CellLocation, len(wave))
		hasDownstream := make([]bool, len(wave))

		var g errgroup.Group
		for i, cell := range wave {
			i, cell := i, cell
			g.Go(func() error {
				settled[i] = settle(m, cell, best)
				if d, ok := m.Downstream(cell.Row, cell.Col); ok {
					if _, inCatchment := counters[d]; inCatchment {
						downstreamOf[i] = d
						hasDownstream[i] = true
					}
				}
				return nil
			})
		}
		_ = g.Wait()

		for i, cell := range wave {
			best[cell] = settled[i]
		}

		var next []fdmatrix.CellLocation
		for i := range wave {
			if !hasDownstream[i] {
				continue
			}
			d := downstreamOf[i]
			if atomic.AddInt64(counters[d], -1) == 0 {
				next = append(next, d)
			}
		}
		wave = next
	}

	res := best[outlet]
	return Result{Source: res.source, Length: res.length}, Stats{CellsVisited: len(cells), Waves: waves}, nil
}
