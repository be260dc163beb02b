package doubledrop

import "github.com/hydrotools/lfp/fdmatrix"

// Execute runs the sequential double-drop traversal: phase one discovers
// the catchment and each cell's indegree, phase two drains a FIFO queue of
// indegree-zero cells, finalizing each one's (length, source) record from
// its already-finalized upstream neighbors (visited in the fixed
// enumeration order, first strictly-longer wins) before decrementing its
// downstream neighbor's indegree.
//
// Complexity: O(cells in the catchment) time and space, each cell
// finalized exactly once.
func Execute(m *fdmatrix.Matrix, outlet fdmatrix.CellLocation) (Result, error) {
	if err := validate(m, outlet); err != nil {
		return Result{}, err
	}

	_, indegree := catchmentAndIndegree(m, outlet)
	best := make(map[fdmatrix.CellLocation]finished, len(indegree))

	var queue []fdmatrix.CellLocation
	for cell, deg := range indegree {
		if deg == 0 {
			queue = append(queue, cell)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		best[cur] = settle(m, cur, best)

		d, ok := m.Downstream(cur.Row, cur.Col)
		if !ok {
			continue
		}
		if _, inCatchment := indegree[d]; !inCatchment {
			continue
		}
		indegree[d]--
		if indegree[d] == 0 {
			queue = append(queue, d)
		}
	}

	res := best[outlet]
	return Result{Source: res.source, Length: res.length}, nil
}

// settle computes cell's final record from its upstream neighbors, all of
// which are guaranteed already finalized in best by the time cell's
// indegree reaches zero.
func settle(m *fdmatrix.Matrix, cell fdmatrix.CellLocation, best map[fdmatrix.CellLocation]finished) finished {
	ups := m.UpstreamNeighbors(cell.Row, cell.Col)
	if len(ups) == 0 {
		return finished{length: 0, source: cell}
	}
	bestLen := -1
	bestSource := cell
	for _, u := range ups {
		f := best[u]
		if f.length+1 > bestLen {
			bestLen = f.length + 1
			bestSource = f.source
		}
	}
	return finished{length: bestLen, source: bestSource}
}
