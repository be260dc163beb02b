package topdown

import (
	"golang.org/x/sync/errgroup"

	"github.com/hydrotools/lfp/fdmatrix"
)

// SingleUpdateParallel computes the same lengths as SingleUpdate but
// processes one length-level at a time: every cell in the current frontier
// expands to its upstream neighbors concurrently, and all of those
// candidate updates are merged sequentially before the next level starts.
// The merge step is the barrier: it keeps tie-break resolution
// deterministic regardless of goroutine scheduling, since no two
// goroutines ever write the same shared record concurrently. Among sources
// tied for an outlet's longest length it keeps the lexicographically
// smallest coordinate (updateBestCoordTieBreak), so its source can differ
// from SingleUpdate's, which keeps the first in enumeration order.
func SingleUpdateParallel(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation) ([]Outcome, error) {
	if err := validateOutlets(m, outlets); err != nil {
		return nil, err
	}
	distinct, indexOf := dedupeOutlets(outlets)

	best := make(map[fdmatrix.CellLocation]record)
	perOutlet := make([]Outcome, len(distinct))
	frontier := make([]frontierEntry, 0, len(distinct))
	for i, o := range distinct {
		best[o] = record{length: 0, owner: i}
		perOutlet[i] = Outcome{Source: o, Length: 0}
		frontier = append(frontier, frontierEntry{cell: o, length: 0, owner: i})
	}

	for len(frontier) > 0 {
		candidates := make([][]frontierEntry, len(frontier))

		var g errgroup.Group
		for i, f := range frontier {
			i, f := i, f
			g.Go(func() error {
				ups := m.UpstreamNeighbors(f.cell.Row, f.cell.Col)
				out := make([]frontierEntry, len(ups))
				for j, u := range ups {
					out[j] = frontierEntry{cell: u, length: f.length + 1, owner: f.owner}
				}
				candidates[i] = out
				return nil
			})
		}
		_ = g.Wait() // expansion is pure; Wait only joins the concurrent reads

		var next []frontierEntry
		for _, batch := range candidates {
			for _, c := range batch {
				if claims(best, c.cell, c.length, c.owner, distinct) {
					updateBestCoordTieBreak(perOutlet, c.owner, c.cell, c.length)
					next = append(next, c)
				}
			}
		}
		frontier = next
	}

	return broadcast(perOutlet, indexOf), nil
}
