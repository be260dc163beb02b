package topdown

import "github.com/hydrotools/lfp/fdmatrix"

// SingleUpdate computes the same result as MaxLength but only re-enqueues a
// cell's upstream neighbors when the cell's own record actually improved,
// so each cell is relaxed at most once per competing outlet. This is the
// sequential production variant: O(cells) work instead of MaxLength's
// path-count blowup.
func SingleUpdate(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation) ([]Outcome, error) {
	if err := validateOutlets(m, outlets); err != nil {
		return nil, err
	}
	distinct, indexOf := dedupeOutlets(outlets)

	best := make(map[fdmatrix.CellLocation]record)
	perOutlet := make([]Outcome, len(distinct))
	var queue []frontierEntry
	for i, o := range distinct {
		best[o] = record{length: 0, owner: i}
		perOutlet[i] = Outcome{Source: o, Length: 0}
		queue = append(queue, frontierEntry{cell: o, length: 0, owner: i})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, u := range m.UpstreamNeighbors(cur.cell.Row, cur.cell.Col) {
			if claims(best, u, cur.length+1, cur.owner, distinct) {
				updateBest(perOutlet, cur.owner, u, cur.length+1)
				queue = append(queue, frontierEntry{cell: u, length: cur.length + 1, owner: cur.owner})
			}
		}
	}

	return broadcast(perOutlet, indexOf), nil
}
