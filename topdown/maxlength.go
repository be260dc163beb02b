package topdown

import "github.com/hydrotools/lfp/fdmatrix"

// frontierEntry is one pending propagation step: a candidate (length, owner)
// record competing for cell.
type frontierEntry struct {
	cell   fdmatrix.CellLocation
	length int
	owner  int
}

// MaxLength computes, for every outlet, the source cell and length of its
// longest upstream path. Every queued entry is checked against the cell's
// best record only when it is dequeued; an entry that claims the cell
// enqueues all of that cell's upstream neighbors, and one that does not is
// dropped. It is the reference variant: structurally simple to verify by
// hand and used to cross-check the other variants.
//
// Duplicate outlets (equal CellLocation, distinct index) are resolved
// independently: see dedupeOutlets.
//
// Complexity: one queue entry per arrival of an outlet's traversal at a
// cell; with a single outlet each catchment cell is dequeued once.
func MaxLength(m *fdmatrix.Matrix, outlets []fdmatrix.CellLocation) ([]Outcome, error) {
	if err := validateOutlets(m, outlets); err != nil {
		return nil, err
	}
	distinct, indexOf := dedupeOutlets(outlets)

	best := make(map[fdmatrix.CellLocation]record)
	perOutlet := make([]Outcome, len(distinct))
	var queue []frontierEntry
	for i, o := range distinct {
		perOutlet[i] = Outcome{Source: o, Length: 0}
		queue = append(queue, frontierEntry{cell: o, length: 0, owner: i})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if !claims(best, cur.cell, cur.length, cur.owner, distinct) {
			continue
		}
		updateBest(perOutlet, cur.owner, cur.cell, cur.length)

		for _, u := range m.UpstreamNeighbors(cur.cell.Row, cur.cell.Col) {
			queue = append(queue, frontierEntry{cell: u, length: cur.length + 1, owner: cur.owner})
		}
	}

	return broadcast(perOutlet, indexOf), nil
}

// claims reports whether (length, owner) is the cell's current best after
// comparison against whatever is already recorded, updating best[cell] in
// place when it wins. A record wins on strictly greater length, or on a tie
// decided by comparing the two claiming outlets' own coordinates.
func claims(best map[fdmatrix.CellLocation]record, cell fdmatrix.CellLocation, length, owner int, distinct []fdmatrix.CellLocation) bool {
	cur, ok := best[cell]
	if !ok || length > cur.length {
		best[cell] = record{length: length, owner: owner}
		return true
	}
	if length == cur.length && owner != cur.owner && cellLess(distinct[owner], distinct[cur.owner]) {
		best[cell] = record{length: length, owner: owner}
		return true
	}
	return false
}
