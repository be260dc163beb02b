package recursive

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hydrotools/lfp/fdmatrix"
)

// ExecuteParallel performs the task-parallel variant of the depth-first
// traversal. It is semantically identical to Execute: same traversal, same
// tie-break order, same result. The integer T bounds task creation: at most
// T subtasks are spawned across the whole traversal: a sync/atomic budget
// is decremented per spawn, degrading branches to the inline sequential
// form once it is exhausted.
//
// Fork-join scheduling uses errgroup: each spawned subtask is an errgroup
// goroutine, and the parent always awaits its children (g.Wait) before
// reducing, so there is no shared mutable state in the reduction itself.
//
// Complexity: O(cells in the catchment) work; wall-clock improves with
// available parallelism up to the T-bounded task count.
func ExecuteParallel(m *fdmatrix.Matrix, outlet fdmatrix.CellLocation, t int) (Result, Stats, error) {
	if m == nil {
		return Result{}, Stats{}, ErrMatrixNil
	}
	if !m.InBounds(outlet.Row, outlet.Col) {
		return Result{}, Stats{}, ErrOutletOutOfBounds
	}
	if t < 0 {
		t = 0
	}

	p := &parallelWalker{matrix: m, budget: int64(t)}
	length, source := p.traverse(outlet, 0)

	stats := Stats{
		CellsVisited: int(atomic.LoadInt64(&p.cellsVisited)),
		MaxDepth:     int(atomic.LoadInt64(&p.maxDepth)),
		TasksSpawned: int(atomic.LoadInt64(&p.tasksSpawned)),
	}
	return Result{Source: source, Length: length}, stats, nil
}

// parallelWalker carries the shared scheduling budget and diagnostics
// across a single ExecuteParallel invocation. The matrix it reads is
// shared read-only; budget/diagnostics are the only mutable state and are
// accessed exclusively through sync/atomic, never through a lock.
type parallelWalker struct {
	matrix       *fdmatrix.Matrix
	budget       int64 // remaining task-creation budget, decremented atomically
	cellsVisited int64
	maxDepth     int64
	tasksSpawned int64
}

// traverse mirrors recursive.traverse but spawns each upstream branch as an
// errgroup task while budget remains, falling back to the sequential
// in-place recursion once the budget is exhausted.
func (p *parallelWalker) traverse(cell fdmatrix.CellLocation, depth int) (int, fdmatrix.CellLocation) {
	atomic.AddInt64(&p.cellsVisited, 1)
	for {
		old := atomic.LoadInt64(&p.maxDepth)
		if int64(depth) <= old || atomic.CompareAndSwapInt64(&p.maxDepth, old, int64(depth)) {
			break
		}
	}

	ups := p.matrix.UpstreamNeighbors(cell.Row, cell.Col)
	if len(ups) == 0 {
		return 0, cell
	}

	lengths := make([]int, len(ups))
	sources := make([]fdmatrix.CellLocation, len(ups))

	var g errgroup.Group
	for i, u := range ups {
		i, u := i, u
		if p.takeBudget() {
			g.Go(func() error {
				lengths[i], sources[i] = p.traverse(u, depth+1)
				return nil
			})
		} else {
			lengths[i], sources[i] = p.traverse(u, depth+1)
		}
	}
	_ = g.Wait() // pure reductions never error; Wait only joins spawned tasks

	bestLen := -1
	bestSource := cell
	for i := range ups {
		if lengths[i]+1 > bestLen {
			bestLen = lengths[i] + 1
			bestSource = sources[i]
		}
	}
	return bestLen, bestSource
}

// takeBudget atomically claims one unit of task-creation budget, returning
// true if a new goroutine may be spawned for the caller's branch.
func (p *parallelWalker) takeBudget() bool {
	for {
		old := atomic.LoadInt64(&p.budget)
		if old <= 0 {
			return false
		}
		if atomic.CompareAndSwapInt64(&p.budget, old, old-1) {
			atomic.AddInt64(&p.tasksSpawned, 1)
			return true
		}
	}
}
