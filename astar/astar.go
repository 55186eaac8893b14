package astar

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/grid"
)

// inf stands for an unknown score.
const inf = math.MaxInt

// Search runs incremental A* on g from start to end.
//
// The grid's neighbour lists are used as-is, so callers must run
// g.RecomputeAdjacency after the last barrier change. During the run cells are
// reclassified Open and Closed; on success the route is reclassified Path and
// the start cell Start. The end cell keeps End throughout.
//
// ctx is checked before every expansion and every path step. A cancelled run
// returns Outcome Cancelled with a nil error and leaves the board as it was at
// that point.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must be in bounds (ErrOutOfBounds).
//  3. Neither endpoint may be a Barrier (ErrBarrierEndpoint).
//
// When start == end the result is PathFound with a single-cell path, no
// marks are written and OnStep fires once.
//
// Complexity:
//
//   - Time:  O(V log V), V = number of cells.
//   - Space: O(V).
func Search(ctx context.Context, g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	// 1. Apply options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Validate inputs before touching the board.
	if g == nil {
		return nil, ErrNilGrid
	}
	startCell, err := endpoint(g, "start", start)
	if err != nil {
		return nil, err
	}
	endCell, err := endpoint(g, "end", end)
	if err != nil {
		return nil, err
	}

	// 3. Trivial run: nothing to explore, nothing to mark.
	if start == end {
		if ctx.Err() != nil {
			return &Result{Outcome: Cancelled}, nil
		}
		cfg.OnStep()
		return &Result{Outcome: PathFound, Path: []grid.Position{start}, Steps: 1}, nil
	}

	// 4. Seed scores and frontier, then expand until end or exhaustion.
	r := newRunner(ctx, g, startCell, endCell, cfg)
	r.init()

	return r.process(), nil
}

// endpoint resolves p and rejects out-of-bounds or barrier cells.
func endpoint(g *grid.Grid, name string, p grid.Position) (*grid.Cell, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %s %s in %dx%d grid", ErrOutOfBounds, name, p, g.Dimension(), g.Dimension())
	}
	c, _ := g.Cell(p)
	if c.Is(grid.Barrier) {
		return nil, fmt.Errorf("%w: %s %s", ErrBarrierEndpoint, name, p)
	}
	return c, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	ctx     context.Context
	g       *grid.Grid
	options Options

	start, end       *grid.Cell
	startIdx, endIdx int

	cameFrom   []int           // predecessor index, -1 if none
	gScore     []int           // best known moves from start
	fScore     []int           // gScore + heuristic to end
	frontier   frontier        // min-heap by (f, seq)
	inFrontier mapset.Set[int] // cell indices currently queued
	seq        int             // last issued insertion number
	result     *Result
}

func newRunner(ctx context.Context, g *grid.Grid, start, end *grid.Cell, cfg Options) *runner {
	v := g.Size()
	return &runner{
		ctx:        ctx,
		g:          g,
		options:    cfg,
		start:      start,
		end:        end,
		startIdx:   g.Index(start.Position()),
		endIdx:     g.Index(end.Position()),
		cameFrom:   make([]int, v),
		gScore:     make([]int, v),
		fScore:     make([]int, v),
		frontier:   make(frontier, 0, v),
		inFrontier: mapset.New[int](),
		result:     &Result{},
	}
}

// init sets every score to +∞, then seeds the frontier with the start cell.
func (r *runner) init() {
	for i := range r.gScore {
		r.gScore[i] = inf
		r.fScore[i] = inf
		r.cameFrom[i] = -1
	}

	r.gScore[r.startIdx] = 0
	r.fScore[r.startIdx] = r.options.Heuristic(r.start.Position(), r.end.Position())

	heap.Init(&r.frontier)
	r.push(r.startIdx)
}

// push queues idx with the current fScore and a fresh sequence number.
// The start cell gets sequence 0.
func (r *runner) push(idx int) {
	e := &entry{f: r.fScore[idx], seq: r.seq, index: idx}
	r.seq++
	heap.Push(&r.frontier, e)
	r.inFrontier.Put(idx)
}

// pop removes the best entry and drops it from the membership set.
func (r *runner) pop() int {
	e := heap.Pop(&r.frontier).(*entry)
	r.inFrontier.Remove(e.index)

	return e.index
}

// process is the main loop: pop, goal check, relax, step, close.
func (r *runner) process() *Result {
	for r.frontier.Len() > 0 {
		// Cancellation is only observed between expansions.
		if r.ctx.Err() != nil {
			return r.finish(Cancelled)
		}

		// Take the best (f, seq) cell and record the expansion.
		idx := r.pop()
		current := r.g.At(idx)
		r.result.Expanded = append(r.result.Expanded, current.Position())

		// Goal reached: replay the route.
		if idx == r.endIdx {
			return r.reconstruct()
		}

		// Relax neighbours, let the caller draw, then close the cell.
		r.relax(current, idx)
		r.step()

		if idx != r.startIdx {
			current.SetState(grid.Closed)
		}
	}

	return r.finish(NoPathExists)
}

// relax tries to improve every neighbour of current through current.
// Newly queued cells are marked Open unless they are an endpoint.
func (r *runner) relax(current *grid.Cell, idx int) {
	endPos := r.end.Position()
	for _, nb := range current.Neighbors() {
		nIdx := r.g.Index(nb.Position())
		tentative := r.gScore[idx] + 1
		if tentative >= r.gScore[nIdx] {
			continue
		}

		r.cameFrom[nIdx] = idx
		r.gScore[nIdx] = tentative
		r.fScore[nIdx] = tentative + r.options.Heuristic(nb.Position(), endPos)

		// Already queued: the entry keeps the key it was pushed with.
		if r.inFrontier.Has(nIdx) {
			continue
		}

		r.push(nIdx)
		if nIdx != r.endIdx && nIdx != r.startIdx {
			nb.SetState(grid.Open)
		}
	}
}

// reconstruct walks cameFrom back from the end, then replays the route from
// start to end: start is re-marked Start, the rest Path, one step per cell.
func (r *runner) reconstruct() *Result {
	var back []int
	for at := r.endIdx; r.cameFrom[at] >= 0; at = r.cameFrom[at] {
		back = append(back, r.cameFrom[at])
	}

	r.end.SetState(grid.End)
	path := make([]grid.Position, 0, len(back)+1)
	for i := len(back) - 1; i >= 0; i-- {
		if r.ctx.Err() != nil {
			return r.finish(Cancelled)
		}
		c := r.g.At(back[i])
		if i == len(back)-1 {
			c.SetState(grid.Start)
		} else {
			c.SetState(grid.Path)
		}
		path = append(path, c.Position())
		r.step()
	}
	path = append(path, r.end.Position())

	r.result.Path = path
	return r.finish(PathFound)
}

func (r *runner) step() {
	r.options.OnStep()
	r.result.Steps++
}

func (r *runner) finish(o Outcome) *Result {
	r.result.Outcome = o
	return r.result
}
