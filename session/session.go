package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Controller applies edits to a board and runs searches on it.
type Controller struct {
	grid       *grid.Grid
	start, end *grid.Position
	stale      bool // board holds Open/Closed/Path marks from the last run
	options    Options
	log        *slog.Logger
}

// New builds a Controller with an empty dimension×dimension board.
// Returns an error wrapping grid.ErrBadDimension if dimension < MinDimension
// or if any ladder size is below MinDimension.
func New(dimension int, opts ...Option) (*Controller, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, n := range cfg.Ladder {
		if n < MinDimension {
			return nil, fmt.Errorf("%w: ladder size %d below %d", grid.ErrBadDimension, n, MinDimension)
		}
	}

	c := &Controller{options: cfg, log: cfg.Logger}
	if err := c.Resize(dimension); err != nil {
		return nil, err
	}

	return c, nil
}

// Grid returns the current board. The pointer changes on Reset and Resize.
func (c *Controller) Grid() *grid.Grid { return c.grid }

// Dimension returns the current board size.
func (c *Controller) Dimension() int { return c.grid.Dimension() }

// Stale reports whether the board still shows marks from the last run.
func (c *Controller) Stale() bool { return c.stale }

// Start returns the Start position, if placed.
func (c *Controller) Start() (grid.Position, bool) { return deref(c.start) }

// End returns the End position, if placed.
func (c *Controller) End() (grid.Position, bool) { return deref(c.end) }

func deref(p *grid.Position) (grid.Position, bool) {
	if p == nil {
		return grid.Position{}, false
	}
	return *p, true
}

// Place applies one click at p. Leftover search marks are cleared first.
// Then, in order:
//
//  1. no Start and p is not End → p becomes Start;
//  2. no End and p is not Start → p becomes End;
//  3. p is Start → Start is removed;
//  4. p is End → End is removed;
//  5. otherwise p toggles between Barrier and Empty.
//
// Returns an error wrapping grid.ErrOutOfBounds if p is off the board.
func (c *Controller) Place(p grid.Position) error {
	cell, err := c.grid.Cell(p)
	if err != nil {
		return err
	}
	c.clearStale()

	isStart := c.start != nil && *c.start == p
	isEnd := c.end != nil && *c.end == p
	switch {
	case c.start == nil && !isEnd:
		cell.SetState(grid.Start)
		c.start = &p
	case c.end == nil && !isStart:
		cell.SetState(grid.End)
		c.end = &p
	case isStart:
		cell.SetState(grid.Empty)
		c.start = nil
	case isEnd:
		cell.SetState(grid.Empty)
		c.end = nil
	case cell.Is(grid.Barrier):
		cell.SetState(grid.Empty)
	default:
		cell.SetState(grid.Barrier)
	}
	c.log.Debug("place", "pos", p.String(), "state", cell.State().String())

	return nil
}

// TriggerSearch runs A* from Start to End, calling onStep after every
// expansion and every path cell. Leftover marks are cleared and adjacency is
// rebuilt first; afterwards the board is flagged stale whatever the outcome.
//
// Returns ErrInvalidPlacement, without touching the board, unless both Start
// and End are placed. Cancelling ctx stops the run between steps with
// Outcome Cancelled.
func (c *Controller) TriggerSearch(ctx context.Context, onStep astar.StepFunc) (*astar.Result, error) {
	if c.start == nil || c.end == nil {
		return nil, ErrInvalidPlacement
	}
	c.clearStale()
	c.grid.RecomputeAdjacency()

	runID := c.options.RunID()
	log := c.log.With("run_id", runID)
	log.Info("search started",
		"dimension", c.grid.Dimension(),
		"start", c.start.String(),
		"end", c.end.String(),
		"barriers", c.grid.Count(grid.Barrier),
	)

	began := time.Now()
	res, err := astar.Search(ctx, c.grid, *c.start, *c.end, astar.WithOnStep(onStep))
	if err != nil {
		log.Error("search failed", "err", err)
		return nil, fmt.Errorf("session: run %s: %w", runID, err)
	}
	c.stale = true

	log.Info("search finished",
		"outcome", res.Outcome.String(),
		"expanded", len(res.Expanded),
		"length", res.Length(),
		"elapsed", time.Since(began),
	)

	return res, nil
}

// Reset clears Start and End and replaces the board with an empty one of the
// same size.
func (c *Controller) Reset() {
	_ = c.Resize(c.grid.Dimension())
}

// Resize replaces the board with an empty n×n one and clears Start and End.
// n is validated before anything is allocated or changed.
func (c *Controller) Resize(n int) error {
	if n < MinDimension {
		return fmt.Errorf("%w: need at least %d, got %d", grid.ErrBadDimension, MinDimension, n)
	}
	g, err := grid.New(n)
	if err != nil {
		return err
	}
	c.grid = g
	c.start, c.end = nil, nil
	c.stale = false
	c.log.Debug("board rebuilt", "dimension", n)

	return nil
}

// ResizeUp moves to the next larger ladder size. It reports false, changing
// nothing, when the current size is the largest or not on the ladder.
func (c *Controller) ResizeUp() bool {
	return c.step(+1)
}

// ResizeDown moves to the next smaller ladder size. It reports false,
// changing nothing, when the current size is the smallest or not on the ladder.
func (c *Controller) ResizeDown() bool {
	return c.step(-1)
}

func (c *Controller) step(dir int) bool {
	i := slices.Index(c.options.Ladder, c.grid.Dimension())
	if i < 0 || i+dir < 0 || i+dir >= len(c.options.Ladder) {
		return false
	}
	return c.Resize(c.options.Ladder[i+dir]) == nil
}

// clearStale wipes marks left by the previous run, if any.
func (c *Controller) clearStale() {
	if !c.stale {
		return
	}
	c.grid.ClearSearchMarks()
	c.stale = false
}
