package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or end lies outside the grid.
	// It is grid.ErrOutOfBounds, so either name matches with errors.Is.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrBarrierEndpoint indicates that start or end is classified Barrier.
	ErrBarrierEndpoint = errors.New("astar: endpoint is a barrier")
)

// Outcome is the terminal state of a Search.
type Outcome int

const (
	// PathFound means the end cell was reached and a path reconstructed.
	PathFound Outcome = iota + 1
	// NoPathExists means the frontier emptied without reaching the end.
	NoPathExists
	// Cancelled means the context was cancelled before the run finished.
	Cancelled
)

// String returns a short outcome label.
func (o Outcome) String() string {
	switch o {
	case PathFound:
		return "path-found"
	case NoPathExists:
		return "no-path"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result reports what a Search did.
//
// Path is only populated for PathFound and runs from start to end inclusive.
// Expanded lists every cell popped from the frontier, in pop order.
// Steps counts OnStep invocations.
type Result struct {
	Outcome  Outcome
	Path     []grid.Position
	Expanded []grid.Position
	Steps    int
}

// Length returns the number of moves on the path: len(Path)-1, or 0 when
// there is no path.
func (r *Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// StepFunc is called when the board is a consistent snapshot worth drawing.
// It must not mutate the grid.
type StepFunc func()

// Options configures Search.
//
// Heuristic – estimate of remaining moves; must never overestimate for the
// result to be a shortest path. Default Manhattan.
// OnStep    – animation hook. Default no-op.
type Options struct {
	Heuristic Heuristic
	OnStep    StepFunc
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithOnStep installs the per-step hook. A nil fn keeps the no-op default.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithHeuristic replaces the Manhattan estimate. A nil h keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns Manhattan distance and a no-op step hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		OnStep:    func() {},
	}
}
