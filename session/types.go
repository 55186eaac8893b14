package session

import (
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// MinDimension is the smallest board a Controller will build; a 1×1 board
// cannot hold both a Start and an End.
const MinDimension = 2

// ErrInvalidPlacement indicates TriggerSearch was called without both a
// Start and an End on the board.
var ErrInvalidPlacement = errors.New("session: start and end must both be placed before searching")

// DefaultLadder is the sequence of board sizes ResizeUp and ResizeDown walk.
var DefaultLadder = []int{10, 20, 50, 70}

// Options configures a Controller.
//
// Logger – receives edit (Debug) and run (Info) records. Default discards.
// Ladder – ascending board sizes for ResizeUp/ResizeDown. Default DefaultLadder.
// RunID  – generates the identifier attached to each run's log records.
// Default uuid.NewString.
type Options struct {
	Logger *slog.Logger
	Ladder []int
	RunID  func() string
}

// Option represents a functional option for configuring a Controller.
type Option func(*Options)

// WithLogger routes controller log records to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLadder replaces the resize ladder. Sizes are copied and sorted;
// duplicates are dropped.
func WithLadder(sizes ...int) Option {
	return func(o *Options) {
		ladder := slices.Clone(sizes)
		slices.Sort(ladder)
		o.Ladder = slices.Compact(ladder)
	}
}

// WithRunIDs replaces the run identifier generator, mostly for tests.
func WithRunIDs(fn func() string) Option {
	return func(o *Options) {
		if fn != nil {
			o.RunID = fn
		}
	}
}

// DefaultOptions returns a discarding logger, DefaultLadder and uuid run IDs.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ladder: slices.Clone(DefaultLadder),
		RunID:  uuid.NewString,
	}
}
