package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
)

var errOverlap = errors.New("pathviz: start, end and barriers must be distinct cells")

type runOptions struct {
	size     int
	start    string
	end      string
	barriers []string
	mapFile  string
	frames   bool
	delay    time.Duration
	glyphs   bool
}

// board is a parsed layout, ready to be replayed as clicks.
type board struct {
	dimension  int
	start, end *grid.Position
	barriers   []grid.Position
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search once and print the board",
		Long: `Build a board, search from Start to End and print the result.

The board comes either from flags or from a map file with one row per line:
  .  empty      #  barrier
  S  start      E  end

End defaults to the bottom-right corner.`,
		Example: `  pathviz run --size 12 --barrier 5,0 --barrier 5,1 --barrier 5,2
  pathviz run --map maze.txt --frames --delay 40ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScripted(cmd.Context(), cmd.OutOrStdout(), logger, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.size, "size", 10, "board dimension")
	f.StringVar(&opts.start, "start", "0,0", "start cell as row,col")
	f.StringVar(&opts.end, "end", "", "end cell as row,col (default bottom-right)")
	f.StringArrayVar(&opts.barriers, "barrier", nil, "barrier cell as row,col (repeatable)")
	f.StringVar(&opts.mapFile, "map", "", "read the board from a map file")
	f.BoolVar(&opts.frames, "frames", false, "print the board after every step")
	f.DurationVar(&opts.delay, "delay", 0, "pause between frames")
	f.BoolVar(&opts.glyphs, "glyphs", false, "print cell glyphs over the colours")
	for _, other := range []string{"size", "start", "end", "barrier"} {
		cmd.MarkFlagsMutuallyExclusive("map", other)
	}

	return cmd
}

func runScripted(ctx context.Context, out io.Writer, logger *slog.Logger, opts runOptions) error {
	b, err := opts.board()
	if err != nil {
		return err
	}
	ctrl, err := b.controller(logger)
	if err != nil {
		return err
	}

	var termOpts []render.TerminalOption
	if opts.glyphs {
		termOpts = append(termOpts, render.WithGlyphs())
	}
	term := render.NewTerminal(out, termOpts...)

	var onStep astar.StepFunc
	if opts.frames {
		frame := 0
		onStep = func() {
			frame++
			fmt.Fprintf(out, "step %d\n%s\n\n", frame, term.Frame(ctrl.Grid()))
			pause(ctx, opts.delay)
		}
	}

	res, err := ctrl.TriggerSearch(ctx, onStep)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, term.Frame(ctrl.Grid()))
	fmt.Fprintln(out, summary(ctrl, res))
	if res.Outcome == astar.Cancelled {
		return fmt.Errorf("pathviz: search interrupted: %w", ctx.Err())
	}

	return nil
}

// summary is the one-line report printed after the final frame. shortest is
// an independent breadth-first distance, so it should always match length.
func summary(ctrl *session.Controller, res *astar.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "outcome=%s expanded=%d steps=%d", res.Outcome, len(res.Expanded), res.Steps)
	if res.Outcome == astar.PathFound {
		fmt.Fprintf(&b, " length=%d", res.Length())
	}
	start, _ := ctrl.Start()
	end, _ := ctrl.End()
	if d, ok := ctrl.Grid().ShortestDistance(start, end); ok {
		fmt.Fprintf(&b, " shortest=%d", d)
	}
	return b.String()
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (o runOptions) board() (*board, error) {
	if o.mapFile != "" {
		return loadMap(o.mapFile)
	}

	start, err := parsePosition(o.start)
	if err != nil {
		return nil, err
	}
	end := grid.Position{Row: o.size - 1, Col: o.size - 1}
	if o.end != "" {
		if end, err = parsePosition(o.end); err != nil {
			return nil, err
		}
	}
	barriers, err := parsePositions(o.barriers)
	if err != nil {
		return nil, err
	}

	return &board{dimension: o.size, start: &start, end: &end, barriers: barriers}, nil
}

func loadMap(path string) (*board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pathviz: read map: %w", err)
	}
	g, err := grid.Parse(strings.Split(strings.TrimRight(string(data), "\r\n"), "\n"))
	if err != nil {
		return nil, fmt.Errorf("pathviz: map %s: %w", path, err)
	}

	b := &board{dimension: g.Dimension()}
	if p, ok := g.Find(grid.Start); ok {
		b.start = &p
	}
	if p, ok := g.Find(grid.End); ok {
		b.end = &p
	}
	g.Each(func(c *grid.Cell) {
		if c.Is(grid.Barrier) {
			b.barriers = append(b.barriers, c.Position())
		}
	})

	return b, nil
}

// controller replays b as clicks: Start, then End, then each barrier once.
func (b *board) controller(logger *slog.Logger) (*session.Controller, error) {
	if b.start == nil || b.end == nil {
		return nil, fmt.Errorf("%w: board needs both S and E", session.ErrInvalidPlacement)
	}
	if *b.start == *b.end {
		return nil, fmt.Errorf("%w: start and end both at %s", errOverlap, b.start)
	}
	ctrl, err := session.New(b.dimension, session.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	clicks := []grid.Position{*b.start, *b.end}
	seen := map[grid.Position]bool{*b.start: true, *b.end: true}
	for _, p := range b.barriers {
		if p == *b.start || p == *b.end {
			return nil, fmt.Errorf("%w: barrier on endpoint %s", errOverlap, p)
		}
		if !seen[p] {
			seen[p] = true
			clicks = append(clicks, p)
		}
	}

	for _, p := range clicks {
		if err := ctrl.Place(p); err != nil {
			return nil, err
		}
	}

	return ctrl, nil
}
