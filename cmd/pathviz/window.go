package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
)

type windowOptions struct {
	size  int
	width int
	speed int
}

func newWindowCmd(logger *slog.Logger) *cobra.Command {
	opts := windowOptions{}
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Open the interactive editor",
		Long: `Open a window showing an empty board.

  left click   place Start, then End, then toggle barriers
               (clicking Start or End removes it)
  space        search
  c            clear the board
  up / down    next larger / smaller board
  x, escape    quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd.Context(), logger, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.size, "size", 50, "initial board dimension")
	f.IntVar(&opts.width, "width", 700, "window edge in pixels")
	f.IntVar(&opts.speed, "speed", 1, "search steps per frame")

	return cmd
}

func runWindow(ctx context.Context, logger *slog.Logger, opts windowOptions) error {
	if opts.width <= 0 || opts.speed <= 0 {
		return errors.New("pathviz: width and speed must be positive")
	}
	ctrl, err := session.New(opts.size, session.WithLogger(logger))
	if err != nil {
		return err
	}

	g := &editor{ctx: ctx, ctrl: ctrl, log: logger, width: opts.width, speed: opts.speed}
	defer g.stop()

	ebiten.SetWindowSize(opts.width, opts.width)
	ebiten.SetWindowTitle("A* Path Finding")

	return ebiten.RunGame(g)
}

// editor is the ebiten.Game behind the window. While a search is running the
// run owns the board between frames; input other than quit is ignored.
type editor struct {
	ctx   context.Context
	ctrl  *session.Controller
	log   *slog.Logger
	width int
	speed int

	run *session.Stepper
}

func (g *editor) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.stop()
		return ebiten.Termination
	}

	if g.run != nil {
		if g.run.Step(g.speed) {
			g.finish()
		}
		return nil
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		if p, ok := g.layout().CellAt(x, y); ok {
			if err := g.ctrl.Place(p); err != nil {
				g.log.Warn("place", "pos", p.String(), "err", err)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		run, err := g.ctrl.StepSearch(g.ctx)
		if errors.Is(err, session.ErrInvalidPlacement) {
			return nil
		}
		if err != nil {
			return err
		}
		g.run = run
		if run.Done() {
			g.finish()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.ctrl.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.ctrl.ResizeUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.ctrl.ResizeDown()
	}

	return nil
}

func (g *editor) finish() {
	if _, err := g.run.Result(); err != nil {
		g.log.Error("search", "err", err)
	}
	g.run = nil
}

func (g *editor) stop() {
	if g.run != nil {
		g.run.Close()
		g.run = nil
	}
}

func (g *editor) layout() render.Layout {
	return render.Layout{Width: g.width, Dimension: g.ctrl.Dimension()}
}

func (g *editor) Draw(screen *ebiten.Image) {
	screen.Fill(render.Color(grid.Empty))

	l := g.layout()
	gap := float32(l.Gap())
	board := g.ctrl.Grid()
	for r, row := range board.States() {
		for c, s := range row {
			x, y := float32(c)*gap, float32(r)*gap
			vector.DrawFilledRect(screen, x, y, gap, gap, render.Color(s), false)
		}
	}

	edge := gap * float32(l.Dimension)
	for i := 0; i <= l.Dimension; i++ {
		at := float32(i) * gap
		vector.StrokeLine(screen, 0, at, edge, at, 1, render.GridLine, false)
		vector.StrokeLine(screen, at, 0, at, edge, 1, render.GridLine, false)
	}

	status := fmt.Sprintf("%dx%d", l.Dimension, l.Dimension)
	if g.run != nil {
		status += fmt.Sprintf("  step %d", g.run.Steps())
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *editor) Layout(_, _ int) (int, int) {
	return g.width, g.width
}
