package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// Terminal draws boards as coloured blocks, two columns per cell so cells
// look roughly square.
type Terminal struct {
	glyphs bool
	styles [len(Palette)]lipgloss.Style
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithGlyphs prints each cell's ASCII glyph on top of its colour, which keeps
// frames readable when colour is stripped (pipes, CI logs).
func WithGlyphs() TerminalOption {
	return func(t *Terminal) { t.glyphs = true }
}

// NewTerminal builds a Terminal whose colour profile is detected from w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	r := lipgloss.NewRenderer(w)
	t := &Terminal{}
	for _, opt := range opts {
		opt(t)
	}
	for s := range t.styles {
		t.styles[s] = r.NewStyle().
			Background(lipgloss.Color(Hex(Palette[s]))).
			Foreground(lipgloss.Color(Hex(Palette[grid.Barrier])))
	}
	t.styles[grid.Barrier] = t.styles[grid.Barrier].Foreground(lipgloss.Color(Hex(Palette[grid.Empty])))

	return t
}

// Frame renders g, one text line per row.
func (t *Terminal) Frame(g *grid.Grid) string {
	states := g.States()
	lines := make([]string, len(states))
	var b strings.Builder
	for r, row := range states {
		b.Reset()
		for _, s := range row {
			b.WriteString(t.cell(s))
		}
		lines[r] = b.String()
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (t *Terminal) cell(s grid.State) string {
	text := "  "
	if t.glyphs {
		text = string(s.Glyph()) + " "
	}
	if int(s) >= len(t.styles) {
		return text
	}
	return t.styles[s].Render(text)
}
