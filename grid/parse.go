package grid

import (
	"fmt"
	"strings"
)

// Glyphs used by Parse and String.
const (
	GlyphEmpty   = '.'
	GlyphOpen    = 'o'
	GlyphClosed  = 'x'
	GlyphBarrier = '#'
	GlyphStart   = 'S'
	GlyphEnd     = 'E'
	GlyphPath    = '*'
)

var stateGlyphs = [...]rune{
	Empty:   GlyphEmpty,
	Open:    GlyphOpen,
	Closed:  GlyphClosed,
	Barrier: GlyphBarrier,
	Start:   GlyphStart,
	End:     GlyphEnd,
	Path:    GlyphPath,
}

// Glyph returns the ASCII character for s, or '?' for an unknown state.
func (s State) Glyph() rune {
	if int(s) < len(stateGlyphs) {
		return stateGlyphs[s]
	}

	return '?'
}

func stateOf(glyph rune) (State, bool) {
	for s, g := range stateGlyphs {
		if g == glyph {
			return State(s), true
		}
	}

	return Empty, false
}

// Parse builds a Grid from square ASCII rows, one string per row:
//
//	S..#
//	.#..
//	.#.E
//	....
//
// Surrounding whitespace on each row is ignored. Start and End may each
// appear at most once. Neighbour lists are left empty; call
// RecomputeAdjacency before searching.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	var starts, ends int
	for r, line := range rows {
		glyphs := []rune(strings.TrimSpace(line))
		if len(glyphs) == 0 {
			return nil, ErrEmptyGrid
		}
		if len(glyphs) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(glyphs), n)
		}
		for c, ch := range glyphs {
			s, ok := stateOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownGlyph, ch, r, c)
			}
			switch s {
			case Start:
				starts++
			case End:
				ends++
			}
			g.cells[r][c].state = s
		}
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: %d start, %d end", ErrDuplicateEndpoint, starts, ends)
	}

	return g, nil
}

// String renders the grid in the Parse format, rows separated by '\n'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.dimension * (g.dimension + 1))
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.state.Glyph())
		}
	}

	return b.String()
}
