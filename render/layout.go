package render

import "github.com/katalvlaran/gridpath/grid"

// Layout maps a square window of Width pixels onto a Dimension×Dimension
// board. Cells are Width/Dimension pixels wide; leftover pixels on the right
// and bottom edges belong to no cell.
type Layout struct {
	Width     int
	Dimension int
}

// Gap returns the cell edge length in pixels.
func (l Layout) Gap() int {
	if l.Dimension <= 0 {
		return 0
	}
	return l.Width / l.Dimension
}

// CellAt returns the cell under pixel (x, y), with rows running down the
// screen and columns across. ok is false outside the board.
func (l Layout) CellAt(x, y int) (p grid.Position, ok bool) {
	gap := l.Gap()
	if gap == 0 || x < 0 || y < 0 {
		return grid.Position{}, false
	}
	p = grid.Position{Row: y / gap, Col: x / gap}
	if p.Row >= l.Dimension || p.Col >= l.Dimension {
		return grid.Position{}, false
	}
	return p, true
}

// Origin returns the top-left pixel of the cell at p.
func (l Layout) Origin(p grid.Position) (x, y int) {
	gap := l.Gap()
	return p.Col * gap, p.Row * gap
}
