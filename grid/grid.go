package grid

import "fmt"

// New allocates a dimension×dimension Grid of Empty cells with empty
// neighbour lists. Returns ErrBadDimension if dimension ≤ 0; nothing is
// allocated in that case.
// Complexity: O(N²) time and memory.
func New(dimension int) (*Grid, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, dimension)
	}
	cells := make([][]*Cell, dimension)
	for r := 0; r < dimension; r++ {
		cells[r] = make([]*Cell, dimension)
		for c := 0; c < dimension; c++ {
			cells[r][c] = &Cell{pos: Position{Row: r, Col: c}}
		}
	}

	return &Grid{dimension: dimension, cells: cells}, nil
}

// Dimension returns N, the number of rows (and columns).
func (g *Grid) Dimension() int { return g.dimension }

// Size returns the number of cells, N².
func (g *Grid) Size() int { return g.dimension * g.dimension }

// InBounds reports whether p lies within [0, N) on both axes.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.dimension && p.Col >= 0 && p.Col < g.dimension
}

// Cell returns the cell at p, or ErrOutOfBounds.
func (g *Grid) Cell(p Position) (*Cell, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.dimension, g.dimension)
	}

	return g.cells[p.Row][p.Col], nil
}

// Index maps p to its row-major index: Row*N + Col.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.dimension + p.Col
}

// At converts a row-major index back to its Cell.
func (g *Grid) At(idx int) *Cell {
	return g.cells[idx/g.dimension][idx%g.dimension]
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Count returns how many cells currently hold state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.state == s {
			n++
		}
	})

	return n
}

// States returns a detached copy of every classification, indexed [row][col].
func (g *Grid) States() [][]State {
	out := make([][]State, g.dimension)
	for r, row := range g.cells {
		out[r] = make([]State, g.dimension)
		for c, cell := range row {
			out[r][c] = cell.state
		}
	}

	return out
}

// Find returns the position of the first cell holding s in row-major order.
// Intended for the unique Start and End cells.
func (g *Grid) Find(s State) (Position, bool) {
	for _, row := range g.cells {
		for _, c := range row {
			if c.state == s {
				return c.pos, true
			}
		}
	}

	return Position{}, false
}

// RecomputeAdjacency rebuilds every cell's neighbour list: in-bounds cells
// DOWN, UP, RIGHT, LEFT that are not Barrier. It must be called after any
// barrier change and before each search run; lists are otherwise stale.
// Complexity: O(N²) time.
func (g *Grid) RecomputeAdjacency() {
	for _, row := range g.cells {
		for _, c := range row {
			c.neighbors = make([]*Cell, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				np := Position{Row: c.pos.Row + d[0], Col: c.pos.Col + d[1]}
				if !g.InBounds(np) {
					continue
				}
				nb := g.cells[np.Row][np.Col]
				if nb.state == Barrier {
					continue
				}
				c.neighbors = append(c.neighbors, nb)
			}
		}
	}
}

// ClearSearchMarks resets every Open, Closed or Path cell to Empty.
// Start, End and Barrier cells are untouched. Calling it twice is the same as
// calling it once.
func (g *Grid) ClearSearchMarks() {
	g.Each(func(c *Cell) {
		if c.state.IsSearchMark() {
			c.state = Empty
		}
	})
}
