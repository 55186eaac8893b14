package grid

import "fmt"

// State classifies a Cell. A Cell holds exactly one State at a time.
type State uint8

const (
	// Empty is an untouched, walkable cell.
	Empty State = iota
	// Open marks a cell discovered by a search and waiting in its frontier.
	Open
	// Closed marks a cell a search has already expanded.
	Closed
	// Barrier blocks traversal; it never appears in a neighbour list.
	Barrier
	// Start is the unique search origin.
	Start
	// End is the unique search target.
	End
	// Path marks a cell on a reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Open:    "open",
	Closed:  "closed",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Path:    "path",
}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// IsSearchMark reports whether s is written by a search run (Open, Closed, Path).
func (s State) IsSearchMark() bool {
	return s == Open || s == Closed || s == Path
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats p as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Cell is a single grid square. Its neighbour list is only valid after the
// owning Grid's most recent RecomputeAdjacency.
type Cell struct {
	pos       Position
	state     State
	neighbors []*Cell
}

// Position returns the cell's coordinates.
func (c *Cell) Position() Position { return c.pos }

// State returns the current classification.
func (c *Cell) State() State { return c.state }

// SetState reclassifies the cell. Adjacency is not updated.
func (c *Cell) SetState(s State) { c.state = s }

// Is reports whether the cell currently holds state s.
func (c *Cell) Is(s State) bool { return c.state == s }

// Neighbors returns the walkable 4-neighbours computed by the last
// RecomputeAdjacency, in DOWN, UP, RIGHT, LEFT order.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// Grid is a square board of Cells. Cells[r][c] has Position{r, c}.
type Grid struct {
	dimension int
	cells     [][]*Cell
}

// neighborOffsets lists DOWN, UP, RIGHT, LEFT as (dRow, dCol).
// Search tie-breaking depends on this order.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
