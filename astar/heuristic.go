package astar

import "github.com/katalvlaran/gridpath/grid"

// Heuristic estimates the number of moves from a to b.
type Heuristic func(a, b grid.Position) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. With 4-directional unit
// moves it is admissible and consistent, so Search returns shortest paths.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
