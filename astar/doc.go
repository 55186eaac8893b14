// Package astar implements an incremental A* search over a grid.Grid that
// yields after every expansion so a caller can draw the board between steps.
//
// Overview:
//
//   - Search runs from a start to an end position using the grid's current
//     neighbour lists (call grid.RecomputeAdjacency first) with unit edge cost.
//   - The frontier is a binary heap ordered by f = g + h. Equal f values are
//     served in insertion order via a monotonically increasing sequence number,
//     so repeated runs on the same board expand cells in the same order.
//     A queued cell that is reached more cheaply gets its scores and
//     predecessor updated but keeps its place in the heap.
//   - Discovered cells are marked grid.Open, expanded cells grid.Closed, and the
//     reconstructed route grid.Path. Start and End cells keep their marks.
//   - The OnStep hook fires once per expansion and once per path cell; it is the
//     animation point for a presentation layer.
//
// Outcomes:
//
//   - PathFound:    the end was reached; Result.Path runs start … end.
//   - NoPathExists: the frontier emptied; no Path marks were written.
//   - Cancelled:    the context was cancelled between steps; the board is left
//     in whatever partial state the run had reached.
//
// None of these are errors. Errors are reserved for caller mistakes:
//
//   - ErrNilGrid:         grid is nil.
//   - ErrOutOfBounds:     start or end outside the grid.
//   - ErrBarrierEndpoint: start or end is currently a Barrier.
//
// Options:
//
//   - WithOnStep(fn):    per-step hook (default: no-op).
//   - WithHeuristic(h):  distance estimate (default: Manhattan).
//
// Complexity:
//
//   - Time:  O(V log V) with V = N². With a consistent heuristic such as
//     Manhattan each cell is expanded at most once; an inconsistent one passed
//     through WithHeuristic may reopen Closed cells.
//   - Space: O(V) for score tables, predecessors and the frontier.
//
// Example:
//
//	g.RecomputeAdjacency()
//	res, err := astar.Search(ctx, g, start, end, astar.WithOnStep(redraw))
//	if err != nil {
//	    return err
//	}
//	if res.Outcome == astar.PathFound {
//	    fmt.Println("moves:", res.Length())
//	}
package astar
