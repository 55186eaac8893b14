// Package grid models a square board of classified cells as a mutable,
// 4-connected graph for step-wise pathfinding.
//
// What:
//
//   - Grid owns N×N Cells addressed by Position{Row, Col}.
//   - Each Cell carries exactly one State: Empty, Open, Closed, Barrier,
//     Start, End or Path.
//   - RecomputeAdjacency rebuilds every Cell's neighbour list: the in-bounds
//     cells DOWN, UP, RIGHT, LEFT (in that order) that are not Barrier.
//   - ClearSearchMarks resets Open/Closed/Path back to Empty and leaves
//     Start, End and Barrier alone.
//   - Parse and String convert to and from a compact ASCII form used by
//     fixtures and the CLI.
//   - ShortestDistance runs a plain BFS over non-barrier cells, independent of
//     the neighbour lists.
//
// Why:
//
//   - Search engines read adjacency, editors write classifications. Keeping
//     the state as an explicit enum lets a presentation layer map it to
//     colours on its own terms.
//
// Complexity:
//
//   - New, RecomputeAdjacency, ClearSearchMarks: O(N²) time.
//   - ShortestDistance: O(N²) time and memory.
//
// Errors:
//
//   - ErrBadDimension: dimension ≤ 0.
//   - ErrOutOfBounds: position outside [0, N).
//   - ErrEmptyGrid, ErrNonSquare, ErrUnknownGlyph, ErrDuplicateEndpoint: Parse input problems.
//
// A Grid is not safe for concurrent use.
package grid
