// Package session coordinates user edits and search runs on a single grid.
//
// A Controller owns the current grid.Grid, the optional Start and End
// positions, and a flag recording whether the board still carries marks from
// a previous run. It is the only component a presentation layer talks to:
//
//	place-cell(position)  → Place
//	toggle-run            → TriggerSearch
//	reset                 → Reset
//	resize-up/down        → ResizeUp / ResizeDown (or Resize for any size ≥ 2)
//
// Quitting is the caller's business: cancel the context passed to
// TriggerSearch and stop calling the Controller.
//
// Front-ends that own a render loop can use StepSearch instead of
// TriggerSearch: the run moves to its own goroutine and a Stepper releases it
// one step at a time, handing the board back between steps.
//
// Edits and runs must not overlap. A Controller is not safe for concurrent use.
package session
