// Package beams simulates beams falling through a rectangular character
// grid of splitters.
//
// What & Why
//
// A single beam enters at the start marker 'S' and moves straight down, one
// row per step. Hitting a splitter '^' destroys the beam and spawns two new
// beams in the columns immediately left and right (clipped at the walls);
// every other cell lets the beam pass through. Two derived answers:
//
//   - Splits: how many splitter hits occur before every beam leaves the
//     grid. Beams that land in the same column merge — the set of active
//     columns is deduplicated per row, so one splitter fires at most once
//     per row regardless of how many beams arrive.
//
//   - Timelines: how many distinct downward paths a single particle can
//     take. Here beams do not merge; each column carries a multiplicity and
//     splitters double it. Beams leaving sideways through a wall finish
//     their path and still count.
//
// Complexity:
//
//	– Splits / Timelines: O(rows × cols) time, O(cols) memory.
//
// Errors (sentinel):
//
//	– ErrEmptyGrid   no input rows.
//	– ErrRaggedGrid  rows of differing lengths.
//	– ErrNoStart     no 'S' marker anywhere in the grid.
package beams
