// Package orthopoly computes interior area for axis-aligned orthogonal
// polygons and answers maximum-rectangle queries over their boundary
// vertices.
//
// What & Why
//
//   - The input is an ordered cycle of integer 2D points whose consecutive
//     points (wrapping last→first) differ in exactly one coordinate — every
//     edge is purely horizontal or vertical. A diagonal edge is a format
//     error, ErrDiagonalEdge.
//
//   - Areas are counted in unit cells, inclusively: the rectangle anchored by
//     (0,0) and (4,4) covers (4−0+1)×(4−0+1) = 25 cells, not a 4×4 span.
//
// Construction pipeline (NewRegion)
//
//  1. Coordinate compression. Critical x and y sets are built from every
//     vertex coordinate v and v+1, plus a padding frame one unit beyond the
//     bounding box (min−1 and max+2). Sorted strictly increasing, consecutive
//     gaps define rectangular tiles of known width×height. Every polygon edge
//     and every unit cell boundary lands exactly on a critical coordinate, so
//     compression loses no interior structure.
//  2. Boundary marking. Each edge marks the tiles its segment covers.
//  3. Exterior flood fill. A breadth-first fill with an explicit work queue
//     (no recursion, so grid size never threatens the stack) starts from
//     every unmarked tile on the compressed grid's outer frame; everything it
//     reaches is exterior. The padding frame guarantees the exterior is one
//     connected region.
//  4. Interior inference. Unvisited tiles are interior (or boundary) and
//     become allowed.
//  5. Prefix sums. A 2D inclusive-exclusive prefix sum over allowed tile
//     areas gives O(1) RectAreaSum queries in original coordinates.
//
// Queries
//
//   - RectAreaSum: total allowed area inside a closed rectangle whose corner
//     coordinates come from boundary vertices. O(1).
//   - MaxRectangle: for every unordered pair of boundary vertices, the
//     candidate rectangle they anchor is valid iff its allowed area equals
//     its full area (no exterior leakage); the maximum valid area wins.
//     O(n²) pair checks after O(grid) preprocessing.
//   - LargestAnchoredRect: the unconstrained variant that ignores the
//     interior entirely and just maximizes the pair bounding box.
//
// Complexity:
//
//	– NewRegion:     O(g²) for g = 2·(vertices)+2 critical coordinates per axis.
//	– RectAreaSum:   O(1).
//	– MaxRectangle:  O(n²) after construction.
//	– Memory:        O(g²).
//
// Fewer than two points is a defined empty result (area 0), not an error.
//
// Errors (sentinel):
//
//	– ErrBadPoint     malformed coordinate line.
//	– ErrDiagonalEdge consecutive vertices differ in both coordinates.
//
// For usage see example_test.go in this package.
package orthopoly
