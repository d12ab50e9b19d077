// Package cluster implements an incremental clustering engine over 3D integer
// points: every unordered pair of points becomes an edge weighted by squared
// Euclidean distance, edges are processed in ascending weight order through a
// disjoint-set forest, and the evolving partition answers two questions.
//
// What & Why
//
//   - SizesAfterConnections(points, k):
//     apply the k lowest-weight edges (a redundant edge — endpoints already
//     connected — still consumes budget) and report the component sizes,
//     sorted descending. This is the "connect the k closest pairs" view of
//     single-linkage clustering.
//
//   - FinalConnection(points):
//     apply edges ascending until a single component remains, and report the
//     two endpoints of the merge that completed connectivity. On a complete
//     graph this always terminates; failure to connect indicates a logic
//     defect, never bad input, and surfaces as ErrNotConnected.
//
// Determinism
//
// Edges are generated in index order (i < j) and sorted with a stable sort,
// so equal-weight edges are applied in generation order. Identical input
// always yields identical output; points with duplicate coordinates remain
// distinct entities, identified by their position in the input.
//
// Complexity:
//
//	– Edge generation: O(n²) time and memory for C(n,2) edges.
//	– Sorting:         O(n² log n).
//	– Union pass:      O(n² α(n)).
//
// Inputs are puzzle-sized (low thousands of points at most), so the quadratic
// edge list is acceptable and no parallelism is involved.
//
// Errors (sentinel):
//
//	– ErrBadPoint     malformed coordinate line (wrong field count, non-integer).
//	– ErrTooFewPoints FinalConnection needs at least two points.
//	– ErrNotConnected internal invariant violation; unreachable for valid input.
//
// For usage see example_test.go in this package.
package cluster
