// Package cluster implements the incremental clustering engine: edge
// generation, the k-edge partition snapshot, and the final-connection probe.
// See doc.go for semantics and complexity.
package cluster

import (
	"sort"

	"github.com/katalvlaran/lvlquest/dsu"
)

// sortedEdges generates all C(n,2) edges weighted by squared Euclidean
// distance and sorts them ascending. The sort is stable, so equal-weight
// edges keep their generation order (i ascending, then j ascending) — this
// is what makes the whole engine deterministic.
// Complexity: O(n² log n) time, O(n²) memory.
func sortedEdges(points []Point3) []edge {
	n := len(points)
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{weight: points[i].DistSq(points[j]), a: i, b: j})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	return edges
}

// SizesAfterConnections applies the k lowest-weight edges through a
// disjoint-set forest and returns the resulting component sizes, sorted
// descending.
//
// Steps:
//  1. Generate and stable-sort all C(n,2) edges by squared distance.
//  2. Initialize one singleton component per point.
//  3. Apply the first k edges via union. An edge whose endpoints are already
//     connected is a no-op that still counts toward the k budget.
//  4. Collect component sizes, descending.
//
// k larger than the edge count applies every edge; k ≤ 0 applies none.
// No points means no components: the result is empty.
// Complexity: O(n² log n).
func SizesAfterConnections(points []Point3, k int) []int {
	forest := dsu.New(len(points))
	edges := sortedEdges(points)
	if k > len(edges) {
		k = len(edges)
	}
	for _, e := range edges[:max(k, 0)] {
		forest.Union(e.a, e.b)
	}

	return forest.ComponentSizes()
}

// FinalConnection applies edges in ascending weight order, counting only
// successful merges, and returns the two endpoints of the edge whose union
// reduced the live-component count to one.
//
// Fewer than two points: ErrTooFewPoints — there is no connecting edge.
// Exhausting all edges without reaching one component is impossible on a
// complete graph; if it happens the engine is defective and the call fails
// loudly with ErrNotConnected.
// Complexity: O(n² log n).
func FinalConnection(points []Point3) (Point3, Point3, error) {
	if len(points) < 2 {
		return Point3{}, Point3{}, ErrTooFewPoints
	}

	forest := dsu.New(len(points))
	for _, e := range sortedEdges(points) {
		if forest.Union(e.a, e.b) && forest.Count() == 1 {
			return points[e.a], points[e.b], nil
		}
	}

	// Unreachable: a complete graph on n ≥ 2 points always connects.
	return Point3{}, Point3{}, ErrNotConnected
}

// TopSizesProduct multiplies the first top entries of sizes (fewer if sizes
// is shorter). An empty selection yields the multiplicative identity, 1.
// Pair it with SizesAfterConnections, whose output is already descending.
// Complexity: O(top).
func TopSizesProduct(sizes []int, top int) int {
	if top > len(sizes) {
		top = len(sizes)
	}
	product := 1
	for _, s := range sizes[:max(top, 0)] {
		product *= s
	}

	return product
}
