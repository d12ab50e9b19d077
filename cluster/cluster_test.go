package cluster_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlquest/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePoints_Valid verifies parsing of well-formed input, including
// blank lines and surrounding whitespace.
func TestParsePoints_Valid(t *testing.T) {
	lines := []string{
		"1,2,3",
		"",
		"  4 , 5 , 6  ",
		"-7,0,7",
	}

	points, err := cluster.ParsePoints(lines)
	require.NoError(t, err)
	assert.Equal(t, []cluster.Point3{
		{X: 1, Y: 2, Z: 3},
		{X: 4, Y: 5, Z: 6},
		{X: -7, Y: 0, Z: 7},
	}, points)
}

// TestParsePoints_Malformed verifies that any bad line fails the whole parse.
func TestParsePoints_Malformed(t *testing.T) {
	cases := map[string][]string{
		"wrong field count": {"1,2,3", "4,5"},
		"non-integer field": {"1,2,3", "4,five,6"},
		"trailing comma":    {"1,2,3,"},
	}
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			points, err := cluster.ParsePoints(lines)
			assert.Nil(t, points)
			assert.ErrorIs(t, err, cluster.ErrBadPoint)
		})
	}
}

// TestParsePoints_Empty verifies that an all-blank input parses to zero
// points without error (the caller decides what emptiness means).
func TestParsePoints_Empty(t *testing.T) {
	points, err := cluster.ParsePoints([]string{"", "  "})
	require.NoError(t, err)
	assert.Empty(t, points)
}

// TestSizesAfterConnections_ClosestPairFirst reproduces the canonical small
// case: of three points the two nearest merge first.
func TestSizesAfterConnections_ClosestPairFirst(t *testing.T) {
	points := []cluster.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 5},
	}

	sizes := cluster.SizesAfterConnections(points, 1)
	assert.Equal(t, []int{2, 1}, sizes)
}

// TestSizesAfterConnections_RedundantEdgeConsumesBudget verifies that an
// edge joining already-connected points still counts toward k.
func TestSizesAfterConnections_RedundantEdgeConsumesBudget(t *testing.T) {
	// Three collinear points 0—1—2, then a distant fourth. Ascending edges:
	// (0,1) d=1, (1,2) d=1, (0,2) d=4, then edges to the far point.
	// The third edge closes a triangle and must merge nothing new.
	points := []cluster.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 100, Y: 0, Z: 0},
	}

	assert.Equal(t, []int{3, 1}, cluster.SizesAfterConnections(points, 2))
	assert.Equal(t, []int{3, 1}, cluster.SizesAfterConnections(points, 3),
		"redundant third edge must not connect the far point")
}

// TestSizesAfterConnections_Bounds verifies the degenerate budgets and inputs.
func TestSizesAfterConnections_Bounds(t *testing.T) {
	points := []cluster.Point3{{X: 0}, {X: 1}, {X: 2}}

	// k ≥ edge count applies everything: one component.
	assert.Equal(t, []int{3}, cluster.SizesAfterConnections(points, 100))
	// k ≤ 0 applies nothing: all singletons.
	assert.Equal(t, []int{1, 1, 1}, cluster.SizesAfterConnections(points, 0))
	assert.Equal(t, []int{1, 1, 1}, cluster.SizesAfterConnections(points, -4))
	// No points, no components.
	assert.Empty(t, cluster.SizesAfterConnections(nil, 10))
	// A single point stays a singleton regardless of budget.
	assert.Equal(t, []int{1}, cluster.SizesAfterConnections(points[:1], 10))
}

// TestSizesAfterConnections_SumInvariant verifies that component sizes sum
// to n for every budget on a deterministic random point set.
func TestSizesAfterConnections_SumInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	points := make([]cluster.Point3, 30)
	for i := range points {
		points[i] = cluster.Point3{X: r.Intn(50), Y: r.Intn(50), Z: r.Intn(50)}
	}

	maxEdges := len(points) * (len(points) - 1) / 2
	for k := 0; k <= maxEdges; k += 29 {
		total := 0
		for _, s := range cluster.SizesAfterConnections(points, k) {
			total += s
		}
		assert.Equal(t, len(points), total, "k=%d", k)
	}
}

// TestFinalConnection_TwoPoints verifies that the unique edge of a 2-point
// set is the final connection.
func TestFinalConnection_TwoPoints(t *testing.T) {
	a := cluster.Point3{X: 3, Y: 1, Z: 1}
	b := cluster.Point3{X: 7, Y: 2, Z: 2}

	p, q, err := cluster.FinalConnection([]cluster.Point3{a, b})
	require.NoError(t, err)
	assert.Equal(t, a, p)
	assert.Equal(t, b, q)
}

// TestFinalConnection_LastMerge verifies that the reported endpoints belong
// to the edge that completed connectivity, not merely the heaviest edge.
func TestFinalConnection_LastMerge(t *testing.T) {
	// Two tight pairs far apart; the bridge between the pairs connects last.
	points := []cluster.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 100, Y: 0, Z: 0},
		{X: 101, Y: 0, Z: 0},
	}

	p, q, err := cluster.FinalConnection(points)
	require.NoError(t, err)
	// The cheapest bridge is 1↔100; it merges the two pairs into one.
	assert.Equal(t, cluster.Point3{X: 1}, p)
	assert.Equal(t, cluster.Point3{X: 100}, q)
}

// TestFinalConnection_TooFew verifies the defined failure for tiny inputs.
func TestFinalConnection_TooFew(t *testing.T) {
	_, _, err := cluster.FinalConnection(nil)
	assert.ErrorIs(t, err, cluster.ErrTooFewPoints)

	_, _, err = cluster.FinalConnection([]cluster.Point3{{X: 1}})
	assert.ErrorIs(t, err, cluster.ErrTooFewPoints)
}

// TestFinalConnection_Deterministic verifies idempotence: repeated runs over
// identical input give identical answers.
func TestFinalConnection_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	points := make([]cluster.Point3, 40)
	for i := range points {
		points[i] = cluster.Point3{X: r.Intn(20), Y: r.Intn(20), Z: r.Intn(20)}
	}

	p1, q1, err1 := cluster.FinalConnection(points)
	p2, q2, err2 := cluster.FinalConnection(points)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, q1, q2)
}

// TestTopSizesProduct verifies the derived-answer helper.
func TestTopSizesProduct(t *testing.T) {
	assert.Equal(t, 60, cluster.TopSizesProduct([]int{5, 4, 3, 2}, 3))
	assert.Equal(t, 20, cluster.TopSizesProduct([]int{5, 4}, 3), "short input multiplies what exists")
	assert.Equal(t, 1, cluster.TopSizesProduct(nil, 3), "empty selection is the identity")
	assert.Equal(t, 1, cluster.TopSizesProduct([]int{5, 4}, 0))
}
