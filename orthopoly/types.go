// Package orthopoly defines the vertex type, the Region engine state and
// sentinel errors for the orthogonal polygon area engine.
package orthopoly

import "errors"

// ErrBadPoint indicates a malformed coordinate line: not exactly two
// comma-separated integer fields. The whole parse fails.
var ErrBadPoint = errors.New("orthopoly: malformed point line")

// ErrDiagonalEdge indicates that two consecutive boundary vertices differ in
// both coordinates. Only axis-aligned edges are representable.
var ErrDiagonalEdge = errors.New("orthopoly: boundary edges must be axis-aligned")

// Point2 is an immutable 2D integer point on the polygon boundary.
type Point2 struct {
	X, Y int
}

// Region is the compressed-grid view of an orthogonal polygon's plane:
// which tiles belong to the boundary or interior, and a prefix-sum table for
// O(1) rectangle-area queries. Immutable after NewRegion.
//
// A Region built from fewer than two points is degenerate: it has no grid
// and every query returns 0.
type Region struct {
	verts []Point2

	// xs/ys are the strictly increasing critical coordinates; tile (ix,iy)
	// spans [xs[ix], xs[ix+1]) × [ys[iy], ys[iy+1]).
	xs, ys         []int
	xIndex, yIndex map[int]int
	widths         []int // widths[ix] = xs[ix+1] - xs[ix]
	heights        []int // heights[iy] = ys[iy+1] - ys[iy]

	allowed [][]bool // allowed[ix][iy]: tile is boundary or interior
	prefix  [][]int  // prefix[ix][iy]: allowed area of tiles [0,ix)×[0,iy)
}

// Vertices returns the boundary vertices the Region was built from, in input
// order. The slice is shared; treat it as read-only.
func (r *Region) Vertices() []Point2 {
	return r.verts
}
