// Package cluster defines the point type and sentinel errors for the
// incremental clustering engine.
package cluster

import "errors"

// ErrBadPoint indicates a malformed coordinate line: not exactly three
// comma-separated fields, or a field that is not an integer.
// The whole parse fails; no partial point list is returned.
var ErrBadPoint = errors.New("cluster: malformed point line")

// ErrTooFewPoints indicates that FinalConnection was asked to connect fewer
// than two points, so no final merging edge exists.
var ErrTooFewPoints = errors.New("cluster: need at least two points")

// ErrNotConnected indicates that processing every edge of a complete graph
// failed to produce a single component. This cannot happen for valid input;
// it signals an internal defect and must not be silently handled.
var ErrNotConnected = errors.New("cluster: graph did not become fully connected")

// Point3 is an immutable 3D integer point. Points are identified by their
// index in the input-ordered sequence, not by value: duplicates are distinct.
type Point3 struct {
	X, Y, Z int
}

// DistSq returns the squared Euclidean distance to q.
// Squared distances preserve ordering and avoid floating point entirely.
// Complexity: O(1).
func (p Point3) DistSq(q Point3) int {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z

	return dx*dx + dy*dy + dz*dz
}

// edge is a derived pair weighted by squared distance. Edges are consumed
// once, sorted ascending, and discarded.
type edge struct {
	weight int
	a, b   int // indices into the point slice, a < b
}
