// Package orthopoly builds the compressed-grid Region and its prefix-sum
// table. See doc.go for the construction pipeline.
package orthopoly

import (
	"fmt"
	"sort"
)

// NewRegion builds the compressed-grid view of the orthogonal polygon whose
// boundary is the ordered cycle points (wrapping last→first).
//
// Steps:
//  1. Validate axis alignment of every edge (ErrDiagonalEdge otherwise).
//  2. Compress coordinates: vertex v and v+1 per axis, plus a one-unit
//     padding frame beyond the bounding box.
//  3. Mark boundary tiles, flood-fill the exterior from the frame, infer
//     the interior, and build the prefix-sum table.
//
// Fewer than two points yields a degenerate Region whose queries return 0.
// Complexity: O(n + g²) for g critical coordinates per axis.
func NewRegion(points []Point2) (*Region, error) {
	r := &Region{verts: points}
	n := len(points)
	if n < 2 {
		return r, nil
	}

	for i, p := range points {
		q := points[(i+1)%n]
		if p.X != q.X && p.Y != q.Y {
			return nil, fmt.Errorf("%w: vertices %d and %d: (%d,%d)-(%d,%d)",
				ErrDiagonalEdge, i, (i+1)%n, p.X, p.Y, q.X, q.Y)
		}
	}

	r.compress()
	r.markBoundary()
	r.fillInterior()
	r.buildPrefix()

	return r, nil
}

// compress builds the critical coordinate axes and tile dimensions.
// Every vertex contributes v and v+1 so that the closed unit cell at v is
// bounded by critical coordinates on both sides; min−1 and max+2 add the
// exterior padding frame.
func (r *Region) compress() {
	minX, maxX := r.verts[0].X, r.verts[0].X
	minY, maxY := r.verts[0].Y, r.verts[0].Y
	for _, p := range r.verts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	xsSet := map[int]struct{}{minX - 1: {}, maxX + 2: {}}
	ysSet := map[int]struct{}{minY - 1: {}, maxY + 2: {}}
	for _, p := range r.verts {
		xsSet[p.X], xsSet[p.X+1] = struct{}{}, struct{}{}
		ysSet[p.Y], ysSet[p.Y+1] = struct{}{}, struct{}{}
	}

	r.xs, r.xIndex = sortedAxis(xsSet)
	r.ys, r.yIndex = sortedAxis(ysSet)

	r.widths = make([]int, len(r.xs)-1)
	for i := range r.widths {
		r.widths[i] = r.xs[i+1] - r.xs[i]
	}
	r.heights = make([]int, len(r.ys)-1)
	for i := range r.heights {
		r.heights[i] = r.ys[i+1] - r.ys[i]
	}

	r.allowed = make([][]bool, len(r.widths))
	for i := range r.allowed {
		r.allowed[i] = make([]bool, len(r.heights))
	}
}

// sortedAxis flattens a critical-coordinate set into a strictly increasing
// slice plus its value→index lookup.
func sortedAxis(set map[int]struct{}) ([]int, map[int]int) {
	axis := make([]int, 0, len(set))
	for v := range set {
		axis = append(axis, v)
	}
	sort.Ints(axis)
	index := make(map[int]int, len(axis))
	for i, v := range axis {
		index[v] = i
	}

	return axis, index
}

// markBoundary marks every tile touched by a boundary edge as allowed.
// A vertical edge at x spanning y1..y2 covers the tile column xIndex[x]
// between yIndex[min] and yIndex[max+1); horizontal edges mirror this.
func (r *Region) markBoundary() {
	n := len(r.verts)
	for i, p := range r.verts {
		q := r.verts[(i+1)%n]
		if p.X == q.X {
			ix := r.xIndex[p.X]
			lo, hi := min(p.Y, q.Y), max(p.Y, q.Y)
			for iy := r.yIndex[lo]; iy < r.yIndex[hi+1]; iy++ {
				r.allowed[ix][iy] = true
			}
		} else {
			iy := r.yIndex[p.Y]
			lo, hi := min(p.X, q.X), max(p.X, q.X)
			for ix := r.xIndex[lo]; ix < r.xIndex[hi+1]; ix++ {
				r.allowed[ix][iy] = true
			}
		}
	}
}

// fillInterior flood-fills the exterior from the compressed grid's outer
// frame (breadth-first, 4-directional, explicit queue) and then flips every
// unreached tile to allowed: what the exterior cannot reach is interior or
// boundary.
func (r *Region) fillInterior() {
	w, h := len(r.widths), len(r.heights)
	visited := make([][]bool, w)
	for i := range visited {
		visited[i] = make([]bool, h)
	}

	queue := make([][2]int, 0, 2*(w+h))
	enqueue := func(ix, iy int) {
		if ix < 0 || ix >= w || iy < 0 || iy >= h || visited[ix][iy] || r.allowed[ix][iy] {
			return
		}
		visited[ix][iy] = true
		queue = append(queue, [2]int{ix, iy})
	}

	for ix := 0; ix < w; ix++ {
		enqueue(ix, 0)
		enqueue(ix, h-1)
	}
	for iy := 0; iy < h; iy++ {
		enqueue(0, iy)
		enqueue(w-1, iy)
	}

	for head := 0; head < len(queue); head++ {
		t := queue[head]
		enqueue(t[0]+1, t[1])
		enqueue(t[0]-1, t[1])
		enqueue(t[0], t[1]+1)
		enqueue(t[0], t[1]-1)
	}

	for ix := 0; ix < w; ix++ {
		for iy := 0; iy < h; iy++ {
			if !visited[ix][iy] {
				r.allowed[ix][iy] = true
			}
		}
	}
}

// buildPrefix computes the inclusive-exclusive 2D prefix sums of allowed
// tile areas: prefix[ix][iy] is the allowed area of tiles [0,ix)×[0,iy).
func (r *Region) buildPrefix() {
	w, h := len(r.widths), len(r.heights)
	r.prefix = make([][]int, w+1)
	r.prefix[0] = make([]int, h+1)
	for ix := 1; ix <= w; ix++ {
		r.prefix[ix] = make([]int, h+1)
		rowSum := 0
		for iy := 1; iy <= h; iy++ {
			if r.allowed[ix-1][iy-1] {
				rowSum += r.widths[ix-1] * r.heights[iy-1]
			}
			r.prefix[ix][iy] = r.prefix[ix-1][iy] + rowSum
		}
	}
}

// RectAreaSum returns the total allowed area (boundary plus interior unit
// cells) within the closed rectangle [x0..x1]×[y0..y1] in original
// coordinates. Corner coordinates must come from boundary vertices — the
// only coordinates for which compression retains both cell edges. Any other
// corner, or a degenerate Region, returns 0.
// Complexity: O(1).
func (r *Region) RectAreaSum(x0, x1, y0, y1 int) int {
	if r.prefix == nil {
		return 0
	}
	lx, okLX := r.xIndex[x0]
	rx, okRX := r.xIndex[x1+1]
	ly, okLY := r.yIndex[y0]
	ry, okRY := r.yIndex[y1+1]
	if !okLX || !okRX || !okLY || !okRY {
		return 0
	}

	return r.prefix[rx][ry] - r.prefix[lx][ry] - r.prefix[rx][ly] + r.prefix[lx][ly]
}
