package orthopoly

// LargestAnchoredRect returns the maximum inclusive unit-cell area of the
// axis-aligned bounding box of any two points, ignoring the polygon interior
// entirely. Fewer than two points returns 0.
// Complexity: O(n²).
func LargestAnchoredRect(points []Point2) int {
	best := 0
	for i, p := range points {
		for _, q := range points[i+1:] {
			area := (absDiff(p.X, q.X) + 1) * (absDiff(p.Y, q.Y) + 1)
			if area > best {
				best = area
			}
		}
	}

	return best
}

// MaxRectangle returns the maximum inclusive unit-cell area of a rectangle
// anchored by two boundary vertices that lies entirely within the polygon
// (boundary and interior). A candidate is valid iff its allowed area equals
// its full area — any shortfall means exterior cells leaked in. Ties keep
// the first maximum found; fewer than two vertices returns 0.
// Complexity: O(n²) with O(1) validation per pair.
func (r *Region) MaxRectangle() int {
	best := 0
	for i, p := range r.verts {
		for _, q := range r.verts[i+1:] {
			area := (absDiff(p.X, q.X) + 1) * (absDiff(p.Y, q.Y) + 1)
			if area <= best {
				continue // cannot improve, skip the query
			}
			if r.RectAreaSum(min(p.X, q.X), max(p.X, q.X), min(p.Y, q.Y), max(p.Y, q.Y)) == area {
				best = area
			}
		}
	}

	return best
}

// absDiff returns |a-b| without branching on sign at the call sites.
func absDiff(a, b int) int {
	if a < b {
		return b - a
	}

	return a - b
}
