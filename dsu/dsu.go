// Package dsu implements the disjoint-set forest used by the clustering
// engines. See doc.go for the design rationale.
package dsu

import "sort"

// DSU is a disjoint-set forest over indices 0..n-1.
// The zero value is an empty forest; use New to size one.
type DSU struct {
	parent []int // parent[i] == i marks a root
	size   []int // size[r] is meaningful only while r is a root
	count  int   // number of live components
}

// New returns a forest of n singleton sets. n == 0 yields a valid empty
// forest on which Count reports 0 and ComponentSizes returns an empty slice.
// Complexity: O(n).
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len reports the total number of elements in the forest.
// Complexity: O(1).
func (d *DSU) Len() int {
	return len(d.parent)
}

// Count reports the number of live components.
// Complexity: O(1).
func (d *DSU) Count() int {
	return d.count
}

// Find returns the canonical root of x's component, compressing the path as
// it walks: every visited node is re-pointed at its grandparent.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the components of a and b, attaching the smaller tree under
// the larger tree's root (sizes add; on a tie either root may win).
// It reports whether a merge actually happened — false means a and b were
// already in the same component.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Size returns the number of elements in x's component.
// Complexity: O(α(n)) amortized.
func (d *DSU) Size(x int) int {
	return d.size[d.Find(x)]
}

// ComponentSizes returns the sizes of all live components, sorted descending.
// The sum of the returned sizes always equals Len().
// Complexity: O(n α(n) + c log c).
func (d *DSU) ComponentSizes() []int {
	sizes := make([]int, 0, d.count)
	for i := range d.parent {
		if d.Find(i) == i {
			sizes = append(sizes, d.size[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}
