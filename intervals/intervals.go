// Package intervals implements merging and coverage over inclusive integer
// intervals. See doc.go for semantics.
package intervals

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Interval is an inclusive integer range. Construct with New to guarantee
// the Lo ≤ Hi invariant.
type Interval[T constraints.Integer] struct {
	Lo, Hi T
}

// New returns the interval covering a..b inclusive, normalizing endpoint
// order so that Lo ≤ Hi always holds.
// Complexity: O(1).
func New[T constraints.Integer](a, b T) Interval[T] {
	if a > b {
		a, b = b, a
	}

	return Interval[T]{Lo: a, Hi: b}
}

// Contains reports whether v lies within the interval.
// Complexity: O(1).
func (iv Interval[T]) Contains(v T) bool {
	return iv.Lo <= v && v <= iv.Hi
}

// Len returns the number of integers the interval covers (Hi−Lo+1).
// Complexity: O(1).
func (iv Interval[T]) Len() T {
	return iv.Hi - iv.Lo + 1
}

// Merge coalesces the intervals into a minimal sorted set: overlapping or
// adjacent intervals (no integer gap between them) become one. The input is
// not modified; an empty input yields an empty result.
// Complexity: O(n log n).
func Merge[T constraints.Integer](ivs []Interval[T]) []Interval[T] {
	if len(ivs) == 0 {
		return nil
	}
	sorted := make([]Interval[T], len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Lo < sorted[j].Lo
	})

	merged := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if iv.Lo > last.Hi+1 {
			merged = append(merged, iv)
			continue
		}
		if iv.Hi > last.Hi {
			last.Hi = iv.Hi
		}
	}

	return merged
}

// TotalLength returns the number of distinct integers covered by the
// intervals, merging them first so overlaps are not double-counted.
// Complexity: O(n log n).
func TotalLength[T constraints.Integer](ivs []Interval[T]) T {
	var total T
	for _, iv := range Merge(ivs) {
		total += iv.Len()
	}

	return total
}

// CountCovered returns how many of the ids fall inside at least one of the
// intervals. Each id counts once no matter how many intervals cover it.
// Complexity: O(ids × intervals).
func CountCovered[T constraints.Integer](ids []T, ivs []Interval[T]) int {
	count := 0
	for _, id := range ids {
		for _, iv := range ivs {
			if iv.Contains(id) {
				count++
				break
			}
		}
	}

	return count
}
