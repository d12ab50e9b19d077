// Package intervals is a small toolkit for inclusive integer intervals:
// normalization, merging, coverage counting and total-length measurement.
//
// What & Why
//
// Puzzle inputs frequently describe quantities as inclusive ranges ("3-7")
// mixed with loose IDs. Two questions recur:
//
//   - CountCovered: how many IDs fall inside at least one interval?
//   - TotalLength:  how many distinct integers do the intervals cover in
//     total, once overlaps and adjacency are coalesced?
//
// Merging treats touching intervals as one: [1,3] and [4,6] coalesce because
// no integer separates them (the gap test is Lo > prev.Hi+1, not ≥).
//
// The types are generic over any integer type (constraints.Integer), so the
// same merge logic serves puzzle-sized ints and 64-bit ID spaces alike.
//
// Complexity:
//
//	– Merge / TotalLength: O(n log n) for the sort, O(n) after.
//	– CountCovered:        O(ids × intervals) — puzzle-sized, no index needed.
//
// Parsing is deliberately tolerant, matching the messy-input convention:
// fragments that do not parse are skipped rather than failing the batch.
package intervals
