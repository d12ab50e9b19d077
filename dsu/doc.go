// Package dsu provides an array-backed disjoint-set forest (union-find)
// over the index space 0..n-1.
//
// What & Why
//
//   - What is a disjoint-set forest?
//     A partition of n elements into disjoint sets, supporting two operations:
//     Find (which set does x belong to?) and Union (merge two sets).
//     With union by size and path compression both run in near-constant
//     amortized time, O(α(n)), where α is the inverse Ackermann function.
//
//   - Why it matters:
//     Union-find is the backbone of Kruskal-style edge processing, incremental
//     clustering, connected-component labelling and cycle detection. The
//     cluster package builds its whole engine on top of this type.
//
// Design
//
//   - Elements are dense integer indices, not values: callers identify their
//     own entities by position. Duplicate payloads therefore stay distinct.
//   - Union by size: the smaller tree is attached under the larger tree's
//     root; on a tie either may win and the sizes add.
//   - Path compression: Find hops every visited node to its grandparent,
//     halving path length opportunistically without a second pass.
//
// Complexity:
//
//	– Find / Union / Size: O(α(n)) amortized.
//	– ComponentSizes:      O(n α(n) + c log c) for c components.
//	– Memory:              O(n) — two int slices.
//
// Index discipline: passing an index outside 0..n-1 is a programmer error and
// panics, mirroring slice indexing. Invalid input never reaches this package;
// parsers upstream reject it first.
package dsu
