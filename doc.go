// Package lvlquest is a collection of small, deterministic puzzle engines —
// pure in-memory computations that turn a list of text lines into a single
// integer answer.
//
// 🚀 What is lvlquest?
//
//	A library of independent, stateless solvers sharing one discipline:
//		• dsu/       — array-backed disjoint-set forest (union by size, path compression)
//		• cluster/   — incremental clustering of 3D points over distance-ranked edges
//		• orthopoly/ — orthogonal polygon interior area via coordinate compression
//		• intervals/ — inclusive integer interval merging and coverage counting
//		• beams/     — downward beam-splitting simulation over a character grid
//		• input/     — injected data sources (local day files, credentials)
//
// ✨ Why choose lvlquest?
//
//   - Deterministic – identical input always yields identical output
//   - Pure – no I/O, no hidden state, no goroutines inside the engines
//   - Explicit – sentinel errors per package, no panics on bad input
//   - Small API – each engine is a handful of functions over plain slices
//
// Each engine package carries its own doc.go with the full complexity and
// error catalogue. The cmd/lvlquest runner wires engines to local input
// files; the engines themselves never touch the filesystem.
//
//	go get github.com/katalvlaran/lvlquest
package lvlquest
