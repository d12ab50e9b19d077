// Package beams implements the splitter-grid walk. See doc.go for the model.
package beams

import (
	"errors"
	"sort"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows.
	ErrEmptyGrid = errors.New("beams: input grid must have at least one row")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("beams: all rows must have the same length")
	// ErrNoStart indicates the start marker 'S' is missing.
	ErrNoStart = errors.New("beams: start marker 'S' not found in grid")
)

const (
	markStart    = 'S'
	markSplitter = '^'
)

// Grid is an immutable splitter grid with a located start position.
type Grid struct {
	rows     []string
	width    int
	startRow int
	startCol int
}

// ParseGrid validates the raw rows and locates the start marker.
// Rows must be non-empty and rectangular; the first 'S' found (scanning
// top-to-bottom, left-to-right) is the start.
// Complexity: O(rows × cols).
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(lines[0])
	for _, row := range lines {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
	}
	rows := make([]string, len(lines))
	copy(rows, lines)

	for r, row := range rows {
		for c, cell := range row {
			if cell == markStart {
				return &Grid{rows: rows, width: width, startRow: r, startCol: c}, nil
			}
		}
	}

	return nil, ErrNoStart
}

// Splits walks the beam set down from the start and counts splitter hits.
// Beams occupying the same column merge, so the active set holds each column
// at most once and a splitter fires at most once per row.
// Complexity: O(rows × cols).
func (g *Grid) Splits() int {
	active := map[int]struct{}{g.startCol: {}}
	splits := 0

	for row := g.startRow; row < len(g.rows) && len(active) > 0; row++ {
		next := make(map[int]struct{}, len(active))
		for col := range active {
			if g.rows[row][col] != markSplitter {
				next[col] = struct{}{}
				continue
			}
			splits++
			if col-1 >= 0 {
				next[col-1] = struct{}{}
			}
			if col+1 < g.width {
				next[col+1] = struct{}{}
			}
		}
		active = next
	}

	return splits
}

// Timelines counts the distinct downward paths of a single particle.
// Each active column carries a path multiplicity; a splitter routes the
// whole multiplicity both left and right, and paths exiting through a side
// wall finish immediately. The answer is finished paths plus whatever is
// still active when the grid runs out.
// Complexity: O(rows × cols).
func (g *Grid) Timelines() int {
	active := map[int]int{g.startCol: 1}
	finished := 0

	for row := g.startRow; row < len(g.rows) && len(active) > 0; row++ {
		next := make(map[int]int, len(active))
		// Iterate columns in sorted order: map order must never reach the
		// arithmetic, even though addition happens to commute.
		for _, col := range sortedKeys(active) {
			count := active[col]
			if g.rows[row][col] != markSplitter {
				next[col] += count
				continue
			}
			for _, nc := range [2]int{col - 1, col + 1} {
				if nc >= 0 && nc < g.width {
					next[nc] += count
				} else {
					finished += count
				}
			}
		}
		active = next
	}

	for _, count := range active {
		finished += count
	}

	return finished
}

// sortedKeys returns the map's keys in ascending order.
func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
