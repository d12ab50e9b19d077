package intervals

import (
	"strconv"
	"strings"
)

// Parse splits raw input lines into ranges and loose IDs. A line containing
// '-' is treated as a single "a-b" range (endpoint order irrelevant); every
// other line is a comma-separated ID list. Unparsable fragments are skipped,
// never fatal — messy fringes around the numbers are expected.
// Complexity: O(total input length).
func Parse(lines []string) (ivs []Interval[int], ids []int) {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "-") {
			lo, hi, ok := parseRange(line)
			if ok {
				ivs = append(ivs, New(lo, hi))
			}
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if id, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
				ids = append(ids, id)
			}
		}
	}

	return ivs, ids
}

// parseRange extracts both endpoints of an "a-b" fragment.
func parseRange(s string) (lo, hi int, ok bool) {
	a, b, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	lo, errA := strconv.Atoi(strings.TrimSpace(a))
	hi, errB := strconv.Atoi(strings.TrimSpace(b))

	return lo, hi, errA == nil && errB == nil
}
