package cluster

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePoints extracts 3D points from comma-separated "x,y,z" lines.
// Blank lines are skipped; any malformed line fails the whole parse with
// ErrBadPoint — there is no partial recovery. An input with no point lines
// parses successfully into an empty slice.
// Complexity: O(total input length).
func ParsePoints(lines []string) ([]Point3, error) {
	points := make([]Point3, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrBadPoint, i+1, len(fields))
		}
		var p Point3
		for fi, dst := range []*int{&p.X, &p.Y, &p.Z} {
			v, err := strconv.Atoi(strings.TrimSpace(fields[fi]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d: %q is not an integer", ErrBadPoint, i+1, fi+1, fields[fi])
			}
			*dst = v
		}
		points = append(points, p)
	}

	return points, nil
}
