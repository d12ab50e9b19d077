package orthopoly

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoundary extracts 2D boundary vertices from comma-separated "x,y"
// lines. Blank lines and lines starting with '#' are skipped; any malformed
// remaining line fails the whole parse with ErrBadPoint.
// Complexity: O(total input length).
func ParseBoundary(lines []string) ([]Point2, error) {
	points := make([]Point2, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrBadPoint, i+1, len(fields))
		}
		x, errX := strconv.Atoi(strings.TrimSpace(fields[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(fields[1]))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadPoint, i+1, line)
		}
		points = append(points, Point2{X: x, Y: y})
	}

	return points, nil
}
