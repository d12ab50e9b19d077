// Package input implements the local-file data source. See doc.go.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadDay indicates a day number outside the calendar range 1..25.
var ErrBadDay = errors.New("input: day must be between 1 and 25")

const (
	minDay = 1
	maxDay = 25
)

// Source supplies the raw text lines for a puzzle day. Implementations must
// be safe to call repeatedly; the engines never mutate the returned slices.
type Source interface {
	// Lines returns the real puzzle input for the day.
	Lines(day int) ([]string, error)
	// Example returns the day's worked example input.
	Example(day int) ([]string, error)
}

// DirSource reads puzzle text from the conventional on-disk layout:
//
//	<Root>/Day<d>/day<d>_input.txt
//	<Root>/Day<d>/day<d>_example.txt
//
// An empty Root means the current directory.
type DirSource struct {
	Root string
}

// Lines returns the day's puzzle input, one string per line, with the
// trailing newline trimmed. An empty file yields an empty slice.
func (s DirSource) Lines(day int) ([]string, error) {
	return s.read(day, "input")
}

// Example returns the day's example input with the same line conventions.
func (s DirSource) Example(day int) ([]string, error) {
	return s.read(day, "example")
}

func (s DirSource) read(day int, kind string) ([]string, error) {
	if day < minDay || day > maxDay {
		return nil, fmt.Errorf("%w: got %d", ErrBadDay, day)
	}
	path := filepath.Join(s.Root, fmt.Sprintf("Day%d", day), fmt.Sprintf("day%d_%s.txt", day, kind))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: reading %s: %w", path, err)
	}

	return splitLines(string(raw)), nil
}

// splitLines splits file content on newlines, trimming only the trailing
// newline run: interior blank lines are meaningful to several parsers.
func splitLines(raw string) []string {
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return []string{}
	}

	return strings.Split(raw, "\n")
}
