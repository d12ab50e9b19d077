package main

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlquest/beams"
	"github.com/katalvlaran/lvlquest/cluster"
	"github.com/katalvlaran/lvlquest/input"
	"github.com/katalvlaran/lvlquest/intervals"
	"github.com/katalvlaran/lvlquest/orthopoly"
)

var solveFlags struct {
	day         int
	inputDir    string
	example     bool
	connections int
}

// dayRunner computes both answers for one day from its raw lines.
type dayRunner func(lines []string, connections int) (part1, part2 int, err error)

// dayRunners maps day numbers to their engines.
var dayRunners = map[int]dayRunner{
	5: runIntervals,
	7: runBeams,
	8: runCluster,
	9: runOrthopoly,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle day from local input files",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve()
	},
}

func init() {
	solveCmd.Flags().IntVar(&solveFlags.day, "day", 0, "day to solve (required)")
	solveCmd.Flags().StringVar(&solveFlags.inputDir, "input", "", "root directory holding Day<d> folders")
	solveCmd.Flags().BoolVar(&solveFlags.example, "example", false, "use the day's example input")
	solveCmd.Flags().IntVar(&solveFlags.connections, "connections", 0, "edge budget for the clustering day")
	_ = solveCmd.MarkFlagRequired("day")
	rootCmd.AddCommand(solveCmd)
}

func runSolve() error {
	cfg, err := loadFileConfig(configFileName)
	if err != nil {
		return err
	}
	dir := solveFlags.inputDir
	if dir == "" {
		dir = cfg.InputDir
	}
	connections := solveFlags.connections
	if connections == 0 {
		connections = cfg.Connections
	}
	if connections == 0 {
		connections = defaultConnections
	}

	run, ok := dayRunners[solveFlags.day]
	if !ok {
		return fmt.Errorf("no engine wired for day %d (available: %v)", solveFlags.day, wiredDays())
	}

	src := input.DirSource{Root: dir}
	lines, err := loadLines(src, solveFlags.day, solveFlags.example)
	if err != nil {
		return err
	}

	part1, part2, err := run(lines, connections)
	if err != nil {
		return fmt.Errorf("day %d: %w", solveFlags.day, err)
	}

	fmt.Printf("Day %d\n", solveFlags.day)
	fmt.Printf("  Part 1: %s\n", aurora.Bold(part1))
	fmt.Printf("  Part 2: %s\n", aurora.Bold(part2))

	return nil
}

func loadLines(src input.Source, day int, example bool) ([]string, error) {
	if example {
		return src.Example(day)
	}

	return src.Lines(day)
}

func wiredDays() []int {
	days := make([]int, 0, len(dayRunners))
	for d := range dayRunners {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}

// runIntervals answers day 5: IDs covered by at least one range, and the
// distinct integers covered once ranges are merged.
func runIntervals(lines []string, _ int) (int, int, error) {
	ivs, ids := intervals.Parse(lines)

	return intervals.CountCovered(ids, ivs), int(intervals.TotalLength(ivs)), nil
}

// runBeams answers day 7: splitter hits, then distinct timelines.
func runBeams(lines []string, _ int) (int, int, error) {
	grid, err := beams.ParseGrid(lines)
	if err != nil {
		return 0, 0, err
	}

	return grid.Splits(), grid.Timelines(), nil
}

// runCluster answers day 8: product of the three largest components after
// the edge budget, then the x-product of the final connecting pair.
func runCluster(lines []string, connections int) (int, int, error) {
	points, err := cluster.ParsePoints(lines)
	if err != nil {
		return 0, 0, err
	}
	if len(points) == 0 {
		return 0, 0, nil
	}

	sizes := cluster.SizesAfterConnections(points, connections)
	part1 := cluster.TopSizesProduct(sizes, 3)

	p, q, err := cluster.FinalConnection(points)
	if err != nil {
		return 0, 0, err
	}

	return part1, p.X * q.X, nil
}

// runOrthopoly answers day 9: the unconstrained pair bounding box, then the
// largest rectangle fully inside the boundary.
func runOrthopoly(lines []string, _ int) (int, int, error) {
	points, err := orthopoly.ParseBoundary(lines)
	if err != nil {
		return 0, 0, err
	}

	region, err := orthopoly.NewRegion(points)
	if err != nil {
		return 0, 0, err
	}

	return orthopoly.LargestAnchoredRect(points), region.MaxRectangle(), nil
}
