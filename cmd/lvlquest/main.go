// Command lvlquest runs the puzzle engines against local day inputs and
// manages the session credentials file.
//
//	lvlquest solve --day 8 --input ./puzzles --connections 1000
//	lvlquest solve --day 9 --example
//	lvlquest secrets --cookie <session-cookie> --year 2025
//
// The engines themselves live in the library packages and never touch the
// filesystem; this command is the injection point that wires a DirSource to
// a day's solver and prints the two integer answers.
package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}
