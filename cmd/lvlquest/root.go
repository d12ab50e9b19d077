package main

import "github.com/spf13/cobra"

// rootCmd is the base command; subcommands attach themselves in init().
var rootCmd = &cobra.Command{
	Use:           "lvlquest",
	Short:         "Deterministic puzzle engines over local day inputs",
	Long:          "lvlquest dispatches local puzzle input files to the library's solver engines\nand prints each day's two integer answers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}
