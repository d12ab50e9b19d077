package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlquest/input"
)

var secretsFlags struct {
	cookie string
	year   string
	out    string
}

var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Write the session credentials file",
	Long:  "Writes secret.json with the session cookie and puzzle year.\nThe file is created with owner-only permissions (0600).",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := input.Secrets{Cookie: secretsFlags.cookie, Year: secretsFlags.year}
		if err := input.WriteSecrets(secretsFlags.out, s); err != nil {
			return err
		}
		fmt.Printf("Wrote %s for year %s\n", aurora.Bold(secretsFlags.out), aurora.Bold(s.Year))

		return nil
	},
}

func init() {
	secretsCmd.Flags().StringVar(&secretsFlags.cookie, "cookie", "", "session cookie value (required)")
	secretsCmd.Flags().StringVar(&secretsFlags.year, "year", strconv.Itoa(time.Now().Year()), "puzzle year")
	secretsCmd.Flags().StringVar(&secretsFlags.out, "out", input.SecretFileName, "output path")
	_ = secretsCmd.MarkFlagRequired("cookie")
	rootCmd.AddCommand(secretsCmd)
}
