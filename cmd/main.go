package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nutritrack",
	Short: "Nutrition goals and food ledger",
	Long: `nutritrack computes calorie and macro goals from a body profile and
keeps a per-day ledger of eaten and planned foods.

Available subcommands:
  serve - Run the HTTP API
  goals - Print the goals for a profile
  token - Print a bearer token for the API`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, goalsCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
