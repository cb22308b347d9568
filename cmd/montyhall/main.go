package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "montyhall",
		Short: "Monte Carlo study of the Monty Hall problem",
		Long: `montyhall simulates the Monty Hall game show problem over many games
to compare always switching against never switching. Games with more and
more doors are simulated to exaggerate the difference.

Run without arguments to play the full study (3 to 30 doors) and write
the theoretical and empirical win rates to montyHall.csv.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: built-in study parameters)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newTheoryCmd(),
		newConfigCmd(),
	)

	return rootCmd
}
