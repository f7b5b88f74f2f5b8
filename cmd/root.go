package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "theoryprep",
	Short: "Driving theory practice tests in your terminal",
	Long:  "TheoryPrep — terminal app for practising driving theory test questions with per-category progress tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides THEORYPREP_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (overrides THEORYPREP_BANK env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then THEORYPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadBank loads the question bank from --bank, then THEORYPREP_BANK,
// falling back to the embedded bank.
func loadBank(cmd *cobra.Command) (*bank.File, bank.LoadReport, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		path = os.Getenv("THEORYPREP_BANK")
	}
	if path == "" {
		return bank.Default()
	}
	return bank.LoadFile(path)
}

// reportSkipped warns on stderr when a bank load dropped records.
func reportSkipped(report bank.LoadReport) {
	if report.Malformed > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d malformed question(s)\n", report.Malformed)
	}
	if report.Duplicates > 0 {
		fmt.Fprintf(os.Stderr, "warning: skipped %d duplicate question(s)\n", report.Duplicates)
	}
}
