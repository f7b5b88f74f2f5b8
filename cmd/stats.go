package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asandhu/theoryprep/internal/category"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankFile, report, err := loadBank(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}
		reportSkipped(report)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		persisted, err := st.ProgressRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		tracker := progress.Reconcile(bankFile.Questions, persisted)

		fmt.Printf("%-28s %9s %9s %9s\n", "Category", "Questions", "Answered", "Correct")
		var answered, correct int
		for _, c := range category.All() {
			e := tracker.Get(c)
			answered += e.Answered
			correct += e.Correct
			fmt.Printf("%-28s %9d %9d %9d\n", c.Label(), e.Total, e.Answered, e.Correct)
		}

		fmt.Printf("\nTotal: %d questions, %d answered, %d correct\n",
			tracker.TotalQuestions(), answered, correct)
		return nil
	},
}
