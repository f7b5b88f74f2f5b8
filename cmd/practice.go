package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asandhu/theoryprep/internal/app"
	"github.com/asandhu/theoryprep/internal/progress"
	"github.com/asandhu/theoryprep/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func runPractice(cmd *cobra.Command) error {
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

	repo := st.ProgressRepo()
	persisted, err := repo.Latest(cmd.Context())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	tracker := progress.Reconcile(bankFile.Questions, persisted)

	return app.Run(app.Options{
		Bank:    bankFile,
		Tracker: tracker,
		Repo:    repo,
	})
}
