package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asandhu/theoryprep/internal/bank"
	"github.com/asandhu/theoryprep/internal/category"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
	Long:  "Load the question bank, report malformed and duplicate records, and show how many questions each category has.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankFile, report, err := loadBank(cmd)
		if err != nil {
			return fmt.Errorf("load question bank: %w", err)
		}

		if bankFile.Meta.Title != "" {
			fmt.Printf("%s (version %s)\n\n", bankFile.Meta.Title, bankFile.Meta.Version)
		}

		fmt.Printf("Loaded:     %d\n", report.Loaded)
		fmt.Printf("Duplicates: %d\n", report.Duplicates)
		fmt.Printf("Malformed:  %d\n\n", report.Malformed)

		counts := bank.CountByCategory(bankFile.Questions)
		for _, c := range category.All() {
			fmt.Printf("%-28s %4d\n", c.Label(), counts[c])
		}
		return nil
	},
}
