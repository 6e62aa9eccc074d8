package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/seed"
	"github.com/jfarleigh/certrun/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled sample exam into the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		exam, created, err := seed.Run(ctx, bank.NewService(s.BankRepo()))
		if err != nil {
			return fmt.Errorf("seed sample exam: %w", err)
		}
		if !created {
			fmt.Println("Sample data already exists, skipping.")
			return nil
		}

		fmt.Printf("Seeded %q with %d questions.\n", exam.Name, exam.QuestionCount)
		return nil
	},
}
