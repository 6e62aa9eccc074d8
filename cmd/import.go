package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an exam bundle from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		allowBiased, _ := cmd.Flags().GetBool("allow-biased")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

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
		exam, err := bank.NewService(s.BankRepo()).Import(ctx, raw, allowBiased)
		if err != nil {
			var invalid *bank.ErrValidation
			if errors.As(err, &invalid) {
				fmt.Fprintln(os.Stderr, "Import rejected:")
				for _, p := range invalid.Problems {
					fmt.Fprintf(os.Stderr, "  - %s\n", p)
				}
				return fmt.Errorf("%d problem(s) found", len(invalid.Problems))
			}
			return err
		}

		fmt.Printf("Imported %q with %d questions.\n", exam.Name, exam.QuestionCount)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("allow-biased", false, "Store questions even when their answer sets fail the bias check")
}
