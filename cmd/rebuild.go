package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfarleigh/certrun/internal/store"
)

var rebuildStatsCmd = &cobra.Command{
	Use:   "rebuild-stats",
	Short: "Rebuild the per-question stats cache from the attempt log",
	Long: "Refolds every question's attempt counters and rolling-average time from " +
		"the append-only attempt log. Useful after restoring a database from backup " +
		"or editing rows by hand.",
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
		if err := s.HistoryRepo().RebuildStats(ctx); err != nil {
			return fmt.Errorf("rebuild stats: %w", err)
		}

		fmt.Println("Stats cache rebuilt.")
		return nil
	},
}
