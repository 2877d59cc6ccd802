package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/esvanberg/voctrain/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training progress and recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open state: %w", err)
		}
		defer st.Close()

		state, err := st.Load(ctx)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}

		rows := state.Rows()
		if len(rows) == 0 {
			fmt.Println("No training data yet. Run 'voctrain' to get started.")
			return nil
		}

		fmt.Printf("%-32s  %5s  %11s  %s\n", "VOCABULARY", "LEVEL", "CORRECTIONS", "STANDING")
		for _, r := range rows {
			name := filepath.Base(r.Path)
			if r.Current {
				name += " *"
			}
			standing := "training"
			switch {
			case r.Master:
				standing = "master"
			case r.Qualified:
				standing = "qualified"
			}
			fmt.Printf("%-32s  %5d  %11d  %s\n", name, r.Level, r.Modifications, standing)
		}

		attempts, err := st.RecentAttempts(ctx, 10)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %-24s  %-5s  %5s  %7s  %s\n",
			"FINISHED", "VOCABULARY", "KIND", "LEVEL", "CORRECT", "RESULT")
		for _, a := range attempts {
			result := "passed"
			if !a.Passed {
				result = "failed"
			}
			fmt.Printf("%-19s  %-24s  %-5s  %5d  %4d/%2d  %s\n",
				a.FinishedAt.Format("2006-01-02 15:04:05"),
				filepath.Base(a.VocabPath), a.Kind, a.Level, a.Correct, a.Total, result)
		}
		return nil
	},
}
