package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/esvanberg/voctrain/internal/store"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [vocabulary]",
	Short: "Forget progress for a vocabulary, or all of it",
	Long: "Reset deletes the stored level, qualification, corrections and session\n" +
		"history for the named vocabulary file. With --all the whole state file\n" +
		"is removed.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve state path: %w", err)
		}

		if resetAll {
			if len(args) > 0 {
				return fmt.Errorf("cannot combine --all with a vocabulary name")
			}
			if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove state: %w", err)
			}
			fmt.Println("All progress forgotten.")
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("name a vocabulary file, or pass --all")
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

		// Accept either the stored path or just the base name.
		target := ""
		for path := range state.Vocabs {
			if path == args[0] || filepath.Base(path) == args[0] {
				target = path
				break
			}
		}
		if target == "" {
			return fmt.Errorf("no progress recorded for %q", args[0])
		}

		if err := st.DeleteVocab(ctx, target); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		fmt.Printf("Progress for %s forgotten.\n", filepath.Base(target))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "Forget progress for every vocabulary")
}
