package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/esvanberg/voctrain/internal/app"
	"github.com/esvanberg/voctrain/internal/config"
	"github.com/esvanberg/voctrain/internal/store"
)

// runApp opens the store, loads the trainee state, and launches the
// TUI. The state is written back in full when the app exits.
func runApp(cmd *cobra.Command) error {
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

	runErr := app.Run(app.Options{
		State:    state,
		Store:    st,
		VocabDir: config.VocabDir(),
	})

	// Save even when the UI failed; the trainee's progress up to that
	// point is still worth keeping.
	if err := st.Save(ctx, state); err != nil {
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("save state: %w", err)
	}
	return runErr
}
