package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"patterns/internal/core"
	"patterns/internal/editor"
	"patterns/internal/journal"
	"patterns/internal/tui"
)

// newEditCmd launches the interactive undo/redo editor.
func newEditCmd(a *app) *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the undo/redo text buffer in a terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.startLogging(true); err != nil {
				return err
			}
			defer a.stopLogging()

			rec := journal.NewRecorder(nil)
			buf := editor.New(editor.WithListener(rec))
			if err := tui.Run(buf, a.cfg.Theme); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}

			if a.cfg.Journal != "" {
				return core.MergeRun(core.NewFileJournalStore(a.cfg.Journal), rec.Entries())
			}
			return nil
		},
	}
	editCmd.Flags().String("journal", "", "write the editing session transcript as JSON to this file")
	return editCmd
}
