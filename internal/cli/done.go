package cli

import (
	"github.com/spf13/cobra"
)

func newDoneCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Archive a completed workstream",
		Long:  `Validate that every lifecycle step has its file, then move the workstream directory from the active area to the archive and clear the lock.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			app.warnIfLockCorrupted()

			res, err := app.machine(cfg).Archive()
			if err != nil {
				return err
			}

			for _, leftover := range res.LeftoverPrompts {
				app.Printer.Warning("archived with leftover prompt file: %s", leftover)
			}
			app.Printer.Success("Archived to %s", res.Dest)
			app.printCompactStatus()
			return nil
		},
	}
}
