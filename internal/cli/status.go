package cli

import (
	"github.com/spf13/cobra"

	"aisdlc/internal/render"
)

func newStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show progress through the lifecycle steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			app.warnIfLockCorrupted()

			p := app.Printer
			p.Info("Active workstreams")
			p.Info("------------------")

			snap, ok := app.machine(cfg).Snapshot()
			if !ok {
				p.Info("none – create one with `aisdlc new`")
				return nil
			}

			if snap.Index < 0 {
				p.Info("%-20s %-12s (step not in config)", snap.Slug, snap.Current)
				return nil
			}

			p.Info("%-20s %-12s %s", snap.Slug, snap.Current, render.StepBar(cfg.Steps, snap.Index))
			return nil
		},
	}
}
