package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newNewCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new <title>...",
		Short: "Start a new workstream from an idea",
		Long:  `Create a workstream directory and its first markdown file from an idea title. The title can be multiple words; it is slugified to name the directory.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			res, err := app.machine(cfg).Create(title)
			if err != nil {
				return err
			}

			app.Printer.Success("Created %s", res.StepFile)
			app.Printer.Info("Fill it out, then run `aisdlc next`.")
			app.printCompactStatus()
			return nil
		},
	}
}
