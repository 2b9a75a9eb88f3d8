package cli

import (
	"github.com/spf13/cobra"

	"aisdlc/internal/project"
	"aisdlc/internal/scaffold"
)

const asciiArt = `
   █████╗ ██╗███████╗██╗  ██╗ ██████╗██╗
  ██╔══██╗██║╚══███╔╝██║  ██║██╔════╝██║
  ███████║██║  ███╔╝ ███████║██║     ██║
  ██╔══██║██║ ███╔╝  ██╔══██║██║     ██║
  ██║  ██║██║███████╗██║  ██║╚██████╗███████╗
  ╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝╚══════╝
`

const gettingStarted = `Getting started:
  1. aisdlc new "Your feature title"   start a workstream
  2. Fill in the first markdown file under doing/<slug>/
  3. aisdlc next                       generate the prompt for the next step
  4. Save the AI response as the named file, then run ` + "`aisdlc next`" + ` again
  5. Repeat until all steps are done, then ` + "`aisdlc done`" + ` to archive
  Check progress anytime with ` + "`aisdlc status`" + `.`

func newInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new aisdlc project",
		Long:  `Scaffold the baseline directories, config, prompt templates, and lock file for a new aisdlc project in the current directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Printer
			p.Info("Initializing aisdlc project in %s...", app.Project.Root)

			report, err := scaffold.Apply(app.Project.Root)
			if err != nil {
				return err
			}

			p.Info("Created directories: %s/, %s/, %s/",
				scaffold.DefaultPromptDir, scaffold.DefaultActiveDir, scaffold.DefaultDoneDir)
			if report.ConfigCreated {
				p.Info("Created config: %s", project.ConfigFileName)
			} else {
				p.Info("Config %s already exists, keeping it.", project.ConfigFileName)
			}
			for _, name := range report.PromptsCreated {
				p.Info("  Created: %s/%s", scaffold.DefaultPromptDir, name)
			}
			for _, name := range report.PromptsSkipped {
				p.Dim("  Kept existing: %s/%s", scaffold.DefaultPromptDir, name)
			}

			p.Info("%s", asciiArt)
			p.Info("%s", gettingStarted)
			p.Success("aisdlc initialized. Run `aisdlc new \"Your first idea\"` to begin.")
			return nil
		},
	}
}
