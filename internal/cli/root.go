package cli

import (
	"github.com/spf13/cobra"

	"aisdlc/internal/project"
)

// NewRootCommand builds the aisdlc command tree over the given App.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aisdlc",
		Short: "Structured software development lifecycle, one step at a time",
		Long: `aisdlc walks a unit of work through a fixed sequence of lifecycle steps,
from idea to tests, persisting progress as markdown files on disk.

Each step produces a prompt for your preferred AI tool; you save the
response as the next step's file and aisdlc advances when it appears.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCommand(app),
		newNewCommand(app),
		newNextCommand(app),
		newStatusCommand(app),
		newDoneCommand(app),
	)

	return root
}

// Execute resolves the project, runs the CLI, and returns the process
// exit code.
func Execute() int {
	proj, err := project.Resolve()
	if err != nil {
		return 1
	}

	app := NewApp(proj)
	root := NewRootCommand(app)

	if err := root.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return code
		}
		app.Printer.Error("%v", err)
		return 1
	}
	return 0
}
