package cli

import (
	"github.com/spf13/cobra"

	"aisdlc/internal/workstream"
)

func newNextCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Advance to the next lifecycle step",
		Long: `Merge the previous step's content into the next step's prompt template and
write the result as a prompt file for your AI tool. Once you have saved the
AI response as the next step's file, running next again advances the
workstream. Safe to run any number of times while waiting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			app.warnIfLockCorrupted()

			res, err := app.machine(cfg).Advance()
			if err != nil {
				return err
			}

			p := app.Printer
			switch res.Outcome {
			case workstream.OutcomeAllComplete:
				p.Info("All steps complete. Run `aisdlc done` to archive.")

			case workstream.OutcomeAdvanced:
				p.Success("Advanced to step: %s", res.NextStep)

			case workstream.OutcomeWaiting:
				p.Info("Generated AI prompt file: %s", res.PromptFile)
				p.Info("Use this prompt with your preferred AI tool (Claude, ChatGPT, Cursor, ...)")
				p.Info("and save the response to: %s", res.NextFile)
				p.Info("")
				p.Info("Waiting for you to create: %s", res.NextFile)
				p.Dim("Once the file exists, run `aisdlc next` again to continue.")
			}

			app.printCompactStatus()
			return nil
		},
	}
}
