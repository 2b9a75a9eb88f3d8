// Package cli wires the aisdlc commands together with Cobra.
//
// Commands are built as constructors over an injected [App], so tests can
// point every command at a temporary project and a buffer-backed printer.
// The command surface mirrors the lifecycle one-to-one: init, new, next,
// status, done.
package cli

import (
	"aisdlc/internal/config"
	"aisdlc/internal/lock"
	"aisdlc/internal/output"
	"aisdlc/internal/project"
	"aisdlc/internal/render"
	"aisdlc/internal/workstream"
)

// App holds the dependencies shared by every command.
type App struct {
	// Project is the resolved project root handle.
	Project project.Project

	// Printer renders all user-facing output.
	Printer *output.Printer

	// Locks is the lock store at the project root.
	Locks *lock.Store
}

// NewApp creates an App for the given project with production defaults.
func NewApp(proj project.Project) *App {
	return &App{
		Project: proj,
		Printer: output.NewPrinter(),
		Locks:   lock.NewStore(proj.LockPath()),
	}
}

// loadConfig reads the project config. Configuration is immutable per
// invocation: every command loads it fresh.
func (a *App) loadConfig() (*config.Config, error) {
	return config.Load(a.Project.ConfigPath())
}

// machine builds the lifecycle state machine over the loaded config.
func (a *App) machine(cfg *config.Config) *workstream.Machine {
	return workstream.NewMachine(a.Project, cfg, a.Locks)
}

// warnIfLockCorrupted emits the one recoverable warning in the system: a
// lock file that is not valid JSON is about to be treated as empty.
func (a *App) warnIfLockCorrupted() {
	if _, corrupted := a.Locks.Read(); corrupted {
		a.Printer.Warning("%s is corrupted or not valid JSON; treating as empty", project.LockFileName)
	}
}

// printCompactStatus shows the active workstream and its step bar. It is
// appended after the mutating commands, and silently skipped when there is
// no active workstream or no loadable config.
func (a *App) printCompactStatus() {
	rec, _ := a.Locks.Read()
	if !rec.Active() {
		return
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return
	}

	idx := cfg.StepIndex(rec.Current)
	if idx < 0 {
		a.Printer.Info("\n---\nCurrent: %s @ %s (step not in config)\n---", rec.Slug, rec.Current)
		return
	}
	a.Printer.Info("\n---\nCurrent: %s @ %s\n   %s\n---", rec.Slug, rec.Current, render.StepBar(cfg.Steps, idx))
}
