// Package config loads and validates the project's .aisdlc configuration.
//
// The config file is TOML, read with Viper, and declares the ordered
// lifecycle step list plus the directory layout. It is immutable per
// invocation: commands load it fresh each run and never write it back
// (only `aisdlc init` creates one, via the scaffold package).
//
// Key types:
//   - [Config] is the validated configuration container
//   - [Load] reads and validates the config at a project root
//
// Load failures are typed so the CLI can give targeted remediation:
// [NotFoundError] (no .aisdlc), [CorruptedError] (TOML parse failure), and
// [ValidationError] (shape violations, all reported at once).
package config

import "strings"

// Config represents the validated .aisdlc configuration.
type Config struct {
	// Steps is the ordered lifecycle step list. Each entry has the form
	// "<ordinal>.<name>", e.g. "0.idea". The ordinal is only ever used
	// for sort and display; steps are ordered by slice position.
	Steps []string `mapstructure:"steps"`

	// ActiveDir is the directory holding in-progress workstreams,
	// relative to the project root.
	ActiveDir string `mapstructure:"active_dir"`

	// DoneDir is the archive directory for completed workstreams.
	DoneDir string `mapstructure:"done_dir"`

	// PromptDir is the directory holding per-step prompt templates.
	PromptDir string `mapstructure:"prompt_dir"`
}

// FirstStep returns the first configured step.
func (c *Config) FirstStep() string {
	return c.Steps[0]
}

// LastStep returns the final configured step.
func (c *Config) LastStep() string {
	return c.Steps[len(c.Steps)-1]
}

// StepIndex returns the position of step in the configured sequence, or
// -1 when the step is not configured.
func (c *Config) StepIndex(step string) int {
	for i, s := range c.Steps {
		if s == step {
			return i
		}
	}
	return -1
}

// DisplayName strips the ordinal prefix from a step identifier, returning
// the part after the first "." separator. Identifiers without a separator
// are returned unchanged.
func DisplayName(step string) string {
	if _, name, ok := strings.Cut(step, "."); ok {
		return name
	}
	return step
}
