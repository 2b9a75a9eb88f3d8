// Package scaffold initializes a new aisdlc project directory.
//
// The default config and the per-step prompt templates ship inside the
// binary via embed. Apply lays out the standard directories, writes the
// config and an empty lock file, and copies every prompt template that is
// not already present — re-running it on an initialized project preserves
// user edits to the config and prompts.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"aisdlc/internal/project"
)

//go:embed all:templates
var templatesFS embed.FS

// Default directory names laid out by Apply. They match the embedded
// default config.
const (
	DefaultActiveDir = "doing"
	DefaultDoneDir   = "done"
	DefaultPromptDir = "prompts"
)

// configTemplate is the embedded default .aisdlc content.
const configTemplate = "templates/config.toml"

// Report describes what Apply created and what it left alone.
type Report struct {
	// Dirs are the directories ensured to exist, relative to the root.
	Dirs []string

	// ConfigCreated is false when a .aisdlc already existed and was
	// kept as-is.
	ConfigCreated bool

	// PromptsCreated and PromptsSkipped list template file names that
	// were copied or already present, respectively.
	PromptsCreated []string
	PromptsSkipped []string
}

// Apply scaffolds an aisdlc project at the given root directory.
//
// It creates the prompts, active, and done directories, writes the default
// .aisdlc config unless one exists, copies the embedded prompt templates
// that are missing, and resets the lock file to the empty record.
func Apply(root string) (*Report, error) {
	report := &Report{}

	dirs := []string{DefaultPromptDir, DefaultActiveDir, DefaultDoneDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s/: %w", dir, err)
		}
	}
	report.Dirs = dirs

	configPath := filepath.Join(root, project.ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		content, err := templatesFS.ReadFile(configTemplate)
		if err != nil {
			return nil, fmt.Errorf("broken installation, embedded config template unreadable: %w", err)
		}
		if err := os.WriteFile(configPath, content, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", configPath, err)
		}
		report.ConfigCreated = true
	}

	if err := copyPrompts(root, report); err != nil {
		return nil, err
	}

	lockPath := filepath.Join(root, project.LockFileName)
	if err := os.WriteFile(lockPath, []byte("{}"), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", lockPath, err)
	}

	return report, nil
}

// copyPrompts copies every embedded *.instructions.md template into
// <root>/prompts/, skipping files the user already has.
func copyPrompts(root string, report *Report) error {
	entries, err := fs.ReadDir(templatesFS, "templates/prompts")
	if err != nil {
		return fmt.Errorf("broken installation, embedded prompt templates unreadable: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".instructions.md") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		target := filepath.Join(root, DefaultPromptDir, name)
		if _, err := os.Stat(target); err == nil {
			report.PromptsSkipped = append(report.PromptsSkipped, name)
			continue
		}

		content, err := templatesFS.ReadFile("templates/prompts/" + name)
		if err != nil {
			return fmt.Errorf("broken installation, embedded template %s unreadable: %w", name, err)
		}
		if err := os.WriteFile(target, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		report.PromptsCreated = append(report.PromptsCreated, name)
	}

	return nil
}
