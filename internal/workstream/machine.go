// Package workstream implements the lifecycle state machine that drives a
// single unit of work through the configured step sequence.
//
// A workstream is a directory under the active area holding one markdown
// file per completed step. The lock file points at the active workstream
// and the step it has completed through. The machine owns the three
// mutations of that state:
//
//   - [Machine.Create] starts a workstream from an idea title
//   - [Machine.Advance] moves it forward one step at a time
//   - [Machine.Archive] relocates a finished workstream to the done area
//
// Advance is deliberately safe to call any number of times: until the user
// has produced the next step's file, repeated calls regenerate the prompt
// file and change nothing else.
package workstream

import (
	"os"
	"path/filepath"
	"strings"

	"aisdlc/internal/config"
	"aisdlc/internal/lock"
	"aisdlc/internal/project"
	"aisdlc/internal/slug"
)

// PrevStepPlaceholder is the token in prompt templates that Advance
// replaces with the previous step's full content, verbatim.
const PrevStepPlaceholder = "<prev_step></prev_step>"

// promptFilePrefix marks the transient merged-prompt file awaiting an AI
// response inside a workstream directory.
const promptFilePrefix = "_prompt-"

// firstStepSkeleton is the section layout written into a new workstream's
// first step file, after the title heading.
const firstStepSkeleton = "\n\n## Problem\n\n## Solution\n\n## Rabbit Holes\n"

// Machine executes lifecycle transitions against one project.
type Machine struct {
	proj  project.Project
	cfg   *config.Config
	locks *lock.Store
}

// NewMachine creates a Machine for the given project, configuration, and
// lock store.
func NewMachine(proj project.Project, cfg *config.Config, locks *lock.Store) *Machine {
	return &Machine{proj: proj, cfg: cfg, locks: locks}
}

// Dir returns the active-area directory of the named workstream.
func (m *Machine) Dir(slugName string) string {
	return m.proj.Join(m.cfg.ActiveDir, slugName)
}

// StepFilePath returns the markdown file for a step within a workstream,
// following the <step>-<slug>.md convention.
func (m *Machine) StepFilePath(slugName, step string) string {
	return filepath.Join(m.Dir(slugName), step+"-"+slugName+".md")
}

// PromptOutputPath returns the transient merged-prompt file for a step.
func (m *Machine) PromptOutputPath(slugName, step string) string {
	return filepath.Join(m.Dir(slugName), promptFilePrefix+step+".md")
}

// templatePath returns the prompt template for a step under the
// configured prompt directory.
func (m *Machine) templatePath(step string) string {
	return m.proj.Join(m.cfg.PromptDir, step+".instructions.md")
}

// CreateResult describes a freshly created workstream.
type CreateResult struct {
	// Slug is the identifier derived from the title.
	Slug string

	// StepFile is the path of the first step's file, pre-populated with
	// the section skeleton for the user to fill in.
	StepFile string
}

// Create starts a new workstream from a free-text idea title.
//
// It derives the slug, creates the workstream directory, writes the first
// configured step's file with a title heading plus empty sections, and
// records the workstream in the lock file. Returns [ExistsError] when the
// target directory already exists, and [WriteError] when directory or
// file creation fails.
func (m *Machine) Create(title string) (*CreateResult, error) {
	slugName := slug.Slugify(title)

	dir := m.Dir(slugName)
	if _, err := os.Stat(dir); err == nil {
		return nil, &ExistsError{Slug: slugName}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	firstStep := m.cfg.FirstStep()
	stepFile := m.StepFilePath(slugName, firstStep)
	content := "# " + title + firstStepSkeleton
	if err := os.WriteFile(stepFile, []byte(content), 0644); err != nil {
		return nil, &WriteError{Path: stepFile, Err: err}
	}

	if err := m.locks.Write(lock.NewRecord(slugName, firstStep)); err != nil {
		return nil, err
	}

	return &CreateResult{Slug: slugName, StepFile: stepFile}, nil
}

// AdvanceOutcome classifies what an Advance call did.
type AdvanceOutcome int

const (
	// OutcomeAllComplete means the workstream is already at the final
	// step; nothing was changed. Repeated calls stay here.
	OutcomeAllComplete AdvanceOutcome = iota

	// OutcomeWaiting means the prompt file was (re)generated and the
	// machine is waiting for the user to create the next step's file.
	// The lock is unchanged.
	OutcomeWaiting

	// OutcomeAdvanced means the next step's file was found non-empty,
	// the lock moved forward one step, and the prompt file was removed.
	OutcomeAdvanced
)

// AdvanceResult describes the effect of one Advance call.
type AdvanceResult struct {
	Outcome AdvanceOutcome

	// NextStep is the step being advanced toward. Empty when the
	// workstream is already complete.
	NextStep string

	// PromptFile is the merged prompt written for the pending step.
	PromptFile string

	// NextFile is the step file the user is expected to produce.
	NextFile string
}

// Advance moves the active workstream forward one step, if it can.
//
// When the lock's current step is the final one, Advance reports
// completion and does nothing — a repeated call is a no-op. Otherwise it
// requires the previous step's file and the next step's prompt template
// (failing with [MissingFileError] naming the absent path), merges the
// template with the previous step's content, and writes the merged prompt
// file. The merge is performed on every call while the step is pending,
// overwriting any earlier copy.
//
// If the user has already produced the next step's file, Advance validates
// it is non-empty (failing with [EmptyStepFileError] otherwise), updates
// the lock, and removes the prompt file. If not, the lock stays untouched
// and the result says which file to create — so Advance is idempotent
// until the expected file appears.
func (m *Machine) Advance() (*AdvanceResult, error) {
	rec, _ := m.locks.Read()
	if !rec.Active() {
		return nil, ErrNoActive
	}

	idx := m.cfg.StepIndex(rec.Current)
	if idx < 0 {
		return nil, &UnknownStepError{Step: rec.Current}
	}
	if idx == len(m.cfg.Steps)-1 {
		return &AdvanceResult{Outcome: OutcomeAllComplete}, nil
	}

	prevStep := m.cfg.Steps[idx]
	nextStep := m.cfg.Steps[idx+1]

	prevFile := m.StepFilePath(rec.Slug, prevStep)
	prevContent, err := os.ReadFile(prevFile)
	if err != nil {
		return nil, &MissingFileError{
			Path: prevFile,
			Hint: "this file is required to generate the '" + nextStep + "' step; restore it from version control or recreate the previous step",
		}
	}

	tmplFile := m.templatePath(nextStep)
	tmplContent, err := os.ReadFile(tmplFile)
	if err != nil {
		return nil, &MissingFileError{
			Path: tmplFile,
			Hint: "this prompt template is required for the '" + nextStep + "' step; ensure it exists in '" + m.cfg.PromptDir + "/' or run `aisdlc init`",
		}
	}

	merged := strings.ReplaceAll(string(tmplContent), PrevStepPlaceholder, string(prevContent))
	promptFile := m.PromptOutputPath(rec.Slug, nextStep)
	if err := os.WriteFile(promptFile, []byte(merged), 0644); err != nil {
		return nil, &WriteError{Path: promptFile, Err: err}
	}

	result := &AdvanceResult{
		NextStep:   nextStep,
		PromptFile: promptFile,
		NextFile:   m.StepFilePath(rec.Slug, nextStep),
	}

	nextContent, err := os.ReadFile(result.NextFile)
	if err != nil {
		result.Outcome = OutcomeWaiting
		return result, nil
	}

	if strings.TrimSpace(string(nextContent)) == "" {
		return nil, &EmptyStepFileError{Path: result.NextFile}
	}

	rec.Current = nextStep
	if err := m.locks.Write(rec); err != nil {
		return nil, err
	}
	os.Remove(promptFile)

	result.Outcome = OutcomeAdvanced
	return result, nil
}

// ArchiveResult describes a successful archive.
type ArchiveResult struct {
	// Dest is the workstream's new location under the done area.
	Dest string

	// LeftoverPrompts lists transient prompt files that were still in
	// the workstream directory. They travel with the move; callers may
	// warn about them but archiving never blocks on their presence.
	LeftoverPrompts []string
}

// Archive relocates a finished workstream to the done area and clears the
// lock.
//
// Preconditions: an active workstream whose current step is the final
// configured step ([ErrNoActive] / [ErrNotFinished] otherwise), and a file
// present for every configured step ([MissingStepFilesError] naming each
// absent step otherwise). The destination must not already exist; the
// move never overwrites or merges. The lock is cleared only after the
// move succeeds, so a failed move leaves everything untouched.
func (m *Machine) Archive() (*ArchiveResult, error) {
	rec, _ := m.locks.Read()
	if !rec.Active() {
		return nil, ErrNoActive
	}

	if rec.Current != m.cfg.LastStep() {
		return nil, ErrNotFinished
	}

	workdir := m.Dir(rec.Slug)
	var missing []string
	for _, step := range m.cfg.Steps {
		if _, err := os.Stat(m.StepFilePath(rec.Slug, step)); err != nil {
			missing = append(missing, step)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingStepFilesError{Missing: missing}
	}

	leftovers, _ := filepath.Glob(filepath.Join(workdir, promptFilePrefix+"*.md"))

	dest := m.proj.Join(m.cfg.DoneDir, rec.Slug)
	if _, err := os.Stat(dest); err == nil {
		return nil, &WriteError{Path: dest, Err: errDestinationExists}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return nil, &WriteError{Path: dest, Err: err}
	}
	if err := os.Rename(workdir, dest); err != nil {
		return nil, &WriteError{Path: dest, Err: err}
	}

	if err := m.locks.Clear(); err != nil {
		return nil, err
	}

	return &ArchiveResult{Dest: dest, LeftoverPrompts: leftovers}, nil
}

// Snapshot is the read-only view of the active workstream used for
// status rendering.
type Snapshot struct {
	Slug    string
	Current string

	// Index is Current's position in the configured steps, or -1 when
	// the lock records a step the config does not know. Display copes
	// with -1; advancement does not.
	Index int
}

// Snapshot reports the active workstream, if any.
func (m *Machine) Snapshot() (Snapshot, bool) {
	rec, _ := m.locks.Read()
	if !rec.Active() {
		return Snapshot{}, false
	}
	return Snapshot{
		Slug:    rec.Slug,
		Current: rec.Current,
		Index:   m.cfg.StepIndex(rec.Current),
	}, true
}
