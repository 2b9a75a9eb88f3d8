package workstream

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lifecycle precondition violations.
var (
	// ErrNoActive indicates no workstream is active. Commands that need
	// one should tell the user to run `aisdlc new` first.
	ErrNoActive = errors.New("no active workstream; run `aisdlc new` first")

	// ErrNotFinished indicates an archive was attempted before the
	// workstream reached the final configured step.
	ErrNotFinished = errors.New("workstream not finished yet; complete all steps before archiving")

	// errDestinationExists wraps the archive-destination conflict in a
	// WriteError so the offending path is named.
	errDestinationExists = errors.New("destination already exists; remove or rename it first")
)

// ExistsError indicates a workstream with the derived slug already exists
// in the active area.
type ExistsError struct {
	Slug string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("workstream %q already exists", e.Slug)
}

// UnknownStepError indicates the lock record's current step is not in the
// configured step list. The condition is tolerated for display but blocks
// advancement, since the next step cannot be resolved.
type UnknownStepError struct {
	Step string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("lock records step %q which is not in the configured steps; fix .aisdlc.lock or .aisdlc", e.Step)
}

// MissingFileError indicates a file required by the current operation does
// not exist. Hint carries a recovery suggestion shown to the user.
type MissingFileError struct {
	Path string
	Hint string
}

func (e *MissingFileError) Error() string {
	msg := "required file is missing: " + e.Path
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// MissingStepFilesError indicates one or more step files are absent at
// archive time. Every missing step is named.
type MissingStepFilesError struct {
	Missing []string
}

func (e *MissingStepFilesError) Error() string {
	return "missing step files: " + strings.Join(e.Missing, ", ")
}

// EmptyStepFileError indicates a step file exists but has no content, so
// advancement would record an empty step as complete.
type EmptyStepFileError struct {
	Path string
}

func (e *EmptyStepFileError) Error() string {
	return fmt.Sprintf("step file %s is empty; save the AI response (or your own content) to it before advancing", e.Path)
}

// WriteError indicates a filesystem write, create, or move failed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
