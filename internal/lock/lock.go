// Package lock persists the single mutable record of workstream progress.
//
// The lock file (.aisdlc.lock at the project root) is a small JSON object:
// {} when no workstream is active, otherwise the active slug, the step the
// workstream has completed through, and the creation timestamp.
//
// Corruption here is the one recoverable failure in the system: a lock file
// that is not valid JSON, or not an object of the expected shape, reads as
// an empty record with a corrupted flag so the caller can warn and proceed.
package lock

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Record is the persisted pointer to the active workstream.
//
// A zero Record means no workstream is active and serializes as {}.
type Record struct {
	// Slug identifies the active workstream directory.
	Slug string `json:"slug,omitempty"`

	// Current is the step the workstream has completed through — not the
	// step being worked on.
	Current string `json:"current,omitempty"`

	// Created is the workstream creation time, ISO-8601.
	Created string `json:"created,omitempty"`
}

// Active reports whether the record points at a workstream.
func (r Record) Active() bool {
	return r.Slug != ""
}

// NewRecord returns a Record for a freshly created workstream, stamped
// with the current UTC time.
func NewRecord(slug, firstStep string) Record {
	return Record{
		Slug:    slug,
		Current: firstStep,
		Created: time.Now().UTC().Format(time.RFC3339),
	}
}

// Store reads and writes the lock file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store for the lock file at the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Read returns the current lock record.
//
// A missing file yields an empty record. An unreadable or unparsable file
// yields an empty record with corrupted=true; it never returns an error,
// because lock corruption must not block any command.
func (s *Store) Read() (rec Record, corrupted bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false
		}
		return Record{}, true
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, true
	}
	return rec, false
}

// Write replaces the lock file with the given record.
//
// The write goes through a temp file and rename so a crash never leaves a
// truncated lock behind.
func (s *Store) Write(rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode lock record: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write lock file: %w", err)
	}
	return nil
}

// Clear resets the lock file to the empty record.
func (s *Store) Clear() error {
	return s.Write(Record{})
}
