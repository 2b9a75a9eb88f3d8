// Package render formats workstream progress for terminal display.
//
// Everything here is a pure function of the step list and the current
// index: no I/O, no error cases. Callers resolve the current index via
// list membership before rendering.
package render

import (
	"strings"

	"aisdlc/internal/config"
)

const (
	markerDone    = "[x]"
	markerPending = "[ ]"
	separator     = " ➜ " // ➜
)

// StepBar renders the lifecycle progress bar.
//
// Every step at or before currentIndex is marked done, the rest pending.
// Display names have the ordinal prefix stripped, so "1.prd" shows as
// "[x]prd". Entries are joined with an arrow separator.
func StepBar(steps []string, currentIndex int) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		marker := markerPending
		if i <= currentIndex {
			marker = markerDone
		}
		parts[i] = marker + config.DisplayName(step)
	}
	return strings.Join(parts, separator)
}
