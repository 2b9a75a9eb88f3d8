// Package output provides styled terminal output for the aisdlc CLI.
//
// The [Printer] wraps an io.Writer with lipgloss styles for the message
// classes the commands emit: plain informational lines, success, warnings
// (lock corruption is the notable producer), and errors. Tests inject a
// bytes.Buffer via [NewPrinterWithWriter] to assert on output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Printer writes styled messages to a writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to stdout.
func NewPrinter() *Printer {
	return &Printer{w: os.Stdout}
}

// NewPrinterWithWriter creates a Printer writing to w. Used by tests.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Info prints a plain message line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Success prints a green message line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Warning prints a yellow message line prefixed with a warning marker.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintln(p.w, warningStyle.Render("⚠ "+fmt.Sprintf(format, args...)))
}

// Error prints a red message line prefixed with an error marker.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.w, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Dim prints a muted message line, used for secondary hints.
func (p *Printer) Dim(format string, args ...any) {
	fmt.Fprintln(p.w, dimStyle.Render(fmt.Sprintf(format, args...)))
}
