// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/alternate-futures/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxWarningsToShow is the number of diagnostics listed before summarizing
	maxWarningsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintTimeline outputs one line per entry with its description indented below.
func (p *Printer) PrintTimeline(title string, entries []types.TimelineEntry) {
	if len(entries) == 0 {
		p.printBox(title, "(no entries)")
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%-11s %s", e.Year, e.Title))
		if e.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", e.Company))
		}
		if e.Description != "" {
			sb.WriteString(fmt.Sprintf("\n            %s", e.Description))
		}
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, sb.String())
}

// PrintWarnings outputs diagnostics about the completion output.
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(warnings), maxWarningsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("⚠ %s", warnings[i]))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(warnings) > maxWarningsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(warnings)-maxWarningsToShow))
	}

	p.printBox("OUTPUT WARNINGS", sb.String())
}

// PrintError outputs a user-visible error message.
func (p *Printer) PrintError(message string) {
	if message == "" {
		return
	}
	p.printBox("ERROR", message)
}
