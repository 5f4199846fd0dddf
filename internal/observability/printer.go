// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/scrape-quality/internal/cleaning"
	"github.com/jonathan/scrape-quality/internal/types"
	"github.com/jonathan/scrape-quality/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCleaningStats outputs a summary of one cleaning pass: record count
// and which fields most often came out null.
func (p *Printer) PrintCleaningStats(stats *cleaning.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records cleaned: %d\n", stats.Records))

	if stats.Records > 0 {
		sb.WriteString("\nNull fields after cleaning:\n")
		for _, field := range types.CleanedFields {
			n := stats.NullFields[field]
			if n == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("  • %s: %d of %d\n", field, n, stats.Records))
		}
	}

	p.printBox("CLEANING SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReportSummary outputs the headline numbers and top issues from a
// quality report. The full report artifact is written separately.
func (p *Printer) PrintReportSummary(report *validation.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total records:   %d\n", report.TotalRecords))
	sb.WriteString(fmt.Sprintf("Valid records:   %d\n", report.ValidRecords))
	sb.WriteString(fmt.Sprintf("Invalid records: %d\n", report.InvalidRecords))

	if len(report.Frequencies) > 0 {
		sb.WriteString("\nTop issues:\n")
		count := min(len(report.Frequencies), maxItemsToShow)
		for i := 0; i < count; i++ {
			cc := report.Frequencies[i]
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", cc.Code, cc.Count))
		}
		if len(report.Frequencies) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Frequencies)-maxItemsToShow))
		}
	}

	p.printBox("QUALITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}
