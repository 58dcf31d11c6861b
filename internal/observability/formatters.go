// Package observability provides formatted output utilities for the CLI scan mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mateo/resume-checkup/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the terminal report.
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

// PrintReport outputs the full scan report, one box per section.
func (p *Printer) PrintReport(report *pipeline.Report) {
	if report == nil {
		return
	}

	p.printSummary(report)
	p.printMatches(report.Matches)
	p.printBulletFeedback(report)
}

// printSummary outputs the strength score and detected skills.
func (p *Printer) printSummary(report *pipeline.Report) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Strength Score: %d / 100\n\n", report.StrengthScore))

	if len(report.Skills) == 0 {
		sb.WriteString("No recognized skills found.")
	} else {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(report.Skills)))
		sb.WriteString("  " + strings.Join(report.Skills, ", "))
	}

	p.printBox("RESUME SUMMARY", sb.String())
}

// printMatches outputs the ranked job matches with scores and suggestions.
func (p *Printer) printMatches(matches []pipeline.JobMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s — %s\n", i+1, match.Job.Title, match.Job.Company))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", match.Score))
		if len(match.Matched) > 0 {
			matched := strings.Join(match.Matched, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", matched))
		}
		for _, suggestion := range match.Suggestions {
			sb.WriteString(fmt.Sprintf("    → %s\n", suggestion))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP JOB MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// printBulletFeedback outputs the flagged bullets with their rewrites.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBulletFeedback(report *pipeline.Report) {
	if len(report.BulletFeedback) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WEAK BULLETS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Flagged %d bullets:\n\n", len(report.BulletFeedback)))

	count := min(len(report.BulletFeedback), maxItemsToShow)
	for i := 0; i < count; i++ {
		fb := report.BulletFeedback[i]
		text := fb.Line
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		flags := make([]string, len(fb.Flags))
		for j, flag := range fb.Flags {
			flags[j] = string(flag)
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", text))
		sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(flags, " ")))
		if fb.Rewrite != "" {
			rewrite := fb.Rewrite
			if len(rewrite) > 50 {
				rewrite = rewrite[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  ✎ %s\n", rewrite))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.BulletFeedback) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(report.BulletFeedback)-maxItemsToShow))
	}

	p.printBox("BULLET FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}
