// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopinath/resume-tailor/internal/ats"
	"github.com/gopinath/resume-tailor/internal/keywords"
	"github.com/gopinath/resume-tailor/internal/selection"
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

// PrintKeywords outputs the extracted keywords with weights, plus the
// classified role type.
func (p *Printer) PrintKeywords(kws []keywords.Keyword, roleType string) {
	if len(kws) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role type: %s\n", roleType))
	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n\n", len(kws)))

	count := min(len(kws), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s (%.2f)\n", kws[i].Phrase, kws[i].Weight))
	}
	if len(kws) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(kws)-maxItemsToShow))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs how many bullets survived per section.
func (p *Printer) PrintSelection(jobs []selection.SelectedJob, projects []selection.SelectedProject) {
	if len(jobs) == 0 && len(projects) == 0 {
		return
	}

	var sb strings.Builder
	for _, job := range jobs {
		sb.WriteString(fmt.Sprintf("%s — %s\n", job.Job.Company, job.Job.Title))
		count := min(len(job.Bullets), maxItemsToShow)
		for i := 0; i < count; i++ {
			text := job.Bullets[i].Bullet.Text
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
	}
	if len(projects) > 0 {
		sb.WriteString("\nProjects:\n")
		for _, proj := range projects {
			sb.WriteString(fmt.Sprintf("  • %s (%d bullets)\n", proj.Project.Name, len(proj.Bullets)))
		}
	}

	p.printBox("SELECTED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATS outputs the ATS coverage result with matched and missing terms.
func (p *Printer) PrintATS(result ats.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.1f / 100\n", result.Score))
	if result.High() {
		sb.WriteString("Rating: strong match\n")
	}
	sb.WriteString("\n")

	if len(result.Matched) > 0 {
		matched := strings.Join(result.Matched, ", ")
		if len(matched) > 45 {
			matched = matched[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matched: %s\n", matched))
	}
	if len(result.Missing) > 0 {
		sb.WriteString("Missing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", result.Missing[i]))
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	}

	p.printBox("ATS COVERAGE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs non-fatal warnings collected during a run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	for i, w := range warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}
