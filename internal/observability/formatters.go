// Package observability provides formatted output for the CLI text and summary modes.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/salary-predictor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in option lists
	maxItemsToShow = 12
)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Lines wider than the
// box are word-wrapped and continuation lines keep the original indentation.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrapLine(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func wrapLine(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	trimmed := strings.TrimLeft(line, " ")
	indent := strings.Repeat(" ", len(line)-len(trimmed))
	// Continuation lines align under the text after a bullet marker.
	contIndent := indent
	if strings.HasPrefix(trimmed, "• ") {
		contIndent += "  "
	}

	var out []string
	current := indent
	for _, word := range strings.Fields(trimmed) {
		candidate := current + word
		if strings.TrimSpace(current) != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) > width && strings.TrimSpace(current) != "" {
			out = append(out, current)
			current = contIndent + word
			continue
		}
		current = candidate
	}
	return append(out, current)
}

func bulletList(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
}

// PrintEstimate outputs the salary ranges, confidence, drivers and tips of an estimate.
func (p *Printer) PrintEstimate(est *types.Estimate) {
	if est == nil {
		return
	}

	var sb strings.Builder
	in := est.InputsUsed
	sb.WriteString(fmt.Sprintf("Major:       %s\n", in.MajorGroup))
	sb.WriteString(fmt.Sprintf("Region:      %s\n", in.Region))
	sb.WriteString(fmt.Sprintf("School tier: %s\n", in.SchoolTier))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-9s %12s %12s %12s\n", "", "Low", "Median", "High"))
	for _, row := range []struct {
		label string
		r     types.SalaryRange
	}{
		{"Starting", est.Starting},
		{"5-Year", est.Year5},
		{"10-Year", est.Year10},
	} {
		sb.WriteString(fmt.Sprintf("%-9s %12s %12s %12s\n", row.label, FormatMoney(row.r.Low), FormatMoney(row.r.Mid), FormatMoney(row.r.High)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Confidence: %d/100\n", est.Confidence.Score))
	bulletList(&sb, est.Confidence.Reasons)

	p.printBox("SALARY ESTIMATE", strings.TrimSuffix(sb.String(), "\n"))

	sb.Reset()
	bulletList(&sb, est.Drivers)
	p.printBox("DRIVERS", strings.TrimSuffix(sb.String(), "\n"))

	sb.Reset()
	for i, tip := range est.Tips {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
	}
	p.printBox("TIPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptions outputs the selectable categories of a dataset.
func (p *Printer) PrintOptions(opts *types.Options) {
	if opts == nil {
		return
	}

	var sb strings.Builder
	for _, section := range []struct {
		title string
		items []string
	}{
		{"Major groups", opts.MajorGroups},
		{"Regions", opts.Regions},
		{"School tiers", opts.SchoolTiers},
		{"Internships", opts.Internships},
		{"Skills", opts.Skills},
	} {
		sb.WriteString(fmt.Sprintf("%s (%d):\n", section.title, len(section.items)))
		count := min(len(section.items), maxItemsToShow)
		bulletList(&sb, section.items[:count])
		if len(section.items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.items)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	p.printBox("DATASET OPTIONS", strings.TrimSuffix(sb.String(), "\n\n"))
}
