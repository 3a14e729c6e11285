package ui

import (
	"fmt"
	"strings"

	"benchline/runner"
	"benchline/suite"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("250"))

	timingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")) // Green - values agree

	mismatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")) // Red - values diverge

	speedupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")) // Yellow
)

// RenderBanner returns the report header.
func RenderBanner() string {
	return titleStyle.Render("benchline: reference vs tuned algorithm benchmarks") + "\n" +
		dimStyle.Render(strings.Repeat("─", 60))
}

// RenderRow renders one workload's outcome: a heading, a summary line per
// implementation, and the match/speedup lines for paired workloads.
func RenderRow(index int, row runner.Row) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(fmt.Sprintf("%d. %s", index+1, headline(row.Workload))))
	b.WriteString("\n")
	b.WriteString(renderTiming(row.Baseline))
	if row.Tuned != nil {
		b.WriteString(renderTiming(*row.Tuned))
		if row.Match {
			b.WriteString("   " + matchStyle.Render("results match") + "\n")
		} else {
			b.WriteString("   " + mismatchStyle.Render("RESULTS DIVERGE") + "\n")
		}
		b.WriteString("   " + speedupStyle.Render(fmt.Sprintf("speedup: %.1fx faster (%s over %s)",
			row.Speedup(), row.Tuned.Label, row.Baseline.Label)) + "\n")
	}

	return b.String()
}

// renderTiming formats a single summary line: implementation label, returned
// value, average seconds per call, and the iteration count.
func renderTiming(t runner.Timing) string {
	return fmt.Sprintf("   %s %s\n   %s\n",
		timingStyle.Render(t.Label+":"),
		t.Value,
		dimStyle.Render(fmt.Sprintf("%.6fs per call (%d iterations)", t.AvgSeconds, t.Iterations)))
}

// RenderReport renders the banner and every row of a completed run.
func RenderReport(report runner.Report) string {
	var b strings.Builder
	b.WriteString(RenderBanner())
	b.WriteString("\n\n")
	for i, row := range report.Rows {
		b.WriteString(RenderRow(i, row))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(strings.Repeat("─", 60)))
	return b.String()
}

// headline describes a workload and its input size for the report heading.
func headline(w suite.Workload) string {
	switch w.Kind {
	case suite.KindVectorSum:
		return fmt.Sprintf("Vector Sum (%s integers)", humanize.Comma(int64(w.Size)))
	case suite.KindFibonacci:
		return fmt.Sprintf("Fibonacci (n=%d)", w.N)
	case suite.KindPrimes:
		return fmt.Sprintf("Prime Generation (up to %s)", humanize.Comma(int64(w.Limit)))
	case suite.KindTextAnalysis:
		return fmt.Sprintf("Text Analysis (sample ×%s)", humanize.Comma(int64(w.Repeat)))
	case suite.KindAddBaseline:
		return "Call Overhead Baseline"
	default:
		return w.Label()
	}
}
