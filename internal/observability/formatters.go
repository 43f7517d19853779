// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/report"
	"github.com/jonathan/resume-screener/internal/types"
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

// PrintJobAnalysis outputs a human-readable summary of the job analysis.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:      %d\n", analysis.WordCount))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", analysis.CharacterCount))
	if analysis.RequiredExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Required experience: %d years\n", *analysis.RequiredExperienceYears))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Skills:     %s\n", report.FormatList(analysis.Skills, maxItemsToShow)))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", report.FormatList(analysis.Experience, maxItemsToShow)))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", report.FormatList(analysis.Education, maxItemsToShow)))
	if len(analysis.KeyPhrases) > 0 {
		sb.WriteString(fmt.Sprintf("Key phrases: %s\n", report.FormatList(analysis.KeyPhrases, maxItemsToShow)))
	}

	p.printBox("Job Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintRankedBatch outputs the ranked candidates with scores and categories.
func (p *Printer) PrintRankedBatch(batch *types.RankedBatch) {
	if batch == nil || len(batch.Candidates) == 0 {
		p.printBox("Screening Results", "No candidates processed")
		return
	}

	var sb strings.Builder
	for i, candidate := range batch.Candidates {
		sb.WriteString(fmt.Sprintf("%2d. %s — %s (%s)\n",
			i+1,
			candidate.Filename,
			report.FormatScore(candidate.SimilarityScore),
			report.ScoreCategory(candidate.SimilarityScore)))
	}

	p.printBox("Screening Results", strings.TrimRight(sb.String(), "\n"))
}

// PrintExplanation outputs the match explanation for one candidate.
func (p *Printer) PrintExplanation(explanation *types.MatchExplanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Weighted score:  %s\n", report.FormatScore(explanation.OverallScore)))
	sb.WriteString(fmt.Sprintf("Skills matched:  %.0f%%\n", explanation.SkillMatchPercentage*100))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matching skills: %s\n", report.FormatList(explanation.MatchingSkills, maxItemsToShow)))
	sb.WriteString(fmt.Sprintf("Missing skills:  %s\n", report.FormatList(explanation.MissingSkills, maxItemsToShow)))

	if len(explanation.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range explanation.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}

	p.printBox("Match Explanation", strings.TrimRight(sb.String(), "\n"))
}

// PrintErrors outputs the per-document failures accumulated during a run.
func (p *Printer) PrintErrors(errors []types.DocumentError) {
	if len(errors) == 0 {
		return
	}

	var sb strings.Builder
	for _, docErr := range errors {
		sb.WriteString(fmt.Sprintf("%s: %s\n", docErr.Filename, docErr.Reason))
	}

	p.printBox("Document Errors", strings.TrimRight(sb.String(), "\n"))
}
